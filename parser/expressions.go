package parser

import (
	"strconv"

	"github.com/cminic/cminic/ast"
	"github.com/cminic/cminic/lexer"
)

// parseExpression is the entry point into the ten-level precedence chain;
// it is assignment, the lowest (and only right-associative) level.
func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment: `logical_or ('=' assignment)?`, right-associative.
func (p *Parser) parseAssignment() ast.Expr {
	left := p.parseLogicalOr()

	if p.match(lexer.ASSIGN) {
		tok := p.cur
		p.advance()
		value := p.parseAssignment()
		return &ast.AssignExpr{Tok: tok, Target: left, Value: value}
	}
	return left
}

// parseLogicalOr: `logical_and ('||' logical_and)*`.
func (p *Parser) parseLogicalOr() ast.Expr {
	left := p.parseLogicalAnd()
	for p.match(lexer.OR_OR) {
		tok := p.cur
		p.advance()
		right := p.parseLogicalAnd()
		left = &ast.BinaryExpr{Tok: tok, Op: ast.LogicalOr, Left: left, Right: right}
	}
	return left
}

// parseLogicalAnd: `equality ('&&' equality)*`.
func (p *Parser) parseLogicalAnd() ast.Expr {
	left := p.parseEquality()
	for p.match(lexer.AND_AND) {
		tok := p.cur
		p.advance()
		right := p.parseEquality()
		left = &ast.BinaryExpr{Tok: tok, Op: ast.LogicalAnd, Left: left, Right: right}
	}
	return left
}

// parseEquality: `relational (('=='|'!=') relational)*`.
func (p *Parser) parseEquality() ast.Expr {
	left := p.parseRelational()
	for p.match(lexer.EQ) || p.match(lexer.NOT_EQ) {
		tok := p.cur
		op := ast.Eq
		if tok.Type == lexer.NOT_EQ {
			op = ast.Neq
		}
		p.advance()
		right := p.parseRelational()
		left = &ast.BinaryExpr{Tok: tok, Op: op, Left: left, Right: right}
	}
	return left
}

// parseRelational: `additive (('<'|'>'|'<='|'>=') additive)*`.
func (p *Parser) parseRelational() ast.Expr {
	left := p.parseAdditive()
	for {
		var op ast.BinaryOp
		switch p.cur.Type {
		case lexer.LT:
			op = ast.Lt
		case lexer.GT:
			op = ast.Gt
		case lexer.LT_EQ:
			op = ast.Lte
		case lexer.GT_EQ:
			op = ast.Gte
		default:
			return left
		}
		tok := p.cur
		p.advance()
		right := p.parseAdditive()
		left = &ast.BinaryExpr{Tok: tok, Op: op, Left: left, Right: right}
	}
}

// parseAdditive: `multiplicative (('+'|'-') multiplicative)*`.
func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.match(lexer.PLUS) || p.match(lexer.MINUS) {
		tok := p.cur
		op := ast.Add
		if tok.Type == lexer.MINUS {
			op = ast.Subtract
		}
		p.advance()
		right := p.parseMultiplicative()
		left = &ast.BinaryExpr{Tok: tok, Op: op, Left: left, Right: right}
	}
	return left
}

// parseMultiplicative: `unary (('*'|'/'|'%') unary)*`.
func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for {
		var op ast.BinaryOp
		switch p.cur.Type {
		case lexer.ASTERISK:
			op = ast.Multiply
		case lexer.SLASH:
			op = ast.Divide
		case lexer.PERCENT:
			op = ast.Modulo
		default:
			return left
		}
		tok := p.cur
		p.advance()
		right := p.parseUnary()
		left = &ast.BinaryExpr{Tok: tok, Op: op, Left: left, Right: right}
	}
}

// parseUnary: `('-'|'!'|'~'|'++'|'--') unary | postfix`.
func (p *Parser) parseUnary() ast.Expr {
	var op ast.UnaryOp
	switch p.cur.Type {
	case lexer.MINUS:
		op = ast.Negate
	case lexer.NOT:
		op = ast.LogicalNot
	case lexer.TILDE:
		op = ast.BitwiseNot
	case lexer.INC:
		op = ast.PreIncrement
	case lexer.DEC:
		op = ast.PreDecrement
	default:
		return p.parsePostfix()
	}
	tok := p.cur
	p.advance()
	operand := p.parseUnary()
	return &ast.UnaryExpr{Tok: tok, Op: op, Operand: operand}
}

// parsePostfix: `primary ('[' expression ']' | '(' argument_list? ')' | '++' | '--')*`.
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()

	for {
		switch p.cur.Type {
		case lexer.LBRACK:
			tok := p.cur
			p.advance()
			index := p.parseExpression()
			if !p.expect(lexer.RBRACK) {
				p.synchronize()
				return expr
			}
			expr = &ast.SubscriptExpr{Tok: tok, Array: expr, Index: index}
		case lexer.LPAREN:
			tok := p.cur
			args := p.parseArgList()
			expr = &ast.CallExpr{Tok: tok, Callee: expr, Args: args}
		case lexer.INC:
			tok := p.cur
			p.advance()
			expr = &ast.UnaryExpr{Tok: tok, Op: ast.PostIncrement, Operand: expr}
		case lexer.DEC:
			tok := p.cur
			p.advance()
			expr = &ast.UnaryExpr{Tok: tok, Op: ast.PostDecrement, Operand: expr}
		default:
			return expr
		}
	}
}

// parseArgList parses `'(' (expression (',' expression)*)? ')'`.
func (p *Parser) parseArgList() *ast.ArgList {
	tok := p.cur
	args := &ast.ArgList{Tok: tok}

	if !p.expect(lexer.LPAREN) {
		return args
	}

	if p.match(lexer.RPAREN) {
		p.advance()
		return args
	}

	args.Args.Append(p.parseExpression())
	for p.match(lexer.COMMA) {
		p.advance()
		args.Args.Append(p.parseExpression())
	}

	if !p.expect(lexer.RPAREN) {
		p.synchronize()
	}
	return args
}

// parsePrimary: `IDENTIFIER | INTEGER | CHARACTER | STRING | '(' expression ')'`.
func (p *Parser) parsePrimary() ast.Expr {
	tok := p.cur

	switch tok.Type {
	case lexer.IDENT:
		p.advance()
		return &ast.Identifier{Tok: tok, Name: tok.Lexeme}
	case lexer.INT:
		p.advance()
		value, _ := strconv.ParseInt(tok.Lexeme, 10, 64)
		return &ast.IntegerLit{Tok: tok, Value: value}
	case lexer.CHAR:
		p.advance()
		var value byte
		if len(tok.Lexeme) > 0 {
			value = tok.Lexeme[0]
		}
		return &ast.CharacterLit{Tok: tok, Value: value}
	case lexer.STRING:
		p.advance()
		return &ast.StringLit{Tok: tok, Value: []byte(tok.Lexeme)}
	case lexer.LPAREN:
		return p.parseParenExpr()
	default:
		p.parserErrorf("Expected an expression, got %s", tok.Type)
		p.advance()
		return nil
	}
}

// parseParenExpr parses `'(' expression ')'`, tracking nesting depth against
// maxParenDepth so a pathological run of open parens fails with a reported
// error instead of exhausting the Go call stack.
func (p *Parser) parseParenExpr() ast.Expr {
	p.parenDepth++
	defer func() { p.parenDepth-- }()

	if p.parenDepth > p.maxParenDepth {
		p.parserErrorf("Parenthesized expression nesting exceeds the limit of %d", p.maxParenDepth)
		p.synchronize()
		return nil
	}

	p.advance() // '('
	expr := p.parseExpression()
	if !p.expect(lexer.RPAREN) {
		p.synchronize()
	}
	return expr
}
