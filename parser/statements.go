package parser

import (
	"github.com/cminic/cminic/ast"
	"github.com/cminic/cminic/lexer"
)

// parseStatement dispatches on the current token to the matching statement
// production.
func (p *Parser) parseStatement() ast.Stmt {
	switch {
	case isTypeToken(p.cur.Type):
		return p.parseLocalVariableDecl()
	case p.match(lexer.IF):
		return p.parseIfStmt()
	case p.match(lexer.WHILE):
		return p.parseWhileStmt()
	case p.match(lexer.RETURN):
		return p.parseReturnStmt()
	case p.match(lexer.LBRACE):
		return p.parseCompoundStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseLocalVariableDecl parses a declaration statement, sharing the
// `type identifier` grammar with the top-level declaration rule.
func (p *Parser) parseLocalVariableDecl() ast.Stmt {
	tok := p.cur
	dataType := tokenToDataType(p.cur.Type)
	p.advance()

	if !p.match(lexer.IDENT) {
		p.parserErrorf("Expected an identifier after type specifier, got %s", p.cur.Type)
		p.synchronize()
		return nil
	}
	name := p.cur.Lexeme
	p.advance()

	return p.parseVariableDeclRest(tok, dataType, name)
}

// parseCompoundStmt parses `'{' statement* '}'`.
func (p *Parser) parseCompoundStmt() *ast.CompoundStmt {
	tok := p.cur
	stmt := &ast.CompoundStmt{Tok: tok}

	if !p.expect(lexer.LBRACE) {
		return stmt
	}

	for !p.match(lexer.RBRACE) && !p.match(lexer.EOF) {
		s := p.parseStatement()
		if s != nil {
			stmt.Statements.Append(s)
		}
	}

	if !p.expect(lexer.RBRACE) {
		p.synchronize()
	}
	return stmt
}

// parseIfStmt parses `if '(' expression ')' statement ('else' statement)?`.
// The dangling else binds to the nearest unmatched if simply because this
// rule checks for a following `else` immediately after parsing its own
// then-branch, before returning control to any enclosing if's own check —
// recursive descent gets this for free.
func (p *Parser) parseIfStmt() *ast.IfStmt {
	tok := p.cur
	p.advance() // 'if'

	if !p.expect(lexer.LPAREN) {
		p.synchronize()
		return &ast.IfStmt{Tok: tok}
	}
	cond := p.parseExpression()
	if !p.expect(lexer.RPAREN) {
		p.synchronize()
		return &ast.IfStmt{Tok: tok, Cond: cond}
	}

	thenBranch := p.parseStatement()

	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		p.advance()
		elseBranch = p.parseStatement()
	}

	return &ast.IfStmt{Tok: tok, Cond: cond, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

// parseWhileStmt parses `while '(' expression ')' statement`.
func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	tok := p.cur
	p.advance() // 'while'

	if !p.expect(lexer.LPAREN) {
		p.synchronize()
		return &ast.WhileStmt{Tok: tok}
	}
	cond := p.parseExpression()
	if !p.expect(lexer.RPAREN) {
		p.synchronize()
		return &ast.WhileStmt{Tok: tok, Cond: cond}
	}

	body := p.parseStatement()
	return &ast.WhileStmt{Tok: tok, Cond: cond, Body: body}
}

// parseReturnStmt parses `return expression? ';'`.
func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	tok := p.cur
	p.advance() // 'return'

	stmt := &ast.ReturnStmt{Tok: tok}
	if !p.match(lexer.SEMI) {
		stmt.Value = p.parseExpression()
	}
	if !p.expect(lexer.SEMI) {
		p.synchronize()
	}
	return stmt
}

// parseExprStmt parses an expression statement, including the empty
// statement `;` (a bare semicolon with no expression).
func (p *Parser) parseExprStmt() *ast.ExprStmt {
	tok := p.cur
	stmt := &ast.ExprStmt{Tok: tok}

	if !p.match(lexer.SEMI) {
		stmt.Expr = p.parseExpression()
	}

	if !p.expect(lexer.SEMI) {
		p.synchronize()
	}
	return stmt
}
