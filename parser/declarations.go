package parser

import (
	"strconv"

	"github.com/cminic/cminic/ast"
	"github.com/cminic/cminic/lexer"
)

// parseFunction parses the parameter list, then either a compound body
// (definition) or a bare ';' (forward declaration). The caller has already
// consumed the return type and name; cur is positioned at '('.
func (p *Parser) parseFunction(tok lexer.Token, returnType ast.DataType, name string) *ast.Function {
	params := p.parseParamList()

	fn := &ast.Function{
		Tok:        tok,
		Name:       name,
		ReturnType: returnType,
		Params:     params,
	}

	if p.match(lexer.LBRACE) {
		fn.Body = p.parseCompoundStmt()
		return fn
	}

	if !p.expect(lexer.SEMI) {
		p.synchronize()
	}
	return fn
}

// parseParamList parses `'(' (param (',' param)*)? ')'`. A single `void`
// immediately followed by `)` denotes an explicitly empty parameter list —
// no Parameter node is appended for it.
func (p *Parser) parseParamList() *ast.ParamList {
	tok := p.cur
	pl := &ast.ParamList{Tok: tok}

	if !p.expect(lexer.LPAREN) {
		return pl
	}

	if p.match(lexer.RPAREN) {
		p.advance()
		return pl
	}

	if p.match(lexer.VOID) && p.peekNext().Type == lexer.RPAREN {
		p.advance() // 'void'
		p.advance() // ')'
		return pl
	}

	pl.Params.Append(p.parseParameter())
	for p.match(lexer.COMMA) {
		p.advance()
		pl.Params.Append(p.parseParameter())
	}

	if !p.expect(lexer.RPAREN) {
		p.synchronize()
	}
	return pl
}

// parseParameter parses `(int|char|void) identifier ('[' ']')?`.
func (p *Parser) parseParameter() *ast.Parameter {
	tok := p.cur
	if !isTypeToken(p.cur.Type) {
		p.parserErrorf("Expected a parameter type, got %s", p.cur.Type)
		return &ast.Parameter{Tok: tok}
	}
	dataType := tokenToDataType(p.cur.Type)
	p.advance()

	name := ""
	if p.match(lexer.IDENT) {
		name = p.cur.Lexeme
		p.advance()
	} else {
		p.parserErrorf("Expected a parameter name, got %s", p.cur.Type)
	}

	isArray := false
	if p.match(lexer.LBRACK) {
		p.advance()
		isArray = true
		if !p.expect(lexer.RBRACK) {
			p.synchronize()
		}
	}

	return &ast.Parameter{Tok: tok, Name: name, Type: dataType, IsArray: isArray}
}

// parseVariableDeclRest parses the remainder of a variable declaration
// after its leading `type identifier` has already been consumed:
// `('[' INTEGER? ']')? ('=' expression)? ';'`.
func (p *Parser) parseVariableDeclRest(tok lexer.Token, dataType ast.DataType, name string) *ast.VariableDecl {
	decl := &ast.VariableDecl{Tok: tok, Name: name, Type: dataType}

	if p.match(lexer.LBRACK) {
		p.advance()
		decl.IsArray = true
		if p.match(lexer.INT) {
			size, err := strconv.Atoi(p.cur.Lexeme)
			if err == nil {
				decl.ArraySize = size
			}
			p.advance()
		}
		if !p.expect(lexer.RBRACK) {
			p.synchronize()
			return decl
		}
	}

	if p.match(lexer.ASSIGN) {
		p.advance()
		decl.Init = p.parseExpression()
	}

	if !p.expect(lexer.SEMI) {
		p.synchronize()
	}
	return decl
}
