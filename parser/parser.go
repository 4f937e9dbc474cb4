// Package parser implements a recursive-descent, one-token-lookahead parser
// for the cminic C-like subset. It turns a lexer.Lexer's token stream into
// an *ast.Program, reporting diagnostics through errors.Reporter rather than
// returning an error — on a syntax error it enters panic-mode recovery and
// keeps going, so a single run surfaces every error it can find.
package parser

import (
	"context"
	"fmt"

	"github.com/cminic/cminic/ast"
	"github.com/cminic/cminic/errors"
	"github.com/cminic/cminic/lexer"
)

// DefaultMaxParenDepth bounds nested parenthesized expressions so a
// pathological input fails with a reported error instead of overflowing the
// Go call stack.
const DefaultMaxParenDepth = 2048

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithMaxParenDepth overrides the parenthesis-nesting guard, mainly for
// tests that want to pin the boundary with a small limit.
func WithMaxParenDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxParenDepth = n
		}
	}
}

// Parser wraps a Lexer and consumes its token stream one token at a time.
type Parser struct {
	lex      *lexer.Lexer
	reporter *errors.Reporter

	cur    lexer.Token
	peeked *lexer.Token // one token of lookahead beyond cur, filled lazily

	maxParenDepth int
	parenDepth    int
}

// New constructs a Parser reading from lex. reporter receives every
// diagnostic; the caller owns it and may inspect reporter.Count() after
// ParseProgram returns.
func New(lex *lexer.Lexer, reporter *errors.Reporter, opts ...Option) *Parser {
	p := &Parser{
		lex:           lex,
		reporter:      reporter,
		maxParenDepth: DefaultMaxParenDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.cur = lex.Peek()
	return p
}

// match reports whether the current token has type tt, without consuming.
func (p *Parser) match(tt lexer.TokenType) bool {
	return p.cur.Type == tt
}

// advance consumes the current token and returns the new current token.
func (p *Parser) advance() lexer.Token {
	if p.peeked != nil {
		p.cur = *p.peeked
		p.peeked = nil
		return p.cur
	}
	p.cur = p.lex.Advance()
	return p.cur
}

// peekNext returns the token one beyond cur without consuming either. It
// is the one spot in the grammar (the `void)` empty-parameter-list special
// case) that needs more than the single-token lookahead cur already gives
// every other production.
func (p *Parser) peekNext() lexer.Token {
	if p.peeked == nil {
		t := p.lex.Advance()
		p.peeked = &t
	}
	return *p.peeked
}

// expect consumes the current token if it has type tt, returning true. If
// not, it reports "Expected token X, got Y" at the current position and
// returns false without consuming — the caller decides how to recover.
func (p *Parser) expect(tt lexer.TokenType) bool {
	if p.match(tt) {
		p.advance()
		return true
	}
	p.parserErrorf("Expected token %s, got %s", tt, p.cur.Type)
	return false
}

// parserError reports msg at the current token's position.
func (p *Parser) parserError(msg string) {
	p.reporter.ReportWithToken(p.cur.File, errors.Position{Line: p.cur.Pos.Line, Column: p.cur.Pos.Column}, p.cur.Lexeme, msg)
}

func (p *Parser) parserErrorf(format string, args ...any) {
	p.parserError(fmt.Sprintf(format, args...))
}

// ParseProgram parses the whole token stream and returns the root node plus
// the number of errors the reporter accumulated during this call. ctx is
// checked for cancellation between top-level declarations only — the
// grammar has no suspension points inside expression or statement
// recursion, so a cancelled context simply stops the loop from starting
// another top-level item; a nil or background context runs to EOF exactly
// like an unconditional parse.
func (p *Parser) ParseProgram(ctx context.Context) (*ast.Program, int) {
	before := p.reporter.Count()
	prog := &ast.Program{}

	for !p.match(lexer.EOF) {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return prog, p.reporter.Count() - before
			default:
			}
		}

		if p.match(lexer.HASH) {
			p.parsePreprocLine()
			continue
		}

		decl := p.parseToplevel()
		if decl != nil {
			prog.Declarations.Append(decl)
		}
	}

	return prog, p.reporter.Count() - before
}

// parsePreprocLine skips a `#directive ...` line. The remainder is consumed
// token-by-token until the next ';' or EOF, not the next newline — this
// repo's documented, intentional divergence from real C preprocessor
// semantics (a directive never actually terminates at ';' in C).
func (p *Parser) parsePreprocLine() {
	p.advance() // '#'
	if p.match(lexer.IDENT) {
		p.advance() // directive name, e.g. include/define
	}
	for !p.match(lexer.SEMI) && !p.match(lexer.EOF) {
		p.advance()
	}
	if p.match(lexer.SEMI) {
		p.advance()
	}
}

// isTypeToken reports whether tt can start a type specifier.
func isTypeToken(tt lexer.TokenType) bool {
	return tt == lexer.INT_KW || tt == lexer.CHAR_KW || tt == lexer.VOID
}

func tokenToDataType(tt lexer.TokenType) ast.DataType {
	switch tt {
	case lexer.CHAR_KW:
		return ast.Char
	case lexer.VOID:
		return ast.Void
	default:
		return ast.Int
	}
}

// parseToplevel parses one top-level item: a function definition/forward
// declaration or a global variable declaration. Both share the prefix
// `type identifier`; a following '(' resolves the ambiguity in favor of a
// function.
func (p *Parser) parseToplevel() ast.Decl {
	if !isTypeToken(p.cur.Type) {
		p.parserErrorf("Expected a type specifier, got %s", p.cur.Type)
		p.synchronize()
		if p.match(lexer.RBRACE) {
			p.advance() // a stray '}' has no enclosing block to consume it
		}
		return nil
	}

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

	if p.match(lexer.LPAREN) {
		return p.parseFunction(tok, dataType, name)
	}
	return p.parseVariableDeclRest(tok, dataType, name)
}
