package parser

import "github.com/cminic/cminic/lexer"

// synchronize implements panic-mode recovery: discard tokens until a
// synchronizing token — ';', '}', or EOF — is reached. The terminating ';'
// is consumed if present; '}' and EOF are left for the caller to re-examine,
// since both mark a boundary some enclosing rule is waiting to see. Every
// iteration either advances the cursor or returns, so the loop terminates;
// the '}' it stops at is consumed by parseCompoundStmt, or by parseToplevel
// when it is a stray '}' at top level.
func (p *Parser) synchronize() {
	for {
		switch p.cur.Type {
		case lexer.SEMI:
			p.advance()
			return
		case lexer.RBRACE, lexer.EOF:
			return
		default:
			p.advance()
		}
	}
}
