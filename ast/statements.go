package ast

import (
	"fmt"

	"github.com/cminic/cminic/lexer"
)

// CompoundStmt is a `{ ... }` block: an ordered list of statements.
type CompoundStmt struct {
	Tok        lexer.Token
	Statements ChildList[Stmt]
}

func (c *CompoundStmt) Pos() lexer.Position { return c.Tok.Pos }
func (c *CompoundStmt) stmtNode()           {}
func (c *CompoundStmt) String() string {
	return fmt.Sprintf("CompoundStmt(%d)", c.Statements.Len())
}

// IfStmt is `if (cond) thenBranch [else elseBranch]`. ElseBranch is nil
// when absent; dangling-else resolution (binding to the nearest unmatched
// if) happens in the parser, not here.
type IfStmt struct {
	Tok        lexer.Token
	Cond       Expr
	ThenBranch Stmt
	ElseBranch Stmt // nil if absent
}

func (i *IfStmt) Pos() lexer.Position { return i.Tok.Pos }
func (i *IfStmt) stmtNode()           {}
func (i *IfStmt) String() string      { return "IfStmt" }

// WhileStmt is `while (cond) body`.
type WhileStmt struct {
	Tok  lexer.Token
	Cond Expr
	Body Stmt
}

func (w *WhileStmt) Pos() lexer.Position { return w.Tok.Pos }
func (w *WhileStmt) stmtNode()           {}
func (w *WhileStmt) String() string      { return "WhileStmt" }

// ReturnStmt is `return [expr];`. Value is nil for a bare `return;`.
type ReturnStmt struct {
	Tok   lexer.Token
	Value Expr // nil if absent
}

func (r *ReturnStmt) Pos() lexer.Position { return r.Tok.Pos }
func (r *ReturnStmt) stmtNode()           {}
func (r *ReturnStmt) String() string      { return "ReturnStmt" }

// ExprStmt is an expression used as a statement, including the empty
// statement `;` (Expr is nil in that case).
type ExprStmt struct {
	Tok  lexer.Token
	Expr Expr // nil for the empty statement
}

func (e *ExprStmt) Pos() lexer.Position { return e.Tok.Pos }
func (e *ExprStmt) stmtNode()           {}
func (e *ExprStmt) String() string      { return "ExprStmt" }
