package ast

import (
	"fmt"

	"github.com/cminic/cminic/lexer"
)

// BinaryExpr is `left op right` for any of the BinaryOp operators.
type BinaryExpr struct {
	Tok   lexer.Token // the operator token
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (b *BinaryExpr) Pos() lexer.Position { return b.Tok.Pos }
func (b *BinaryExpr) exprNode()           {}
func (b *BinaryExpr) String() string      { return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right) }

// AssignExpr is `target = value`, right-associative.
type AssignExpr struct {
	Tok    lexer.Token // the '=' token
	Target Expr
	Value  Expr
}

func (a *AssignExpr) Pos() lexer.Position { return a.Tok.Pos }
func (a *AssignExpr) exprNode()           {}
func (a *AssignExpr) String() string      { return fmt.Sprintf("(%s = %s)", a.Target, a.Value) }

// UnaryExpr is a prefix (`-x`, `!x`, `~x`, `++x`, `--x`) or postfix
// (`x++`, `x--`) unary operation; Op's value (e.g. PostIncrement vs.
// PreIncrement) disambiguates direction.
type UnaryExpr struct {
	Tok     lexer.Token // the operator token
	Op      UnaryOp
	Operand Expr
}

func (u *UnaryExpr) Pos() lexer.Position { return u.Tok.Pos }
func (u *UnaryExpr) exprNode()           {}
func (u *UnaryExpr) IsPostfix() bool {
	return u.Op == PostIncrement || u.Op == PostDecrement
}
func (u *UnaryExpr) String() string {
	if u.IsPostfix() {
		return fmt.Sprintf("(%s%s)", u.Operand, u.Op)
	}
	return fmt.Sprintf("(%s%s)", u.Op, u.Operand)
}

// ArgList is the ordered list of argument expressions to a CallExpr.
type ArgList struct {
	Tok  lexer.Token
	Args ChildList[Expr]
}

func (a *ArgList) Pos() lexer.Position { return a.Tok.Pos }
func (a *ArgList) String() string      { return fmt.Sprintf("ArgList(%d)", a.Args.Len()) }

// CallExpr is `callee(args)`.
type CallExpr struct {
	Tok    lexer.Token // the '(' token
	Callee Expr
	Args   *ArgList
}

func (c *CallExpr) Pos() lexer.Position { return c.Tok.Pos }
func (c *CallExpr) exprNode()           {}
func (c *CallExpr) String() string      { return fmt.Sprintf("%s(...)", c.Callee) }

// SubscriptExpr is `array[index]`.
type SubscriptExpr struct {
	Tok   lexer.Token // the '[' token
	Array Expr
	Index Expr
}

func (s *SubscriptExpr) Pos() lexer.Position { return s.Tok.Pos }
func (s *SubscriptExpr) exprNode()           {}
func (s *SubscriptExpr) String() string      { return fmt.Sprintf("%s[%s]", s.Array, s.Index) }

// Identifier is a bare name reference.
type Identifier struct {
	Tok  lexer.Token
	Name string
}

func (i *Identifier) Pos() lexer.Position { return i.Tok.Pos }
func (i *Identifier) exprNode()           {}
func (i *Identifier) String() string      { return i.Name }

// IntegerLit is an integer literal, already parsed to its numeric value.
type IntegerLit struct {
	Tok   lexer.Token
	Value int64
}

func (n *IntegerLit) Pos() lexer.Position { return n.Tok.Pos }
func (n *IntegerLit) exprNode()           {}
func (n *IntegerLit) String() string      { return fmt.Sprintf("%d", n.Value) }

// CharacterLit is a single decoded byte.
type CharacterLit struct {
	Tok   lexer.Token
	Value byte
}

func (c *CharacterLit) Pos() lexer.Position { return c.Tok.Pos }
func (c *CharacterLit) exprNode()           {}
func (c *CharacterLit) String() string      { return fmt.Sprintf("'%c'", c.Value) }

// StringLit is an owned byte string. Value holds the raw inter-quote
// bytes, with escapes left textually encoded rather than decoded.
type StringLit struct {
	Tok   lexer.Token
	Value []byte
}

func (s *StringLit) Pos() lexer.Position { return s.Tok.Pos }
func (s *StringLit) exprNode()           {}
func (s *StringLit) String() string      { return fmt.Sprintf("%q", s.Value) }
