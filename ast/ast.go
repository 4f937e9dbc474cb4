// Package ast defines the abstract syntax tree produced by package parser.
//
// The tree is a sum type over an interface (Node), with one concrete
// struct per node kind rather than an inline union plus discriminant.
// List-shaped nodes (Program, ParamList, CompoundStmt, ArgList) hold a
// ChildList; everything else holds named, singly-owned struct fields.
// Ownership is exclusive by construction — a child is only ever assigned
// into one parent field — so Go's garbage collector retires any need for
// a manual recursive destructor.
package ast

import (
	"fmt"

	"github.com/cminic/cminic/lexer"
)

// Node is the interface every AST node satisfies.
type Node interface {
	// Pos returns the source position of the node's first token.
	Pos() lexer.Position
	// String renders the node for debugging; not the AST-dump format (see
	// Print in printer.go) but a compact one-line form.
	String() string
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action but produces no value.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is a top-level declaration or function: the only two kinds a
// Program's children may be.
type Decl interface {
	Node
	declNode()
}

// ChildList is a generic ordered-children vector: storage starts at a
// capacity of 4 on the first Append and doubles whenever it is full. The
// type also gives list-shaped nodes and the printer a single named shape
// to dispatch on.
type ChildList[T Node] struct {
	items []T
}

// Append adds a child to the end of the list.
func (c *ChildList[T]) Append(item T) {
	if len(c.items) == cap(c.items) {
		newCap := 4
		if cap(c.items) > 0 {
			newCap = 2 * cap(c.items)
		}
		grown := make([]T, len(c.items), newCap)
		copy(grown, c.items)
		c.items = grown
	}
	c.items = append(c.items, item)
}

// Len returns the number of children.
func (c *ChildList[T]) Len() int {
	return len(c.items)
}

// At returns the child at index i.
func (c *ChildList[T]) At(i int) T {
	return c.items[i]
}

// Items returns the children in order. Callers must not mutate the
// returned slice.
func (c *ChildList[T]) Items() []T {
	return c.items
}

// DataType is the set of primitive types.
type DataType int

const (
	Void DataType = iota
	Int
	Char
)

func (d DataType) String() string {
	switch d {
	case Void:
		return "void"
	case Int:
		return "int"
	case Char:
		return "char"
	default:
		return fmt.Sprintf("DataType(%d)", int(d))
	}
}

// BinaryOp is the set of binary operators.
type BinaryOp int

const (
	Add BinaryOp = iota
	Subtract
	Multiply
	Divide
	Modulo
	Eq
	Neq
	Lt
	Gt
	Lte
	Gte
	LogicalAnd
	LogicalOr
	BitwiseAnd
	BitwiseOr
	BitwiseXor
	ShiftLeft
	ShiftRight
)

var binaryOpSymbols = map[BinaryOp]string{
	Add: "+", Subtract: "-", Multiply: "*", Divide: "/", Modulo: "%",
	Eq: "==", Neq: "!=", Lt: "<", Gt: ">", Lte: "<=", Gte: ">=",
	LogicalAnd: "&&", LogicalOr: "||",
	BitwiseAnd: "&", BitwiseOr: "|", BitwiseXor: "^",
	ShiftLeft: "<<", ShiftRight: ">>",
}

func (b BinaryOp) String() string {
	if s, ok := binaryOpSymbols[b]; ok {
		return s
	}
	return fmt.Sprintf("BinaryOp(%d)", int(b))
}

// UnaryOp is the set of unary operators, covering both prefix and postfix
// variants (the Postfix field on UnaryExpr disambiguates ++/-- which
// exist in both positions).
type UnaryOp int

const (
	Negate UnaryOp = iota
	LogicalNot
	BitwiseNot
	PreIncrement
	PreDecrement
	PostIncrement
	PostDecrement
)

var unaryOpSymbols = map[UnaryOp]string{
	Negate: "-", LogicalNot: "!", BitwiseNot: "~",
	PreIncrement: "++", PreDecrement: "--",
	PostIncrement: "++", PostDecrement: "--",
}

func (u UnaryOp) String() string {
	if s, ok := unaryOpSymbols[u]; ok {
		return s
	}
	return fmt.Sprintf("UnaryOp(%d)", int(u))
}

// Program is the root node: an ordered list of top-level declarations and
// functions (no other child kind may appear here).
type Program struct {
	Declarations ChildList[Decl]
}

func (p *Program) Pos() lexer.Position {
	if p.Declarations.Len() > 0 {
		return p.Declarations.At(0).Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	return fmt.Sprintf("Program(%d)", p.Declarations.Len())
}
