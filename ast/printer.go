package ast

import (
	"bytes"
	"fmt"
	"io"
)

// Print renders node as a depth-first traversal emitting one header line
// per node with two-space indent per level. List-shaped nodes emit a
// "(N)" count header; identifier/integer/char/string leaves print their
// value; missing child slots render as NULL. This is both a debugging aid
// and the golden-output test oracle.
//
// Print never mutates the tree: it is pure read-only traversal.
func Print(w io.Writer, node Node) {
	printNode(w, node, 0)
}

// Dump is a convenience wrapper returning Print's output as a string,
// primarily for tests and snapshot comparisons.
func Dump(node Node) string {
	var buf bytes.Buffer
	Print(&buf, node)
	return buf.String()
}

func indentOf(n int) string {
	b := make([]byte, 2*n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// printChild prints a required or optional concrete-typed child, rendering
// NULL when the concrete pointer is nil. Needed because converting a nil
// *CompoundStmt (or any nil concrete pointer) into the Node interface
// produces a non-nil interface holding a nil value — a plain `node == nil`
// check inside printNode would not catch it, so the nil *CompoundStmt is
// checked here before the interface conversion happens (the *ParamList and
// *ArgList cases of printNode check for a nil pointer themselves).
func printChild(w io.Writer, body *CompoundStmt, indent int) {
	if body == nil {
		fmt.Fprintf(w, "%sNULL\n", indentOf(indent))
		return
	}
	printNode(w, body, indent)
}

// printOptional prints an Expr/Stmt interface field that may genuinely be a
// nil interface (the common case: fields declared with an interface type,
// so an absent child is assigned literal `nil`, not a nil concrete
// pointer).
func printOptional(w io.Writer, node Node, indent int) {
	if node == nil {
		fmt.Fprintf(w, "%sNULL\n", indentOf(indent))
		return
	}
	printNode(w, node, indent)
}

// printableChar renders a character literal's byte, escaping bytes outside
// the printable ASCII range 0x20–0x7E as \xHH.
func printableChar(b byte) string {
	if b < 0x20 || b > 0x7E {
		return fmt.Sprintf("\\x%02X", b)
	}
	return string(rune(b))
}

func printNode(w io.Writer, node Node, indent int) {
	prefix := indentOf(indent)

	switch n := node.(type) {
	case nil:
		fmt.Fprintf(w, "%sNULL\n", prefix)

	case *Program:
		fmt.Fprintf(w, "%sProgram (%d)\n", prefix, n.Declarations.Len())
		for _, d := range n.Declarations.Items() {
			printNode(w, d, indent+1)
		}

	case *Function:
		fmt.Fprintf(w, "%sFunction: %s %s\n", prefix, n.ReturnType, n.Name)
		printNode(w, n.Params, indent+1)
		printChild(w, n.Body, indent+1)

	case *ParamList:
		if n == nil {
			fmt.Fprintf(w, "%sNULL\n", prefix)
			return
		}
		fmt.Fprintf(w, "%sParamList (%d)\n", prefix, n.Params.Len())
		for _, p := range n.Params.Items() {
			printNode(w, p, indent+1)
		}

	case *Parameter:
		suffix := ""
		if n.IsArray {
			suffix = "[]"
		}
		fmt.Fprintf(w, "%sParameter: %s %s%s\n", prefix, n.Type, n.Name, suffix)

	case *CompoundStmt:
		fmt.Fprintf(w, "%sCompoundStmt (%d)\n", prefix, n.Statements.Len())
		for _, s := range n.Statements.Items() {
			printNode(w, s, indent+1)
		}

	case *VariableDecl:
		suffix := ""
		if n.IsArray {
			if n.ArraySize > 0 {
				suffix = fmt.Sprintf("[%d]", n.ArraySize)
			} else {
				suffix = "[]"
			}
		}
		fmt.Fprintf(w, "%sVariableDecl: %s %s%s\n", prefix, n.Type, n.Name, suffix)
		printOptional(w, n.Init, indent+1)

	case *IfStmt:
		fmt.Fprintf(w, "%sIfStmt\n", prefix)
		printOptional(w, n.Cond, indent+1)
		printOptional(w, n.ThenBranch, indent+1)
		printOptional(w, n.ElseBranch, indent+1)

	case *WhileStmt:
		fmt.Fprintf(w, "%sWhileStmt\n", prefix)
		printOptional(w, n.Cond, indent+1)
		printOptional(w, n.Body, indent+1)

	case *ReturnStmt:
		fmt.Fprintf(w, "%sReturnStmt\n", prefix)
		printOptional(w, n.Value, indent+1)

	case *ExprStmt:
		fmt.Fprintf(w, "%sExprStmt\n", prefix)
		printOptional(w, n.Expr, indent+1)

	case *BinaryExpr:
		fmt.Fprintf(w, "%sBinaryExpr: %s\n", prefix, n.Op)
		printOptional(w, n.Left, indent+1)
		printOptional(w, n.Right, indent+1)

	case *AssignExpr:
		fmt.Fprintf(w, "%sAssignExpr\n", prefix)
		printOptional(w, n.Target, indent+1)
		printOptional(w, n.Value, indent+1)

	case *UnaryExpr:
		if n.IsPostfix() {
			fmt.Fprintf(w, "%sUnaryExpr: %s (post)\n", prefix, n.Op)
		} else {
			fmt.Fprintf(w, "%sUnaryExpr: %s\n", prefix, n.Op)
		}
		printOptional(w, n.Operand, indent+1)

	case *CallExpr:
		fmt.Fprintf(w, "%sCallExpr\n", prefix)
		printOptional(w, n.Callee, indent+1)
		printNode(w, n.Args, indent+1)

	case *ArgList:
		if n == nil {
			fmt.Fprintf(w, "%sNULL\n", prefix)
			return
		}
		fmt.Fprintf(w, "%sArgList (%d)\n", prefix, n.Args.Len())
		for _, a := range n.Args.Items() {
			printOptional(w, a, indent+1)
		}

	case *SubscriptExpr:
		fmt.Fprintf(w, "%sSubscriptExpr\n", prefix)
		printOptional(w, n.Array, indent+1)
		printOptional(w, n.Index, indent+1)

	case *Identifier:
		fmt.Fprintf(w, "%sIdentifier: %s\n", prefix, n.Name)

	case *IntegerLit:
		fmt.Fprintf(w, "%sInteger: %d\n", prefix, n.Value)

	case *CharacterLit:
		fmt.Fprintf(w, "%sCharacter: '%s'\n", prefix, printableChar(n.Value))

	case *StringLit:
		fmt.Fprintf(w, "%sString: %q\n", prefix, string(n.Value))

	default:
		// Exhaustive by construction: every Node variant above has a case.
		// Reaching here means a new node kind was added without a printer
		// case to match it.
		fmt.Fprintf(w, "%sUnknown AST node type: %T\n", prefix, node)
	}
}
