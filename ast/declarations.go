package ast

import (
	"fmt"

	"github.com/cminic/cminic/lexer"
)

// Parameter is a single entry in a ParamList: a name, its type, and whether
// it was declared as an array (`int a[]`).
type Parameter struct {
	Tok     lexer.Token
	Name    string
	Type    DataType
	IsArray bool
}

func (p *Parameter) Pos() lexer.Position { return p.Tok.Pos }
func (p *Parameter) String() string {
	suffix := ""
	if p.IsArray {
		suffix = "[]"
	}
	return fmt.Sprintf("%s %s%s", p.Type, p.Name, suffix)
}

// ParamList is the ordered list of a function's Parameter nodes.
type ParamList struct {
	Tok    lexer.Token
	Params ChildList[*Parameter]
}

func (pl *ParamList) Pos() lexer.Position { return pl.Tok.Pos }
func (pl *ParamList) String() string      { return fmt.Sprintf("ParamList(%d)", pl.Params.Len()) }

// Function is a function definition or forward declaration. Body is nil
// for a forward declaration (`int f(int a);`).
type Function struct {
	Tok        lexer.Token
	Name       string
	ReturnType DataType
	Params     *ParamList
	Body       *CompoundStmt // nil for a forward declaration
}

func (f *Function) Pos() lexer.Position { return f.Tok.Pos }
func (f *Function) declNode()           {}
func (f *Function) String() string {
	return fmt.Sprintf("Function %s %s(...)", f.ReturnType, f.Name)
}

// VariableDecl is both a top-level global declaration and a local
// declaration statement — it implements both Decl and Stmt.
type VariableDecl struct {
	Tok       lexer.Token
	Name      string
	Type      DataType
	IsArray   bool
	ArraySize int  // meaningful only when IsArray; 0 means size was omitted
	Init      Expr // optional initializer, nil if absent
}

func (v *VariableDecl) Pos() lexer.Position { return v.Tok.Pos }
func (v *VariableDecl) declNode()           {}
func (v *VariableDecl) stmtNode()           {}
func (v *VariableDecl) String() string {
	suffix := ""
	if v.IsArray {
		if v.ArraySize > 0 {
			suffix = fmt.Sprintf("[%d]", v.ArraySize)
		} else {
			suffix = "[]"
		}
	}
	return fmt.Sprintf("VariableDecl %s %s%s", v.Type, v.Name, suffix)
}
