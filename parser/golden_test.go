package parser

import (
	"context"
	"strings"
	"testing"

	"github.com/cminic/cminic/ast"
	"github.com/cminic/cminic/errors"
	"github.com/cminic/cminic/lexer"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestGoldenASTDumps pins the printed AST dump for the spec's concrete
// parsing scenarios, using the dump format itself as the test oracle.
func TestGoldenASTDumps(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"main_returns_zero", "int main(void) { return 0; }"},
		{"global_array_decl", "int a[10];"},
		{"precedence_mul_over_add", "int x = 1 + 2 * 3;"},
		{"dangling_else", "void f() { if (a) if (b) x = 1; else x = 2; }"},
		{"right_assoc_assignment", "void f() { a = b = 3; }"},
		{"while_loop_function", "int f() { while (n > 0) { n = n - 1; } return n; }"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := errors.New()
			l := lexer.New(strings.NewReader(tc.src), "golden.c", r)
			p := New(l, r)
			prog, _ := p.ParseProgram(context.Background())
			snaps.MatchSnapshot(t, ast.Dump(prog))
		})
	}
}
