package formatter_test

import (
	"testing"

	"github.com/stint-lang/stint/pkg/ast"
	"github.com/stint-lang/stint/pkg/formatter"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		expr ast.Expr
		want string
	}{
		{&ast.Ren{}, "Ren"},
		{ast.Int(42), "42"},
		{ast.Float(3.5), "3.5"},
		{ast.Str("hi"), `"hi"`},
		{ast.Bool(true), "true"},
		{ast.Var("x"), "x"},
		{ast.Set("x", &ast.Add{Left: ast.Int(1), Right: ast.Int(2)}), "assign(x, add(1, 2))"},
		{&ast.Print{Expr: ast.Var("x")}, "print(x)"},
		{&ast.Not{Expr: ast.Bool(false)}, "not(false)"},
		{&ast.Ne{Left: &ast.Ren{}, Right: &ast.Ren{}}, "ne(Ren, Ren)"},
		{
			&ast.If{Cond: ast.Bool(true), Then: ast.Int(1), Else: ast.Int(2)},
			"if(true, 1, 2)",
		},
		{
			&ast.While{
				Cond: &ast.Gt{Left: ast.Var("i"), Right: ast.Int(0)},
				Body: ast.Set("i", &ast.Subtract{Left: ast.Var("i"), Right: ast.Int(1)}),
			},
			"while(gt(i, 0), assign(i, subtract(i, 1)))",
		},
		{ast.Seq(), "sequence()"},
		{
			ast.Prog(ast.Set("x", ast.Int(1)), &ast.Print{Expr: ast.Var("x")}),
			"program(assign(x, 1), print(x))",
		},
	}

	for _, tt := range tests {
		if got := formatter.Format(tt.expr); got != tt.want {
			t.Errorf("Format(%T) = %q, want %q", tt.expr, got, tt.want)
		}
	}
}
