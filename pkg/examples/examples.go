// Package examples holds runnable Stint demo programs.
//
// Stint programs are built by direct construction, so the CLI runs named
// programs from this registry instead of reading source files.
package examples

import (
	"sort"

	"github.com/stint-lang/stint/pkg/ast"
)

// Example is a named, documented demo program.
type Example struct {
	Name    string
	Doc     string
	Program ast.Expr
}

var registry = map[string]Example{
	"arith": {
		Name: "arith",
		Doc:  "integer floor division, float division, operator nesting",
		Program: ast.Prog(
			ast.Set("x", &ast.Divide{Left: ast.Int(7), Right: ast.Int(2)}),
			&ast.Print{Expr: ast.Var("x")},
			ast.Set("y", &ast.Divide{Left: ast.Float(7), Right: ast.Float(2)}),
			&ast.Print{Expr: ast.Var("y")},
			&ast.Print{Expr: &ast.Subtract{
				Left: &ast.Multiply{
					Left:  &ast.Add{Left: ast.Int(1), Right: ast.Int(2)},
					Right: ast.Int(4),
				},
				Right: ast.Int(5),
			}},
		),
	},
	"greeting": {
		Name: "greeting",
		Doc:  "string concatenation with Add",
		Program: ast.Prog(
			ast.Set("greeting", &ast.Add{
				Left:  &ast.Add{Left: ast.Str("Hello"), Right: ast.Str(", ")},
				Right: ast.Str("Stint"),
			}),
			&ast.Print{Expr: ast.Var("greeting")},
		),
	},
	"countdown": {
		Name: "countdown",
		Doc:  "a while loop that rebinds its counter every iteration",
		Program: ast.Prog(
			ast.Set("i", ast.Int(3)),
			&ast.While{
				Cond: &ast.Gt{Left: ast.Var("i"), Right: ast.Int(0)},
				Body: ast.Seq(
					&ast.Print{Expr: ast.Var("i")},
					ast.Set("i", &ast.Subtract{Left: ast.Var("i"), Right: ast.Int(1)}),
				),
			},
			&ast.Print{Expr: ast.Str("liftoff")},
		),
	},
	"shadowing": {
		Name: "shadowing",
		Doc:  "rebinding appends frames; lookup sees the newest (run with --debug)",
		Program: ast.Prog(
			ast.Set("x", ast.Int(1)),
			ast.Set("x", ast.Int(2)),
			ast.Set("x", ast.Int(3)),
			&ast.Print{Expr: ast.Var("x")},
		),
	},
	"branches": {
		Name: "branches",
		Doc:  "if evaluates both branches and keeps the chosen one",
		Program: ast.Prog(
			ast.Set("answer", &ast.If{
				Cond: &ast.Lt{Left: ast.Int(1), Right: ast.Int(2)},
				Then: ast.Seq(&ast.Print{Expr: ast.Str("then branch")}, ast.Str("yes")),
				Else: ast.Seq(&ast.Print{Expr: ast.Str("else branch")}, ast.Str("no")),
			}),
			&ast.Print{Expr: ast.Var("answer")},
		),
	},
	"units": {
		Name: "units",
		Doc:  "the unit value under Print and the relational operators",
		Program: ast.Prog(
			&ast.Print{Expr: &ast.Ren{}},
			&ast.Print{Expr: &ast.Eq{Left: &ast.Ren{}, Right: &ast.Ren{}}},
			&ast.Print{Expr: &ast.Lt{Left: &ast.Ren{}, Right: &ast.Ren{}}},
			&ast.Print{Expr: &ast.Gte{Left: &ast.Ren{}, Right: &ast.Ren{}}},
		),
	},
}

// Lookup returns the example registered under name.
func Lookup(name string) (Example, bool) {
	ex, ok := registry[name]
	return ex, ok
}

// All returns every example sorted by name.
func All() []Example {
	out := make([]Example, 0, len(registry))
	for _, ex := range registry {
		out = append(out, ex)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
