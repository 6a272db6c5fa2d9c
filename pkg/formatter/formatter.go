// Package formatter renders Stint expression trees to a compact textual
// form for traces and diagnostics. The output is one line per program and
// is not meant to be parsed back.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stint-lang/stint/pkg/ast"
)

// Format renders an expression tree, e.g.
// program(assign(x, add(1, 2)), print(x)).
func Format(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ren:
		return "Ren"
	case *ast.IntLiteral:
		return strconv.FormatInt(e.Value, 10)
	case *ast.FloatLiteral:
		return strconv.FormatFloat(e.Value, 'f', -1, 64)
	case *ast.StrLiteral:
		return strconv.Quote(e.Value)
	case *ast.BoolLiteral:
		return strconv.FormatBool(e.Value)
	case *ast.Variable:
		return e.Name
	case *ast.Sequence:
		return list("sequence", e.Exprs)
	case *ast.Program:
		return list("program", e.Exprs)
	case *ast.Assign:
		return fmt.Sprintf("assign(%s, %s)", e.Variable.Name, Format(e.Value))
	case *ast.Print:
		return fmt.Sprintf("print(%s)", Format(e.Expr))
	case *ast.Add:
		return binary("add", e.Left, e.Right)
	case *ast.Subtract:
		return binary("subtract", e.Left, e.Right)
	case *ast.Multiply:
		return binary("multiply", e.Left, e.Right)
	case *ast.Divide:
		return binary("divide", e.Left, e.Right)
	case *ast.And:
		return binary("and", e.Left, e.Right)
	case *ast.Or:
		return binary("or", e.Left, e.Right)
	case *ast.Not:
		return fmt.Sprintf("not(%s)", Format(e.Expr))
	case *ast.Lt:
		return binary("lt", e.Left, e.Right)
	case *ast.Lte:
		return binary("lte", e.Left, e.Right)
	case *ast.Gt:
		return binary("gt", e.Left, e.Right)
	case *ast.Gte:
		return binary("gte", e.Left, e.Right)
	case *ast.Eq:
		return binary("eq", e.Left, e.Right)
	case *ast.Ne:
		return binary("ne", e.Left, e.Right)
	case *ast.If:
		return fmt.Sprintf("if(%s, %s, %s)", Format(e.Cond), Format(e.Then), Format(e.Else))
	case *ast.While:
		return fmt.Sprintf("while(%s, %s)", Format(e.Cond), Format(e.Body))
	default:
		return fmt.Sprintf("<%T>", expr)
	}
}

func binary(name string, left, right ast.Expr) string {
	return fmt.Sprintf("%s(%s, %s)", name, Format(left), Format(right))
}

func list(name string, exprs []ast.Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = Format(e)
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(parts, ", "))
}
