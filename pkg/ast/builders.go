package ast

// Construction helpers for the node kinds that appear most often in
// hand-built programs. Operator nodes read fine as struct literals
// (&Add{Left: ..., Right: ...}) and have no helpers.

// Int builds an integer literal node.
func Int(v int64) *IntLiteral { return &IntLiteral{Value: v} }

// Float builds a floating-point literal node.
func Float(v float64) *FloatLiteral { return &FloatLiteral{Value: v} }

// Str builds a string literal node.
func Str(v string) *StrLiteral { return &StrLiteral{Value: v} }

// Bool builds a boolean literal node.
func Bool(v bool) *BoolLiteral { return &BoolLiteral{Value: v} }

// Var builds a variable reference node.
func Var(name string) *Variable { return &Variable{Name: name} }

// Set builds an assignment of value to the named variable.
func Set(name string, value Expr) *Assign {
	return &Assign{Variable: Var(name), Value: value}
}

// Seq builds a Sequence from the given expressions.
func Seq(exprs ...Expr) *Sequence { return &Sequence{Exprs: exprs} }

// Prog builds a top-level Program from the given expressions.
func Prog(exprs ...Expr) *Program { return &Program{Exprs: exprs} }
