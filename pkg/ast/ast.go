// Package ast defines the Stint expression node types.
//
// Nodes are immutable once constructed; the evaluator never modifies them.
// Programs are built by direct construction (there is no parser), either
// with struct literals or with the helpers in builders.go.
package ast

// Expr is the interface implemented by all expression nodes.
// The marker method keeps the variant set sealed to this package.
type Expr interface {
	Kind() string
	exprNode() // sealed marker
}

// --- Literal Expressions ---

// Ren is the unit literal: it evaluates to the absence of a value.
type Ren struct{}

func (n *Ren) Kind() string { return "Ren" }
func (n *Ren) exprNode()    {}

type IntLiteral struct {
	Value int64
}

func (n *IntLiteral) Kind() string { return "IntLiteral" }
func (n *IntLiteral) exprNode()    {}

type FloatLiteral struct {
	Value float64
}

func (n *FloatLiteral) Kind() string { return "FloatLiteral" }
func (n *FloatLiteral) exprNode()    {}

type StrLiteral struct {
	Value string
}

func (n *StrLiteral) Kind() string { return "StrLiteral" }
func (n *StrLiteral) exprNode()    {}

type BoolLiteral struct {
	Value bool
}

func (n *BoolLiteral) Kind() string { return "BoolLiteral" }
func (n *BoolLiteral) exprNode()    {}

// --- Structural Expressions ---

// Sequence evaluates its expressions in order and yields the last one.
type Sequence struct {
	Exprs []Expr
}

func (n *Sequence) Kind() string { return "Sequence" }
func (n *Sequence) exprNode()    {}

// Program is a whole-program Sequence. It evaluates identically; the
// distinct kind exists so drivers can require one at the top level.
type Program struct {
	Exprs []Expr
}

func (n *Program) Kind() string { return "Program" }
func (n *Program) exprNode()    {}

type Variable struct {
	Name string
}

func (n *Variable) Kind() string { return "Variable" }
func (n *Variable) exprNode()    {}

type Assign struct {
	Variable *Variable
	Value    Expr
}

func (n *Assign) Kind() string { return "Assign" }
func (n *Assign) exprNode()    {}

type Print struct {
	Expr Expr
}

func (n *Print) Kind() string { return "Print" }
func (n *Print) exprNode()    {}

// --- Arithmetic Expressions ---

type Add struct {
	Left  Expr
	Right Expr
}

func (n *Add) Kind() string { return "Add" }
func (n *Add) exprNode()    {}

type Subtract struct {
	Left  Expr
	Right Expr
}

func (n *Subtract) Kind() string { return "Subtract" }
func (n *Subtract) exprNode()    {}

type Multiply struct {
	Left  Expr
	Right Expr
}

func (n *Multiply) Kind() string { return "Multiply" }
func (n *Multiply) exprNode()    {}

type Divide struct {
	Left  Expr
	Right Expr
}

func (n *Divide) Kind() string { return "Divide" }
func (n *Divide) exprNode()    {}

// --- Logical Expressions ---

type And struct {
	Left  Expr
	Right Expr
}

func (n *And) Kind() string { return "And" }
func (n *And) exprNode()    {}

type Or struct {
	Left  Expr
	Right Expr
}

func (n *Or) Kind() string { return "Or" }
func (n *Or) exprNode()    {}

type Not struct {
	Expr Expr
}

func (n *Not) Kind() string { return "Not" }
func (n *Not) exprNode()    {}

// --- Relational Expressions ---

type Lt struct {
	Left  Expr
	Right Expr
}

func (n *Lt) Kind() string { return "Lt" }
func (n *Lt) exprNode()    {}

type Lte struct {
	Left  Expr
	Right Expr
}

func (n *Lte) Kind() string { return "Lte" }
func (n *Lte) exprNode()    {}

type Gt struct {
	Left  Expr
	Right Expr
}

func (n *Gt) Kind() string { return "Gt" }
func (n *Gt) exprNode()    {}

type Gte struct {
	Left  Expr
	Right Expr
}

func (n *Gte) Kind() string { return "Gte" }
func (n *Gte) exprNode()    {}

type Eq struct {
	Left  Expr
	Right Expr
}

func (n *Eq) Kind() string { return "Eq" }
func (n *Eq) exprNode()    {}

type Ne struct {
	Left  Expr
	Right Expr
}

func (n *Ne) Kind() string { return "Ne" }
func (n *Ne) exprNode()    {}

// --- Control Flow ---

// If type-checks its condition, then evaluates both branches in order and
// yields the branch selected by the condition. Both branches always run.
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (n *If) Kind() string { return "If" }
func (n *If) exprNode()    {}

type While struct {
	Cond Expr
	Body Expr
}

func (n *While) Kind() string { return "While" }
func (n *While) exprNode()    {}
