// Package evaluator implements the Stint tree-walking evaluator and its
// persistent interpreter state.
package evaluator

import (
	"fmt"
	"io"
	"os"

	"github.com/stint-lang/stint/pkg/ast"
	"github.com/stint-lang/stint/pkg/diagnostics"
	"github.com/stint-lang/stint/pkg/formatter"
	"github.com/stint-lang/stint/pkg/types"
)

// RuntimeError represents a fatal evaluation error. Code is one of the
// diagnostics constants (E_SYNTAX, E_TYPE, E_MATH). Errors abort the whole
// evaluation; nothing is caught or retried inside the evaluator.
type RuntimeError struct {
	Code    string
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func syntaxErrf(format string, args ...any) *RuntimeError {
	return &RuntimeError{Code: diagnostics.ESyntax, Message: fmt.Sprintf(format, args...)}
}

func typeErrf(format string, args ...any) *RuntimeError {
	return &RuntimeError{Code: diagnostics.EType, Message: fmt.Sprintf(format, args...)}
}

func mathErrf(format string, args ...any) *RuntimeError {
	return &RuntimeError{Code: diagnostics.EMath, Message: fmt.Sprintf(format, args...)}
}

func mismatchErr(op string, left, right types.Type) *RuntimeError {
	return typeErrf("mismatched types for %s: %s and %s", op, left, right)
}

// Interpreter evaluates Stint expression trees. The zero configuration
// writes Print output to stdout and emits no debug trace.
type Interpreter struct {
	out   io.Writer
	debug io.Writer
}

// Option is a functional option for configuring an Interpreter.
type Option func(*Interpreter)

// WithOutput directs Print's output to w.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) {
		in.out = w
	}
}

// WithDebug enables the diagnostic trace after Run: the rendered program,
// the final value and type, and the final state are written to w.
func WithDebug(w io.Writer) Option {
	return func(in *Interpreter) {
		in.debug = w
	}
}

// New creates an Interpreter with the given options.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{out: os.Stdout}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Run evaluates program against the empty state and returns the final
// value, its type marker, and the final state.
func (in *Interpreter) Run(program ast.Expr) (any, types.Type, *State, error) {
	value, typ, final, err := in.Evaluate(program, Empty())
	if err != nil {
		return nil, types.Unit, nil, err
	}
	if in.debug != nil {
		fmt.Fprintf(in.debug, "program: %s\n", formatter.Format(program))
		fmt.Fprintf(in.debug, "final value: (%s, %s)\n", FormatValue(value, typ), typ)
		fmt.Fprintf(in.debug, "final state: %s\n", final)
	}
	return value, typ, final, err
}

// Run evaluates program with a default Interpreter (Print to stdout).
func Run(program ast.Expr) (any, types.Type, *State, error) {
	return New().Run(program)
}

// Evaluate computes one expression against state and returns its value,
// its type marker, and the possibly extended state. Sub-expressions are
// always evaluated left to right with the state threaded through each
// step; no operator short-circuits.
func (in *Interpreter) Evaluate(expr ast.Expr, state *State) (any, types.Type, *State, error) {
	switch e := expr.(type) {
	case *ast.Ren:
		return nil, types.Unit, state, nil

	case *ast.IntLiteral:
		return e.Value, types.Integer, state, nil

	case *ast.FloatLiteral:
		return e.Value, types.FloatingPoint, state, nil

	case *ast.StrLiteral:
		return e.Value, types.String, state, nil

	case *ast.BoolLiteral:
		return e.Value, types.Boolean, state, nil

	case *ast.Sequence:
		return in.evalSequence(e.Exprs, state)

	case *ast.Program:
		return in.evalSequence(e.Exprs, state)

	case *ast.Variable:
		value, typ, ok := state.Get(e.Name)
		if !ok {
			return nil, types.Unit, nil, syntaxErrf("cannot read from %s before assignment", e.Name)
		}
		return value, typ, state, nil

	case *ast.Assign:
		return in.evalAssign(e, state)

	case *ast.Print:
		return in.evalPrint(e, state)

	case *ast.Add:
		return in.evalAdd(e, state)

	case *ast.Subtract:
		return in.evalNumeric("Subtract", e.Left, e.Right, state,
			func(a, b int64) int64 { return a - b },
			func(a, b float64) float64 { return a - b })

	case *ast.Multiply:
		return in.evalNumeric("Multiply", e.Left, e.Right, state,
			func(a, b int64) int64 { return a * b },
			func(a, b float64) float64 { return a * b })

	case *ast.Divide:
		return in.evalDivide(e, state)

	case *ast.And:
		return in.evalLogic("And", e.Left, e.Right, state,
			func(a, b bool) bool { return a && b })

	case *ast.Or:
		return in.evalLogic("Or", e.Left, e.Right, state,
			func(a, b bool) bool { return a || b })

	case *ast.Not:
		value, typ, next, err := in.Evaluate(e.Expr, state)
		if err != nil {
			return nil, types.Unit, nil, err
		}
		if typ != types.Boolean {
			return nil, types.Unit, nil, typeErrf("cannot perform logical not on a non-boolean operand")
		}
		return !value.(bool), types.Boolean, next, nil

	case *ast.Lt:
		return in.evalCompare("Lt", e.Left, e.Right, state,
			func(ord int) bool { return ord < 0 }, false)

	case *ast.Lte:
		return in.evalCompare("Lte", e.Left, e.Right, state,
			func(ord int) bool { return ord <= 0 }, true)

	case *ast.Gt:
		return in.evalCompare("Gt", e.Left, e.Right, state,
			func(ord int) bool { return ord > 0 }, false)

	case *ast.Gte:
		return in.evalCompare("Gte", e.Left, e.Right, state,
			func(ord int) bool { return ord >= 0 }, true)

	case *ast.Eq:
		return in.evalCompare("Eq", e.Left, e.Right, state,
			func(ord int) bool { return ord == 0 }, true)

	case *ast.Ne:
		return in.evalCompare("Ne", e.Left, e.Right, state,
			func(ord int) bool { return ord != 0 }, false)

	case *ast.If:
		return in.evalIf(e, state)

	case *ast.While:
		return in.evalWhile(e, state)

	default:
		return nil, types.Unit, nil, syntaxErrf("unhandled expression: %T", expr)
	}
}

// evalPair evaluates the two operands of a binary node: left against the
// incoming state, right against the state left produced. Both operands'
// side effects occur for every binary operator.
func (in *Interpreter) evalPair(left, right ast.Expr, state *State) (any, types.Type, any, types.Type, *State, error) {
	leftValue, leftType, next, err := in.Evaluate(left, state)
	if err != nil {
		return nil, types.Unit, nil, types.Unit, nil, err
	}
	rightValue, rightType, next, err := in.Evaluate(right, next)
	if err != nil {
		return nil, types.Unit, nil, types.Unit, nil, err
	}
	return leftValue, leftType, rightValue, rightType, next, nil
}

func (in *Interpreter) evalSequence(exprs []ast.Expr, state *State) (any, types.Type, *State, error) {
	var (
		value any
		typ   = types.Unit
		next  = state
		err   error
	)
	for _, expr := range exprs {
		value, typ, next, err = in.Evaluate(expr, next)
		if err != nil {
			return nil, types.Unit, nil, err
		}
	}
	return value, typ, next, nil
}

func (in *Interpreter) evalAssign(e *ast.Assign, state *State) (any, types.Type, *State, error) {
	value, typ, next, err := in.Evaluate(e.Value, state)
	if err != nil {
		return nil, types.Unit, nil, err
	}
	// Any prior binding is looked up in the state produced by the value
	// expression, not the incoming one.
	if _, prevType, bound := next.Get(e.Variable.Name); bound && prevType != typ {
		return nil, types.Unit, nil, typeErrf("mismatched types for Assign: cannot assign %s to %s", typ, prevType)
	}
	return value, typ, next.Bind(e.Variable.Name, value, typ), nil
}

func (in *Interpreter) evalPrint(e *ast.Print, state *State) (any, types.Type, *State, error) {
	value, typ, next, err := in.Evaluate(e.Expr, state)
	if err != nil {
		return nil, types.Unit, nil, err
	}
	fmt.Fprintln(in.out, FormatValue(value, typ))
	return value, typ, next, nil
}

func (in *Interpreter) evalAdd(e *ast.Add, state *State) (any, types.Type, *State, error) {
	leftValue, leftType, rightValue, rightType, next, err := in.evalPair(e.Left, e.Right, state)
	if err != nil {
		return nil, types.Unit, nil, err
	}
	if leftType != rightType {
		return nil, types.Unit, nil, mismatchErr("Add", leftType, rightType)
	}
	switch leftType {
	case types.Integer:
		return leftValue.(int64) + rightValue.(int64), types.Integer, next, nil
	case types.FloatingPoint:
		return leftValue.(float64) + rightValue.(float64), types.FloatingPoint, next, nil
	case types.String:
		return leftValue.(string) + rightValue.(string), types.String, next, nil
	default:
		return nil, types.Unit, nil, typeErrf("cannot add %s operands", leftType)
	}
}

func (in *Interpreter) evalNumeric(op string, left, right ast.Expr, state *State,
	intFn func(int64, int64) int64, floatFn func(float64, float64) float64) (any, types.Type, *State, error) {

	leftValue, leftType, rightValue, rightType, next, err := in.evalPair(left, right, state)
	if err != nil {
		return nil, types.Unit, nil, err
	}
	if leftType != rightType {
		return nil, types.Unit, nil, mismatchErr(op, leftType, rightType)
	}
	switch leftType {
	case types.Integer:
		return intFn(leftValue.(int64), rightValue.(int64)), types.Integer, next, nil
	case types.FloatingPoint:
		return floatFn(leftValue.(float64), rightValue.(float64)), types.FloatingPoint, next, nil
	default:
		return nil, types.Unit, nil, typeErrf("cannot perform %s on %s operands", op, leftType)
	}
}

func (in *Interpreter) evalDivide(e *ast.Divide, state *State) (any, types.Type, *State, error) {
	leftValue, leftType, rightValue, rightType, next, err := in.evalPair(e.Left, e.Right, state)
	if err != nil {
		return nil, types.Unit, nil, err
	}
	// The zero check comes before the type checks, whatever the operand
	// types turn out to be.
	if isZeroValue(rightValue) {
		return nil, types.Unit, nil, mathErrf("attempted to divide by zero")
	}
	if leftType != rightType {
		return nil, types.Unit, nil, mismatchErr("Divide", leftType, rightType)
	}
	switch leftType {
	case types.Integer:
		return floorDiv(leftValue.(int64), rightValue.(int64)), types.Integer, next, nil
	case types.FloatingPoint:
		return leftValue.(float64) / rightValue.(float64), types.FloatingPoint, next, nil
	default:
		return nil, types.Unit, nil, typeErrf("cannot perform Divide on %s operands", leftType)
	}
}

func (in *Interpreter) evalLogic(op string, left, right ast.Expr, state *State,
	combine func(bool, bool) bool) (any, types.Type, *State, error) {

	leftValue, leftType, rightValue, rightType, next, err := in.evalPair(left, right, state)
	if err != nil {
		return nil, types.Unit, nil, err
	}
	if leftType != rightType {
		return nil, types.Unit, nil, mismatchErr(op, leftType, rightType)
	}
	if leftType != types.Boolean {
		return nil, types.Unit, nil, typeErrf("cannot perform %s on non-boolean operands", op)
	}
	return combine(leftValue.(bool), rightValue.(bool)), types.Boolean, next, nil
}

// evalCompare covers the six relational operators. keep maps the ordering
// of the operands (-1, 0, 1) to the operator's result; unitResult is the
// fixed answer when both operands are the unit value, which carries no
// ordering of its own.
func (in *Interpreter) evalCompare(op string, left, right ast.Expr, state *State,
	keep func(int) bool, unitResult bool) (any, types.Type, *State, error) {

	leftValue, leftType, rightValue, rightType, next, err := in.evalPair(left, right, state)
	if err != nil {
		return nil, types.Unit, nil, err
	}
	if leftType != rightType {
		return nil, types.Unit, nil, mismatchErr(op, leftType, rightType)
	}
	if leftType == types.Unit {
		return unitResult, types.Boolean, next, nil
	}
	ord, ok := order(leftValue, rightValue, leftType)
	if !ok {
		return nil, types.Unit, nil, typeErrf("cannot perform %s on %s operands", op, leftType)
	}
	return keep(ord), types.Boolean, next, nil
}

// order returns -1, 0, or 1 for two values of the same non-unit type.
// Booleans order false before true.
func order(left, right any, typ types.Type) (int, bool) {
	switch typ {
	case types.Integer:
		return compare(left.(int64), right.(int64)), true
	case types.FloatingPoint:
		return compare(left.(float64), right.(float64)), true
	case types.String:
		return compare(left.(string), right.(string)), true
	case types.Boolean:
		return compare(boolRank(left.(bool)), boolRank(right.(bool))), true
	}
	return 0, false
}

func compare[T int | int64 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (in *Interpreter) evalIf(e *ast.If, state *State) (any, types.Type, *State, error) {
	condValue, condType, next, err := in.Evaluate(e.Cond, state)
	if err != nil {
		return nil, types.Unit, nil, err
	}
	if condType != types.Boolean {
		return nil, types.Unit, nil, typeErrf("cannot perform if on a non-boolean condition")
	}
	// Both branches evaluate regardless of the condition, then-branch
	// first, and the state threads through both.
	thenValue, thenType, next, err := in.Evaluate(e.Then, next)
	if err != nil {
		return nil, types.Unit, nil, err
	}
	elseValue, elseType, next, err := in.Evaluate(e.Else, next)
	if err != nil {
		return nil, types.Unit, nil, err
	}
	if condValue.(bool) {
		return thenValue, thenType, next, nil
	}
	return elseValue, elseType, next, nil
}

func (in *Interpreter) evalWhile(e *ast.While, state *State) (any, types.Type, *State, error) {
	condValue, condType, next, err := in.Evaluate(e.Cond, state)
	if err != nil {
		return nil, types.Unit, nil, err
	}
	if condType != types.Boolean {
		return nil, types.Unit, nil, typeErrf("cannot perform while on a non-boolean condition")
	}
	for condValue.(bool) {
		if _, _, next, err = in.Evaluate(e.Body, next); err != nil {
			return nil, types.Unit, nil, err
		}
		condValue, condType, next, err = in.Evaluate(e.Cond, next)
		if err != nil {
			return nil, types.Unit, nil, err
		}
		if condType != types.Boolean {
			return nil, types.Unit, nil, typeErrf("cannot perform while on a non-boolean condition")
		}
	}
	// A while loop's own value is always false, however many iterations ran.
	return false, types.Boolean, next, nil
}

// isZeroValue reports whether a divisor's payload is numeric zero.
func isZeroValue(v any) bool {
	switch n := v.(type) {
	case int64:
		return n == 0
	case float64:
		return n == 0
	}
	return false
}

// floorDiv divides rounding toward negative infinity, so 7/2 is 3 and
// -7/2 is -4. The divisor is known to be non-zero here.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
