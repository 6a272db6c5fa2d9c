// Package types defines the Stint runtime type markers.
package types

// Type identifies the runtime type of a Stint value. The set is closed;
// the evaluator type-checks by comparing markers for equality and
// dispatching on them, never by coercion.
type Type int

const (
	Unit Type = iota
	Integer
	FloatingPoint
	String
	Boolean
)

var names = [...]string{
	Unit:          "Unit",
	Integer:       "Integer",
	FloatingPoint: "FloatingPoint",
	String:        "String",
	Boolean:       "Boolean",
}

// String returns the marker name as used in error messages and state dumps.
func (t Type) String() string {
	if t < 0 || int(t) >= len(names) {
		return "Unknown"
	}
	return names[t]
}
