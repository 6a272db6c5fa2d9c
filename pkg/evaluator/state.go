package evaluator

import (
	"fmt"
	"strings"

	"github.com/stint-lang/stint/pkg/types"
)

// State is a persistent chain of variable bindings. Each State is one
// frame (a name, its value, its type marker) plus the tail it extends.
// A State is never mutated after construction: binding a name again adds
// a new frame in front and shadows the old one, which stays reachable
// through the tail. Any previously held *State therefore remains valid
// no matter how the chain is extended later.
//
// The empty state is the nil *State; all methods accept nil receivers.
type State struct {
	name  string
	value any
	typ   types.Type
	tail  *State
}

// Empty returns the empty state: no bindings, every lookup misses.
func Empty() *State { return nil }

// Bind returns a new State whose head binding is (name, value, typ) and
// whose tail is s. O(1); s is not altered.
func (s *State) Bind(name string, value any, typ types.Type) *State {
	return &State{name: name, value: value, typ: typ, tail: s}
}

// Get walks the chain from the front and returns the first binding for
// name. The boolean reports whether the name is bound at all, so callers
// can tell an unbound name from one bound to the unit value.
func (s *State) Get(name string) (any, types.Type, bool) {
	for cur := s; cur != nil; cur = cur.tail {
		if cur.name == name {
			return cur.value, cur.typ, true
		}
	}
	return nil, types.Unit, false
}

// Copy returns a State with the same head binding as s but sharing s's
// tail: a shallow duplicate of only the top frame. The evaluator does not
// need it; it exists for holders that want a distinct head identity.
func (s *State) Copy() *State {
	if s == nil {
		return nil
	}
	return &State{name: s.name, value: s.value, typ: s.typ, tail: s.tail}
}

// Len returns the number of frames in the chain, counting shadowed ones.
// Rebinding a name N times yields N frames.
func (s *State) Len() int {
	n := 0
	for cur := s; cur != nil; cur = cur.tail {
		n++
	}
	return n
}

// String dumps the chain front to back, shadowed frames included.
func (s *State) String() string {
	if s == nil {
		return "<empty>"
	}
	var b strings.Builder
	for cur := s; cur != nil; cur = cur.tail {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: (%s, %s)", cur.name, FormatValue(cur.value, cur.typ), cur.typ)
	}
	return b.String()
}
