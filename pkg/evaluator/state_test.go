package evaluator_test

import (
	"testing"

	"github.com/stint-lang/stint/pkg/evaluator"
	"github.com/stint-lang/stint/pkg/types"
)

func TestState_EmptyLookupMisses(t *testing.T) {
	_, _, ok := evaluator.Empty().Get("x")
	if ok {
		t.Errorf("lookup on the empty state reported a binding")
	}
}

func TestState_BindThenGet(t *testing.T) {
	s := evaluator.Empty().Bind("x", int64(5), types.Integer)
	value, typ, ok := s.Get("x")
	if !ok {
		t.Fatalf("x not found")
	}
	expectInt(t, value, typ, 5)
}

func TestState_ShadowingResolvesToNewest(t *testing.T) {
	s := evaluator.Empty().
		Bind("x", int64(1), types.Integer).
		Bind("y", "hi", types.String).
		Bind("x", int64(2), types.Integer)

	value, typ, ok := s.Get("x")
	if !ok {
		t.Fatalf("x not found")
	}
	expectInt(t, value, typ, 2)

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3: shadowed frames stay live", s.Len())
	}
}

func TestState_ExtensionLeavesOldReferencesIntact(t *testing.T) {
	s1 := evaluator.Empty().Bind("x", int64(1), types.Integer)
	s2 := s1.Bind("x", int64(2), types.Integer)

	value, typ, ok := s1.Get("x")
	if !ok {
		t.Fatalf("x not found in prior state")
	}
	expectInt(t, value, typ, 1)

	value, typ, _ = s2.Get("x")
	expectInt(t, value, typ, 2)
}

func TestState_UnitBindingDistinctFromUnbound(t *testing.T) {
	s := evaluator.Empty().Bind("u", nil, types.Unit)
	value, typ, ok := s.Get("u")
	if !ok {
		t.Fatalf("binding to the unit value must still be found")
	}
	expectUnit(t, value, typ)
}

func TestState_CopyDuplicatesOnlyTheHead(t *testing.T) {
	s := evaluator.Empty().
		Bind("x", int64(1), types.Integer).
		Bind("y", int64(2), types.Integer)
	dup := s.Copy()

	if dup == s {
		t.Fatalf("Copy returned the same frame")
	}
	value, typ, ok := dup.Get("y")
	if !ok {
		t.Fatalf("y not found in copy")
	}
	expectInt(t, value, typ, 2)

	value, typ, ok = dup.Get("x")
	if !ok {
		t.Fatalf("copy lost the shared tail")
	}
	expectInt(t, value, typ, 1)

	if dup.Len() != s.Len() {
		t.Errorf("copy has %d frames, original %d", dup.Len(), s.Len())
	}
}

func TestState_CopyOfEmpty(t *testing.T) {
	if evaluator.Empty().Copy() != nil {
		t.Errorf("copy of the empty state is not empty")
	}
}

func TestState_String(t *testing.T) {
	if got := evaluator.Empty().String(); got != "<empty>" {
		t.Errorf("empty state dump = %q", got)
	}

	s := evaluator.Empty().
		Bind("x", int64(1), types.Integer).
		Bind("ok", true, types.Boolean)
	want := "ok: (true, Boolean), x: (1, Integer)"
	if got := s.String(); got != want {
		t.Errorf("dump = %q, want %q", got, want)
	}
}
