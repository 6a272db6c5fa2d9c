package evaluator_test

import (
	"testing"

	"github.com/stint-lang/stint/pkg/evaluator"
	"github.com/stint-lang/stint/pkg/types"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value any
		typ   types.Type
		want  string
	}{
		{nil, types.Unit, "Unit"},
		{int64(42), types.Integer, "42"},
		{int64(-7), types.Integer, "-7"},
		{float64(3.5), types.FloatingPoint, "3.5"},
		{float64(2), types.FloatingPoint, "2"},
		{"hello", types.String, "hello"},
		{"", types.String, ""},
		{true, types.Boolean, "true"},
		{false, types.Boolean, "false"},
	}

	for _, tt := range tests {
		if got := evaluator.FormatValue(tt.value, tt.typ); got != tt.want {
			t.Errorf("FormatValue(%v, %s) = %q, want %q", tt.value, tt.typ, got, tt.want)
		}
	}
}
