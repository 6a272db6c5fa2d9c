package examples_test

import (
	"bytes"
	"testing"

	"github.com/stint-lang/stint/pkg/evaluator"
	"github.com/stint-lang/stint/pkg/examples"
)

func TestAllExamplesEvaluate(t *testing.T) {
	all := examples.All()
	if len(all) == 0 {
		t.Fatalf("no examples registered")
	}
	for _, ex := range all {
		var out bytes.Buffer
		_, _, _, err := evaluator.New(evaluator.WithOutput(&out)).Run(ex.Program)
		if err != nil {
			t.Errorf("example %q failed: %v", ex.Name, err)
		}
	}
}

func TestLookup(t *testing.T) {
	if _, ok := examples.Lookup("countdown"); !ok {
		t.Errorf("countdown example missing")
	}
	if _, ok := examples.Lookup("no-such-example"); ok {
		t.Errorf("Lookup invented an example")
	}
}

func TestCountdownOutput(t *testing.T) {
	ex, ok := examples.Lookup("countdown")
	if !ok {
		t.Fatalf("countdown example missing")
	}
	var out bytes.Buffer
	_, _, _, err := evaluator.New(evaluator.WithOutput(&out)).Run(ex.Program)
	if err != nil {
		t.Fatalf("countdown failed: %v", err)
	}
	want := "3\n2\n1\nliftoff\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
