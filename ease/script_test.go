package ease

import (
	"errors"
	"math"
	"testing"
)

func TestCompileScript(t *testing.T) {
	s, err := CompileScript("cube", []byte(`
math := import("math")
value := math.pow(t, 3)
`))
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if s.Name() != "cube" {
		t.Fatalf("expected name cube, got %q", s.Name())
	}
	for _, x := range []float64{0, 0.25, 0.5, 1} {
		if got := s.Eval(x); math.Abs(got-x*x*x) > 1e-12 {
			t.Fatalf("cube(%v): expected %v, got %v", x, x*x*x, got)
		}
	}

	table := NewTable(nil)
	table.Register(s.Name(), s.Func())
	if fn := table.Resolve("cube"); math.Abs(fn(0.5)-0.125) > 1e-12 {
		t.Fatalf("expected scripted curve through table")
	}
}

func TestCompileScriptIntValue(t *testing.T) {
	s, err := CompileScript("snap", []byte(`value := t < 1 ? 0 : 1`))
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if got := s.Eval(0.7); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := s.Eval(1); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}

func TestCompileScriptErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"syntax", `value := (`},
		{"no_value", `x := t * 2`},
		{"string_value", `value := "fast"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := CompileScript(c.name, []byte(c.src)); err == nil {
				t.Fatalf("expected compile error")
			}
		})
	}

	_, err := CompileScript("no_value", []byte(`x := t`))
	if !errors.Is(err, ErrNoValue) {
		t.Fatalf("expected ErrNoValue, got %v", err)
	}
}
