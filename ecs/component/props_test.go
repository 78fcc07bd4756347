package component

import (
	"reflect"
	"testing"
)

func TestProps(t *testing.T) {
	initial := map[string]float64{PropX: 1, PropAlpha: 0.5}
	p := NewProps(initial)
	initial[PropX] = 99
	if v, _ := p.Get(PropX); v != 1 {
		t.Fatalf("expected props to copy initial values, got %v", v)
	}

	p.Set(PropTintR, 0.25)
	if !p.Has(PropTintR) {
		t.Fatalf("expected %s to be set", PropTintR)
	}
	if got := p.Value(PropY, 7); got != 7 {
		t.Fatalf("expected default for missing prop, got %v", got)
	}

	p.Delete(PropAlpha)
	if p.Has(PropAlpha) {
		t.Fatalf("expected %s deleted", PropAlpha)
	}
	if got, want := p.Names(), []string{PropTintR, PropX}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected names %v, got %v", want, got)
	}
}

func TestPropsZeroAndNil(t *testing.T) {
	var zero Props
	zero.Set(PropX, 3)
	if v, ok := zero.Get(PropX); !ok || v != 3 {
		t.Fatalf("zero Props should accept writes, got %v %v", v, ok)
	}

	var nilProps *Props
	nilProps.Set(PropX, 1)
	nilProps.Delete(PropX)
	if nilProps.Has(PropX) || nilProps.Names() != nil {
		t.Fatalf("nil Props should read as empty")
	}
}
