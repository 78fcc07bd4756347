package ease

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ErrNoValue is returned when a curve script never assigns `value`.
var ErrNoValue = errors.New("script does not define value")

// Script is an easing curve written in tengo. The script reads the progress
// from the global `t` and assigns its result to `value`:
//
//	math := import("math")
//	value := math.pow(t, 3)
type Script struct {
	name string

	mu       sync.Mutex
	compiled *tengo.Compiled
	failed   bool
}

// CompileScript compiles src and checks that it yields a value at t = 0 and
// t = 1.
func CompileScript(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	_ = script.Add("t", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ease: compile %s: %w", name, err)
	}

	s := &Script{name: name, compiled: compiled}
	for _, t := range []float64{0, 1} {
		if _, err := s.run(t); err != nil {
			return nil, fmt.Errorf("ease: script %s: %w", name, err)
		}
	}
	return s, nil
}

// Name returns the name the script was compiled under.
func (s *Script) Name() string {
	return s.name
}

// Eval runs the script for progress t. A runtime error logs once and falls
// back to linear progress.
func (s *Script) Eval(t float64) float64 {
	v, err := s.run(t)
	if err != nil {
		s.mu.Lock()
		if !s.failed {
			s.failed = true
			log.Printf("ease: script %s: %v", s.name, err)
		}
		s.mu.Unlock()
		return t
	}
	return v
}

// Func returns the script as an easing function.
func (s *Script) Func() Func {
	return s.Eval
}

func (s *Script) run(t float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.compiled.Set("t", t); err != nil {
		return 0, err
	}
	if err := s.compiled.Run(); err != nil {
		return 0, err
	}
	if !s.compiled.IsDefined("value") {
		return 0, ErrNoValue
	}
	v := s.compiled.Get("value")
	switch v.ValueType() {
	case "int", "float":
		return v.Float(), nil
	}
	return 0, fmt.Errorf("value is %s, not a number", v.ValueType())
}
