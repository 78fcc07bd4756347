package ease

import (
	"sort"
	"sync"
)

// Table maps easing names to curves. Unknown names resolve as spline keys
// through the table's SplineCache.
type Table struct {
	mu     sync.RWMutex
	funcs  map[string]Func
	spline *SplineCache
}

// NewTable returns a table holding the standard curves. If cache is nil a
// fresh one is created.
func NewTable(cache *SplineCache) *Table {
	if cache == nil {
		cache = NewSplineCache()
	}
	t := &Table{
		funcs:  make(map[string]Func, len(standard)),
		spline: cache,
	}
	for name, fn := range standard {
		t.funcs[name] = fn
	}
	return t
}

var standard = map[string]Func{
	"linear":       Linear,
	"inQuad":       InQuad,
	"outQuad":      OutQuad,
	"inOutQuad":    InOutQuad,
	"inCubic":      InCubic,
	"outCubic":     OutCubic,
	"inOutCubic":   InOutCubic,
	"inQuart":      InQuart,
	"outQuart":     OutQuart,
	"inOutQuart":   InOutQuart,
	"inQuint":      InQuint,
	"outQuint":     OutQuint,
	"inOutQuint":   InOutQuint,
	"inSine":       InSine,
	"outSine":      OutSine,
	"inOutSine":    InOutSine,
	"inExpo":       InExpo,
	"outExpo":      OutExpo,
	"inOutExpo":    InOutExpo,
	"inCirc":       InCirc,
	"outCirc":      OutCirc,
	"inOutCirc":    InOutCirc,
	"inElastic":    InElastic,
	"outElastic":   OutElastic,
	"inOutElastic": InOutElastic,
	"inBack":       InBack,
	"outBack":      OutBack,
	"inOutBack":    InOutBack,
	"inBounce":     InBounce,
	"outBounce":    OutBounce,
	"inOutBounce":  InOutBounce,
}

// Splines returns the cache backing spline keys.
func (t *Table) Splines() *SplineCache {
	return t.spline
}

// Register adds or replaces a named curve.
func (t *Table) Register(name string, fn Func) {
	if t == nil || name == "" || fn == nil {
		return
	}
	t.mu.Lock()
	t.funcs[name] = fn
	t.mu.Unlock()
}

// Lookup returns the curve registered under name.
func (t *Table) Lookup(name string) (Func, bool) {
	if t == nil {
		return nil, false
	}
	t.mu.RLock()
	fn, ok := t.funcs[name]
	t.mu.RUnlock()
	return fn, ok
}

// Resolve returns the named curve, Linear for an empty name, or the spline
// fitted to name when no curve is registered under it.
func (t *Table) Resolve(name string) Func {
	if name == "" {
		return Linear
	}
	if fn, ok := t.Lookup(name); ok {
		return fn
	}
	return t.spline.Curve(name)
}

// Names lists registered curve names in sorted order.
func (t *Table) Names() []string {
	t.mu.RLock()
	names := make([]string, 0, len(t.funcs))
	for name := range t.funcs {
		names = append(names, name)
	}
	t.mu.RUnlock()
	sort.Strings(names)
	return names
}
