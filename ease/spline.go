package ease

import (
	"math"
	"sync"
)

// SplineCache parses spline keys and fits natural cubic splines through the
// resulting control points. Parsed keys and fitted splines are kept for the
// lifetime of the cache; entries are immutable once published.
//
// A spline key is a string of hexadecimal digits, each one a control point
// height, optionally mixed with modifiers:
//
//	-  following values are negative (sign persists)
//	+  following values are positive
//	t  toggle clamping of following values into [0, 1]
//
// Keys without a sign modifier are min-max normalized into [0, 1]. Keys with
// one are divided by their largest magnitude, keeping the sign.
type SplineCache struct {
	mu      sync.RWMutex
	keys    map[string][]float64
	splines map[string]*spline
}

type spline struct {
	xs []float64
	ys []float64
	ks []float64
}

// NewSplineCache returns an empty cache.
func NewSplineCache() *SplineCache {
	return &SplineCache{
		keys:    make(map[string][]float64),
		splines: make(map[string]*spline),
	}
}

// ParseKey returns the normalized control point heights for key.
func (c *SplineCache) ParseKey(key string) []float64 {
	c.mu.RLock()
	ys, ok := c.keys[key]
	c.mu.RUnlock()
	if ok {
		return ys
	}

	ys = parseKey(key)

	c.mu.Lock()
	if prev, ok := c.keys[key]; ok {
		ys = prev
	} else {
		c.keys[key] = ys
	}
	c.mu.Unlock()
	return ys
}

// Eval evaluates the spline described by key at progress x.
func (c *SplineCache) Eval(x float64, key string) float64 {
	return c.get(key).eval(x)
}

// Curve returns the spline for key as an easing function.
func (c *SplineCache) Curve(key string) Func {
	s := c.get(key)
	return s.eval
}

// Len reports how many splines have been fitted.
func (c *SplineCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.splines)
}

func (c *SplineCache) get(key string) *spline {
	c.mu.RLock()
	s, ok := c.splines[key]
	c.mu.RUnlock()
	if ok {
		return s
	}

	s = fitSpline(c.ParseKey(key))

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.splines[key]; ok {
		return prev
	}
	c.splines[key] = s
	return s
}

func parseKey(key string) []float64 {
	var (
		raw     []float64
		trimmed []bool
		sign    = 1.0
		signed  bool
		trim    bool
	)
	for _, r := range key {
		switch r {
		case '-':
			sign = -1
			signed = true
			continue
		case '+':
			sign = 1
			signed = true
			continue
		case 't':
			trim = !trim
			continue
		}
		v, ok := hexValue(r)
		if !ok {
			continue
		}
		raw = append(raw, sign*float64(v))
		trimmed = append(trimmed, trim)
	}
	if len(raw) == 0 {
		return nil
	}

	lo, hi := raw[0], raw[0]
	for _, v := range raw[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	ys := make([]float64, len(raw))
	for i, v := range raw {
		var y float64
		if signed {
			if scale := math.Max(math.Abs(lo), math.Abs(hi)); scale > 0 {
				y = v / scale
			}
		} else if hi > lo {
			y = (v - lo) / (hi - lo)
		}
		if trimmed[i] {
			y = math.Max(0, math.Min(1, y))
		}
		ys[i] = y
	}
	return ys
}

func hexValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}

func fitSpline(ys []float64) *spline {
	n := len(ys)
	s := &spline{ys: ys}
	if n < 2 {
		return s
	}
	s.xs = make([]float64, n)
	for i := range s.xs {
		s.xs[i] = float64(i) / float64(n-1)
	}
	s.ks = naturalKs(s.xs, ys)
	return s
}

// naturalKs solves for the first derivative at each knot of a natural cubic
// spline. Rows 1..n-2 match the second derivative of adjacent segments; the
// first and last rows pin the second derivative to zero at the ends.
func naturalKs(xs, ys []float64) []float64 {
	n := len(xs) - 1
	a := make([][]float64, n+1)
	for i := range a {
		a[i] = make([]float64, n+2)
	}

	for i := 1; i < n; i++ {
		dl := xs[i] - xs[i-1]
		dr := xs[i+1] - xs[i]
		a[i][i-1] = 1 / dl
		a[i][i] = 2 * (1/dl + 1/dr)
		a[i][i+1] = 1 / dr
		a[i][n+1] = 3 * ((ys[i]-ys[i-1])/(dl*dl) + (ys[i+1]-ys[i])/(dr*dr))
	}

	d0 := xs[1] - xs[0]
	a[0][0] = 2 / d0
	a[0][1] = 1 / d0
	a[0][n+1] = 3 * (ys[1] - ys[0]) / (d0 * d0)

	dn := xs[n] - xs[n-1]
	a[n][n-1] = 1 / dn
	a[n][n] = 2 / dn
	a[n][n+1] = 3 * (ys[n] - ys[n-1]) / (dn * dn)

	return solve(a)
}

// solve runs Gaussian elimination with partial pivoting over the augmented
// matrix a (m rows, m+1 columns) and returns the solution vector. a is
// overwritten.
func solve(a [][]float64) []float64 {
	m := len(a)
	for k := 0; k < m; k++ {
		pivot := k
		best := math.Inf(-1)
		for i := k; i < m; i++ {
			if v := math.Abs(a[i][k]); v > best {
				pivot = i
				best = v
			}
		}
		a[k], a[pivot] = a[pivot], a[k]

		for i := k + 1; i < m; i++ {
			cf := a[i][k] / a[k][k]
			for j := k; j <= m; j++ {
				a[i][j] -= a[k][j] * cf
			}
		}
	}

	x := make([]float64, m)
	for i := m - 1; i >= 0; i-- {
		v := a[i][m] / a[i][i]
		x[i] = v
		for j := i - 1; j >= 0; j-- {
			a[j][m] -= a[j][i] * v
			a[j][i] = 0
		}
	}
	return x
}

func (s *spline) eval(x float64) float64 {
	switch len(s.ys) {
	case 0:
		return 0
	case 1:
		return s.ys[0]
	}
	last := len(s.ys) - 1
	if x > 1 {
		return s.ys[last]
	}

	i := 1
	for i < last && s.xs[i] < x {
		i++
	}

	dx := s.xs[i] - s.xs[i-1]
	dy := s.ys[i] - s.ys[i-1]
	t := (x - s.xs[i-1]) / dx
	a := s.ks[i-1]*dx - dy
	b := -s.ks[i]*dx + dy
	return (1-t)*s.ys[i-1] + t*s.ys[i] + t*(1-t)*(a*(1-t)+b*t)
}
