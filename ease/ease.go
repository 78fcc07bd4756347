// Package ease provides easing curves that map animation progress in [0, 1]
// to an interpolation factor. Curves may overshoot (back, elastic).
package ease

import "math"

// Func maps progress t to an interpolation factor.
type Func func(t float64) float64

// DefaultOvershoot is the back easing constant.
const DefaultOvershoot = 1.70158

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

// InQuad, OutQuad and InOutQuad follow t².
func InQuad(t float64) float64 {
	return t * t
}

func OutQuad(t float64) float64 {
	return t * (2 - t)
}

func InOutQuad(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t
	}
	t--
	return -0.5 * (t*(t-2) - 1)
}

// InCubic, OutCubic and InOutCubic follow t³.
func InCubic(t float64) float64 {
	return t * t * t
}

func OutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

func InOutCubic(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t + 2)
}

// InQuart, OutQuart and InOutQuart follow t⁴.
func InQuart(t float64) float64 {
	return t * t * t * t
}

func OutQuart(t float64) float64 {
	t--
	return 1 - t*t*t*t
}

func InOutQuart(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t * t
	}
	t -= 2
	return -0.5 * (t*t*t*t - 2)
}

// InQuint, OutQuint and InOutQuint follow t⁵.
func InQuint(t float64) float64 {
	return t * t * t * t * t
}

func OutQuint(t float64) float64 {
	t--
	return t*t*t*t*t + 1
}

func InOutQuint(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t*t*t + 2)
}

// InSine, OutSine and InOutSine follow a quarter or half cosine wave.
func InSine(t float64) float64 {
	return 1 - math.Cos(t*math.Pi/2)
}

func OutSine(t float64) float64 {
	return math.Sin(t * math.Pi / 2)
}

func InOutSine(t float64) float64 {
	return 0.5 * (1 - math.Cos(math.Pi*t))
}

// InExpo, OutExpo and InOutExpo follow 2^(10(t-1)) and hit 0 and 1 exactly.
func InExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(1024, t-1)
}

func OutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func InOutExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	t *= 2
	if t < 1 {
		return 0.5 * math.Pow(1024, t-1)
	}
	return 0.5 * (-math.Pow(2, -10*(t-1)) + 2)
}

// InCirc, OutCirc and InOutCirc follow a quarter circle.
func InCirc(t float64) float64 {
	return 1 - math.Sqrt(1-t*t)
}

func OutCirc(t float64) float64 {
	t--
	return math.Sqrt(1 - t*t)
}

func InOutCirc(t float64) float64 {
	t *= 2
	if t < 1 {
		return -0.5 * (math.Sqrt(1-t*t) - 1)
	}
	t -= 2
	return 0.5 * (math.Sqrt(1-t*t) + 1)
}

// Elastic curves use a fixed period of 0.4 and unit amplitude. The classic
// formula also has a branch for amplitudes above 1; with the amplitude pinned
// it can never run, so it is omitted.
const (
	elasticPeriod = 0.4
	elasticShift  = elasticPeriod / 4
)

// InElastic, OutElastic and InOutElastic oscillate around the end points
// like a released spring.
func InElastic(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	t--
	return -(math.Pow(2, 10*t) * math.Sin((t-elasticShift)*(2*math.Pi)/elasticPeriod))
}

func OutElastic(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	return math.Pow(2, -10*t)*math.Sin((t-elasticShift)*(2*math.Pi)/elasticPeriod) + 1
}

func InOutElastic(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	t *= 2
	if t < 1 {
		t--
		return -0.5 * (math.Pow(2, 10*t) * math.Sin((t-elasticShift)*(2*math.Pi)/elasticPeriod))
	}
	t--
	return math.Pow(2, -10*t)*math.Sin((t-elasticShift)*(2*math.Pi)/elasticPeriod)*0.5 + 1
}

// BackIn returns an ease-in curve that pulls back by overshoot s first.
func BackIn(s float64) Func {
	return func(t float64) float64 {
		return t * t * ((s+1)*t - s)
	}
}

// BackOut returns an ease-out curve that overshoots the target by s.
func BackOut(s float64) Func {
	return func(t float64) float64 {
		t--
		return t*t*((s+1)*t+s) + 1
	}
}

// BackInOut returns a curve that pulls back and overshoots. The overshoot is
// scaled by 1.525 so both halves keep the same visual amplitude.
func BackInOut(s float64) Func {
	s *= 1.525
	return func(t float64) float64 {
		t *= 2
		if t < 1 {
			return 0.5 * (t * t * ((s+1)*t - s))
		}
		t -= 2
		return 0.5 * (t*t*((s+1)*t+s) + 2)
	}
}

// InBack, OutBack and InOutBack use DefaultOvershoot.
var (
	InBack    = BackIn(DefaultOvershoot)
	OutBack   = BackOut(DefaultOvershoot)
	InOutBack = BackInOut(DefaultOvershoot)
)

// InBounce mirrors OutBounce, bouncing away from the start.
func InBounce(t float64) float64 {
	return 1 - OutBounce(1-t)
}

// OutBounce settles onto 1 in four decaying bounces.
func OutBounce(t float64) float64 {
	switch {
	case t < 1/2.75:
		return 7.5625 * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return 7.5625*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return 7.5625*t*t + 0.9375
	default:
		t -= 2.625 / 2.75
		return 7.5625*t*t + 0.984375
	}
}

// InOutBounce bounces off the start for the first half and onto the end
// for the second.
func InOutBounce(t float64) float64 {
	if t < 0.5 {
		return InBounce(t*2) * 0.5
	}
	return OutBounce(t*2-1)*0.5 + 0.5
}

// Sample evaluates fn at n evenly spaced points over [0, 1]. The result is a
// look-up table for hot loops that cannot afford the closed form.
func Sample(fn Func, n int) []float64 {
	if fn == nil || n <= 0 {
		return nil
	}
	lut := make([]float64, n)
	if n == 1 {
		lut[0] = fn(1)
		return lut
	}
	step := 1.0 / float64(n-1)
	for i := range lut {
		lut[i] = fn(float64(i) * step)
	}
	return lut
}

// SampleAt reads a table built by Sample with linear interpolation between
// entries. t is clamped to [0, 1].
func SampleAt(lut []float64, t float64) float64 {
	switch len(lut) {
	case 0:
		return 0
	case 1:
		return lut[0]
	}
	if t <= 0 {
		return lut[0]
	}
	if t >= 1 {
		return lut[len(lut)-1]
	}
	pos := t * float64(len(lut)-1)
	i := int(pos)
	frac := pos - float64(i)
	return lut[i] + (lut[i+1]-lut[i])*frac
}
