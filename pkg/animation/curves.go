package animation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CSS-style curves built on [CubicBezier]. Each is an [Easing] with its own
// tag so it round-trips like the named easings.

// Ease is a standard cubic bezier curve for general-purpose easing.
// Equivalent to CSS ease.
var Ease = namedBezier("ease", 0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates. Equivalent to CSS ease-in.
var EaseIn = namedBezier("ease-in", 0.42, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates. Equivalent to CSS ease-out.
var EaseOut = namedBezier("ease-out", 0.0, 0.0, 0.58, 1.0)

// EaseInOut starts and ends slowly with acceleration in the middle.
// Equivalent to CSS ease-in-out.
var EaseInOut = namedBezier("ease-in-out", 0.42, 0.0, 0.58, 1.0)

// IOSNavigation approximates iOS navigation transition easing.
var IOSNavigation = namedBezier("ios-navigation", 0.22, 1.0, 0.36, 1.0)

// CubicBezier returns an easing matching CSS cubic-bezier(). The parameters
// are the control points (x1,y1) and (x2,y2); the curve runs from (0,0) to
// (1,1). Its tag is "cubic-bezier(x1,y1,x2,y2)" and parses back with
// [ParseEasing].
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	tag := fmt.Sprintf("cubic-bezier(%s,%s,%s,%s)", ftoa(x1), ftoa(y1), ftoa(x2), ftoa(y2))
	return namedBezier(tag, x1, y1, x2, y2)
}

func namedBezier(tag string, x1, y1, x2, y2 float64) Easing {
	return Easing{tag: tag, fn: bezierCurve(x1, y1, x2, y2)}
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// parseCubicBezier parses the tag produced by CubicBezier.
func parseCubicBezier(tag string) (Easing, bool) {
	inner, ok := strings.CutPrefix(tag, "cubic-bezier(")
	if !ok {
		return Easing{}, false
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return Easing{}, false
	}
	parts := strings.Split(inner, ",")
	if len(parts) != 4 {
		return Easing{}, false
	}
	var p [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Easing{}, false
		}
		p[i] = v
	}
	return CubicBezier(p[0], p[1], p[2], p[3]), true
}

// bezierCurve solves x(u) = t for u, then returns y(u). Inputs outside [0,1]
// pin to the endpoints.
func bezierCurve(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Bisection keeps the solution stable when Newton stalls.
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
