package animation

import (
	"sort"
	"strings"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/errors"
)

// Easing maps normalized progress to eased progress. Easings are immutable,
// stateless and identified by a tag ("linear", "quad-in", "bounce-in-out",
// "cubic-bezier(0.4,0,0.2,1)") so they round-trip through strings.
//
// Ease is total over the reals: inputs outside [0, 1] are allowed, and back
// and elastic easings overshoot. Every named easing maps 0 to 0 and 1 to 1
// exactly.
//
// The zero Easing behaves like [Linear].
type Easing struct {
	tag string
	fn  func(float64) float64
}

// Ease applies the easing to u.
func (e Easing) Ease(u float64) float64 {
	if e.fn == nil {
		return u
	}
	// Endpoints are pinned so tweens land exactly on their targets even
	// when the curve is evaluated in float32.
	switch u {
	case 0:
		return 0
	case 1:
		return 1
	}
	return e.fn(u)
}

// Tag returns the easing's round-trip name.
func (e Easing) Tag() string {
	if e.tag == "" {
		return Linear.tag
	}
	return e.tag
}

// String implements fmt.Stringer.
func (e Easing) String() string { return e.Tag() }

// Equal reports whether two easings have the same tag.
func (e Easing) Equal(other Easing) bool { return e.Tag() == other.Tag() }

// WithDuration returns a Timing that starts at 0 and lasts d.
func (e Easing) WithDuration(d time.Duration) Timing {
	return Timing{Easing: e, Duration: d}
}

// WithDomain returns a Timing spanning [t0, t1].
func (e Easing) WithDomain(t0, t1 time.Duration) Timing {
	return Timing{Easing: e, Start: t0, Duration: t1 - t0}
}

// MarshalText implements encoding.TextMarshaler.
func (e Easing) MarshalText() ([]byte, error) {
	return []byte(e.Tag()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Easing) UnmarshalText(text []byte) error {
	parsed, err := ParseEasing(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalYAML encodes the easing as its tag.
func (e Easing) MarshalYAML() (any, error) {
	return e.Tag(), nil
}

// UnmarshalYAML decodes an easing tag.
func (e *Easing) UnmarshalYAML(node *yaml.Node) error {
	var tag string
	if err := node.Decode(&tag); err != nil {
		return &errors.TypeError{Op: "animation.Easing.UnmarshalYAML", Expected: "easing tag", Got: node.Value}
	}
	return e.UnmarshalText([]byte(tag))
}

// fromTween adapts a gween easing equation (t, begin, change, duration) to a
// unit-domain easing. gween computes in float32, so interior values carry
// about seven significant digits. [Easing.Ease] pins the endpoints.
func fromTween(tag string, f ease.TweenFunc) Easing {
	return Easing{tag: tag, fn: func(u float64) float64 {
		return float64(f(float32(u), 0, 1, 1))
	}}
}

// Linear returns progress unchanged.
var Linear = Easing{tag: "linear", fn: func(u float64) float64 { return u }}

// Named easings from the classic Penner equations.
var (
	QuadIn       = fromTween("quad-in", ease.InQuad)
	QuadOut      = fromTween("quad-out", ease.OutQuad)
	QuadInOut    = fromTween("quad-in-out", ease.InOutQuad)
	CubicIn      = fromTween("cubic-in", ease.InCubic)
	CubicOut     = fromTween("cubic-out", ease.OutCubic)
	CubicInOut   = fromTween("cubic-in-out", ease.InOutCubic)
	QuartIn      = fromTween("quart-in", ease.InQuart)
	QuartOut     = fromTween("quart-out", ease.OutQuart)
	QuartInOut   = fromTween("quart-in-out", ease.InOutQuart)
	QuintIn      = fromTween("quint-in", ease.InQuint)
	QuintOut     = fromTween("quint-out", ease.OutQuint)
	QuintInOut   = fromTween("quint-in-out", ease.InOutQuint)
	SineIn       = fromTween("sine-in", ease.InSine)
	SineOut      = fromTween("sine-out", ease.OutSine)
	SineInOut    = fromTween("sine-in-out", ease.InOutSine)
	ExpoIn       = fromTween("expo-in", ease.InExpo)
	ExpoOut      = fromTween("expo-out", ease.OutExpo)
	ExpoInOut    = fromTween("expo-in-out", ease.InOutExpo)
	CircIn       = fromTween("circ-in", ease.InCirc)
	CircOut      = fromTween("circ-out", ease.OutCirc)
	CircInOut    = fromTween("circ-in-out", ease.InOutCirc)
	BackIn       = fromTween("back-in", ease.InBack)
	BackOut      = fromTween("back-out", ease.OutBack)
	BackInOut    = fromTween("back-in-out", ease.InOutBack)
	ElasticIn    = fromTween("elastic-in", ease.InElastic)
	ElasticOut   = fromTween("elastic-out", ease.OutElastic)
	ElasticInOut = fromTween("elastic-in-out", ease.InOutElastic)
	BounceIn     = fromTween("bounce-in", ease.InBounce)
	BounceOut    = fromTween("bounce-out", ease.OutBounce)
	BounceInOut  = fromTween("bounce-in-out", ease.InOutBounce)
)

var easings = indexEasings(
	Linear,
	QuadIn, QuadOut, QuadInOut,
	CubicIn, CubicOut, CubicInOut,
	QuartIn, QuartOut, QuartInOut,
	QuintIn, QuintOut, QuintInOut,
	SineIn, SineOut, SineInOut,
	ExpoIn, ExpoOut, ExpoInOut,
	CircIn, CircOut, CircInOut,
	BackIn, BackOut, BackInOut,
	ElasticIn, ElasticOut, ElasticInOut,
	BounceIn, BounceOut, BounceInOut,
	Ease, EaseIn, EaseOut, EaseInOut, IOSNavigation,
)

func indexEasings(list ...Easing) map[string]Easing {
	m := make(map[string]Easing, len(list))
	for _, e := range list {
		m[e.tag] = e
	}
	return m
}

// EasingTags returns every registered tag in sorted order. Parametric
// cubic-bezier tags are not listed.
func EasingTags() []string {
	tags := make([]string, 0, len(easings))
	for tag := range easings {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// ParseEasing resolves a tag to an Easing. Unknown tags yield a
// *errors.TypeError.
func ParseEasing(tag string) (Easing, error) {
	key := strings.TrimSpace(tag)
	if e, ok := easings[key]; ok {
		return e, nil
	}
	if e, ok := parseCubicBezier(strings.ReplaceAll(key, " ", "")); ok {
		return e, nil
	}
	return Easing{}, &errors.TypeError{Op: "animation.ParseEasing", Expected: "easing tag", Got: tag}
}

// EasingFromAny coerces an Easing or an easing tag. Anything else, including
// nil, is a *errors.TypeError.
func EasingFromAny(v any) (Easing, error) {
	switch e := v.(type) {
	case Easing:
		return e, nil
	case *Easing:
		if e != nil {
			return *e, nil
		}
	case string:
		return ParseEasing(e)
	}
	return Easing{}, &errors.TypeError{Op: "animation.EasingFromAny", Expected: "Easing or easing tag", Got: v}
}
