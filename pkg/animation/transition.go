package animation

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/errors"
)

// Transition describes how an animator should move to a new state: how long
// it takes, how progress is eased, how values blend, and who to tell when it
// begins, ends or is interrupted.
//
// Transitions are immutable values. The With methods return modified copies.
// Fields left unset fall back to the animator's defaults when the transition
// is applied.
type Transition[T any] struct {
	duration     time.Duration
	hasDuration  bool
	easing       Easing
	hasEasing    bool
	interpolator *Interpolator[T]

	onBegin     func(T)
	onEnd       func(T)
	onInterrupt func(T)
}

// NewTransition returns a transition with the given duration and easing.
func NewTransition[T any](d time.Duration, e Easing) Transition[T] {
	return Transition[T]{duration: d, hasDuration: true, easing: e, hasEasing: true}
}

// WithDuration returns a copy with duration d.
func (tr Transition[T]) WithDuration(d time.Duration) Transition[T] {
	tr.duration, tr.hasDuration = d, true
	return tr
}

// WithEasing returns a copy with easing e.
func (tr Transition[T]) WithEasing(e Easing) Transition[T] {
	tr.easing, tr.hasEasing = e, true
	return tr
}

// WithInterpolator returns a copy that blends with ip's kind. The endpoints
// are rebound to the animator's current value and new state when applied.
func (tr Transition[T]) WithInterpolator(ip Interpolator[T]) Transition[T] {
	tr.interpolator = &ip
	return tr
}

// WithOnBegin returns a copy that calls fn when the tween begins.
func (tr Transition[T]) WithOnBegin(fn func(T)) Transition[T] {
	tr.onBegin = fn
	return tr
}

// WithOnEnd returns a copy that calls fn when the tween ends.
func (tr Transition[T]) WithOnEnd(fn func(T)) Transition[T] {
	tr.onEnd = fn
	return tr
}

// WithOnInterrupt returns a copy that calls fn when the tween is interrupted.
func (tr Transition[T]) WithOnInterrupt(fn func(T)) Transition[T] {
	tr.onInterrupt = fn
	return tr
}

// Duration returns the duration and whether it was set.
func (tr Transition[T]) Duration() (time.Duration, bool) { return tr.duration, tr.hasDuration }

// Easing returns the easing and whether it was set.
func (tr Transition[T]) Easing() (Easing, bool) { return tr.easing, tr.hasEasing }

// Interpolator returns the interpolator and whether it was set.
func (tr Transition[T]) Interpolator() (Interpolator[T], bool) {
	if tr.interpolator == nil {
		var zero Interpolator[T]
		return zero, false
	}
	return *tr.interpolator, true
}

// Timing returns a Timing starting at 0 with the transition's duration and
// easing. Unset fields are zero.
func (tr Transition[T]) Timing() Timing {
	return Timing{Easing: tr.easing, Duration: tr.duration}
}

// withDefaults fills unset duration and easing.
func (tr Transition[T]) withDefaults(d time.Duration, e Easing) Transition[T] {
	if !tr.hasDuration {
		tr.duration, tr.hasDuration = d, true
	}
	if !tr.hasEasing {
		tr.easing, tr.hasEasing = e, true
	}
	return tr
}

// Equal compares duration, easing and interpolator endpoints. Callbacks are
// not compared.
func (tr Transition[T]) Equal(other Transition[T]) bool {
	if tr.hasDuration != other.hasDuration || tr.duration != other.duration {
		return false
	}
	if tr.hasEasing != other.hasEasing || (tr.hasEasing && !tr.easing.Equal(other.easing)) {
		return false
	}
	if (tr.interpolator == nil) != (other.interpolator == nil) {
		return false
	}
	return tr.interpolator == nil || tr.interpolator.Equal(*other.interpolator)
}

func (tr Transition[T]) String() string {
	return fmt.Sprintf("Transition(duration=%v, easing=%v)", tr.duration, tr.easing)
}

// TransitionInit is the plain record form of a Transition, suitable for YAML
// and JSON.
type TransitionInit[T any] struct {
	Duration     *time.Duration       `yaml:"duration,omitempty" json:"duration,omitempty"`
	Easing       *Easing              `yaml:"easing,omitempty" json:"easing,omitempty"`
	Interpolator *InterpolatorInit[T] `yaml:"interpolator,omitempty" json:"interpolator,omitempty"`
}

// InterpolatorInit is the record form of an Interpolator's endpoints.
type InterpolatorInit[T any] struct {
	From T `yaml:"from" json:"from"`
	To   T `yaml:"to" json:"to"`
}

// ToInit returns the record form. Callbacks are dropped.
func (tr Transition[T]) ToInit() TransitionInit[T] {
	var init TransitionInit[T]
	if tr.hasDuration {
		d := tr.duration
		init.Duration = &d
	}
	if tr.hasEasing {
		e := tr.easing
		init.Easing = &e
	}
	if tr.interpolator != nil {
		init.Interpolator = &InterpolatorInit[T]{From: tr.interpolator.from, To: tr.interpolator.to}
	}
	return init
}

// FromInit builds a Transition from its record form. kind blends the
// interpolator endpoints, if present.
func FromInit[T any](init TransitionInit[T], kind Kind[T]) Transition[T] {
	var tr Transition[T]
	if init.Duration != nil {
		tr = tr.WithDuration(*init.Duration)
	}
	if init.Easing != nil {
		tr = tr.WithEasing(*init.Easing)
	}
	if init.Interpolator != nil {
		tr = tr.WithInterpolator(NewInterpolator(kind, init.Interpolator.From, init.Interpolator.To))
	}
	return tr
}

// TransitionFromMap builds a Transition from a plain map with the keys
// "duration", "easing" and "interpolator", as decoded from YAML or JSON.
// Durations may be time.Duration, duration strings ("250ms") or numbers of
// milliseconds. Unknown keys and mistyped fields fail with a
// *errors.TypeError.
func TransitionFromMap[T any](m map[string]any, kind Kind[T]) (Transition[T], error) {
	const op = "animation.TransitionFromMap"
	var tr Transition[T]
	for key, v := range m {
		switch key {
		case "duration":
			d, err := durationFromAny(v)
			if err != nil {
				return Transition[T]{}, &errors.TypeError{Op: op, Expected: "duration", Got: v}
			}
			tr = tr.WithDuration(d)
		case "easing":
			e, err := EasingFromAny(v)
			if err != nil {
				return Transition[T]{}, err
			}
			tr = tr.WithEasing(e)
		case "interpolator":
			ip, err := interpolatorFromAny(v, kind)
			if err != nil {
				return Transition[T]{}, err
			}
			tr = tr.WithInterpolator(ip)
		default:
			return Transition[T]{}, &errors.TypeError{Op: op, Expected: "transition key (duration, easing, interpolator)", Got: key}
		}
	}
	return tr, nil
}

func durationFromAny(v any) (time.Duration, error) {
	switch d := v.(type) {
	case time.Duration:
		return d, nil
	case string:
		return time.ParseDuration(d)
	}
	ms, err := toFloat(v)
	if err != nil || v == nil {
		return 0, fmt.Errorf("not a duration: %T", v)
	}
	return time.Duration(ms * float64(time.Millisecond)), nil
}

func interpolatorFromAny[T any](v any, kind Kind[T]) (Interpolator[T], error) {
	const op = "animation.TransitionFromMap"
	switch ip := v.(type) {
	case Interpolator[T]:
		return ip, nil
	case *Interpolator[T]:
		if ip != nil {
			return *ip, nil
		}
	case InterpolatorInit[T]:
		return NewInterpolator(kind, ip.From, ip.To), nil
	case map[string]any:
		rawFrom, okFrom := ip["from"]
		rawTo, okTo := ip["to"]
		if okFrom && okTo && len(ip) == 2 {
			from, err := kind.Coerce(rawFrom)
			if err != nil {
				return Interpolator[T]{}, err
			}
			to, err := kind.Coerce(rawTo)
			if err != nil {
				return Interpolator[T]{}, err
			}
			return NewInterpolator(kind, from, to), nil
		}
	}
	return Interpolator[T]{}, &errors.TypeError{Op: op, Expected: "interpolator {from, to}", Got: v}
}

// ForTween normalizes the ways a caller can ask for a state change to
// animate into a fully resolved transition, or nil for an immediate change.
//
//   - nil or false: no animation
//   - true: default duration and easing, identity interpolator at current
//   - Transition[T] or *Transition[T]: unset fields take the defaults
//   - Timing, Easing, time.Duration or an easing tag string
//   - TransitionInit[T] or a map[string]any initializer
//
// Anything else fails with a *errors.TypeError.
func ForTween[T any](tween any, current T, kind Kind[T], defaultDuration time.Duration, defaultEasing Easing) (*Transition[T], error) {
	var tr Transition[T]
	switch v := tween.(type) {
	case nil:
		return nil, nil
	case bool:
		if !v {
			return nil, nil
		}
		tr = NewTransition[T](defaultDuration, defaultEasing).
			WithInterpolator(NewInterpolator(kind, current, current))
	case Transition[T]:
		tr = v
	case *Transition[T]:
		if v == nil {
			return nil, nil
		}
		tr = *v
	case Timing:
		tr = NewTransition[T](v.Duration, v.Easing)
	case *Timing:
		if v == nil {
			return nil, nil
		}
		tr = NewTransition[T](v.Duration, v.Easing)
	case Easing:
		tr = Transition[T]{}.WithEasing(v)
	case time.Duration:
		tr = Transition[T]{}.WithDuration(v)
	case string:
		e, err := ParseEasing(v)
		if err != nil {
			return nil, err
		}
		tr = Transition[T]{}.WithEasing(e)
	case TransitionInit[T]:
		tr = FromInit(v, kind)
	case *TransitionInit[T]:
		if v == nil {
			return nil, nil
		}
		tr = FromInit(*v, kind)
	case map[string]any:
		parsed, err := TransitionFromMap(v, kind)
		if err != nil {
			return nil, err
		}
		tr = parsed
	default:
		return nil, &errors.TypeError{Op: "animation.ForTween", Expected: "bool, Transition, Timing, Easing, time.Duration or transition initializer", Got: tween}
	}
	tr = tr.withDefaults(defaultDuration, defaultEasing)
	return &tr, nil
}
