package animation

import (
	"time"

	"github.com/go-drift/motion/pkg/errors"
)

// DefaultDuration is the tween length used when a transition leaves its
// duration unset and the animator has no default of its own.
const DefaultDuration = 250 * time.Millisecond

// Observer receives an animator's callbacks. Nil fields are skipped.
// Observers run synchronously, in registration order, on the goroutine
// driving the animator.
type Observer[T any] struct {
	// OnSetState fires when the target state changes.
	OnSetState func(newState, oldState T)
	// OnSetValue fires when the current value changes.
	OnSetValue func(newValue, oldValue T)
	// OnBegin fires on the first frame of a tween.
	OnBegin func(value T)
	// OnUpdate fires on every tween frame, changed or not.
	OnUpdate func(value T)
	// OnEnd fires when a tween reaches its state.
	OnEnd func(value T)
	// OnInterrupt fires when a tween is replaced or cancelled.
	OnInterrupt func(value T)
}

type observerEntry[T any] struct {
	id       int
	observer *Observer[T]
}

type deferredState[T any] struct {
	state    T
	tween    any
	affinity Affinity
}

// Animator holds a property's current value and its target state, and
// tweens the value toward the state over frames.
//
// SetState records a new target. With a transition, the value is
// interpolated on each subsequent Animate (or graph Step) until progress
// reaches 1, at which point value equals state exactly. Without one, value
// jumps to state immediately.
//
// Animators are not safe for concurrent use; drive them from one goroutine,
// usually the frame loop.
type Animator[T any] struct {
	// Name identifies the animator in logs and signals.
	Name string
	// Duration is the default tween length for transitions that leave it
	// unset.
	Duration time.Duration
	// Easing is the default easing for transitions that leave it unset.
	Easing Easing

	kind    Kind[T]
	value   T
	state   T
	defined bool

	timing       *Timing
	interpolator *Interpolator[T]
	transition   *Transition[T]
	interrupted  *Transition[T]

	flags    Flags
	affinity Affinity
	deferred *deferredState[T]

	graph      *Graph
	id         FastenerID
	decoherent bool
	// continuing is set when the animator queued itself for the next frame
	// after advancing to coherentTime.
	continuing   bool
	coherentTime time.Duration

	observers      []observerEntry[T]
	nextObserverID int
}

// NewAnimator returns an idle animator whose value and state are initial.
func NewAnimator[T any](name string, kind Kind[T], initial T) *Animator[T] {
	return &Animator[T]{
		Name:     name,
		Duration: DefaultDuration,
		Easing:   EaseInOut,
		kind:     kind,
		value:    initial,
		state:    initial,
		defined:  true,
	}
}

// NewUnsetAnimator returns an animator with no value yet. The first state
// set on it is applied immediately, since there is nothing to tween from.
func NewUnsetAnimator[T any](name string, kind Kind[T]) *Animator[T] {
	a := NewAnimator(name, kind, *new(T))
	a.defined = false
	return a
}

// Kind returns the value kind.
func (a *Animator[T]) Kind() Kind[T] { return a.kind }

// Value returns the current, possibly mid-tween, value.
func (a *Animator[T]) Value() T { return a.value }

// State returns the target state.
func (a *Animator[T]) State() T { return a.state }

// Defined reports whether the animator has been given a value.
func (a *Animator[T]) Defined() bool { return a.defined }

// Flags returns a copy of the flag set.
func (a *Animator[T]) Flags() Flags { return a.flags }

// Status returns the lifecycle status derived from the flags.
func (a *Animator[T]) Status() Status { return a.flags.status() }

// IsTweening reports whether a tween is in flight.
func (a *Animator[T]) IsTweening() bool { return a.flags.Tweening }

// Updated reports whether the value was written since the last
// ResetUpdated.
func (a *Animator[T]) Updated() bool { return a.flags.Updated }

// ResetUpdated clears the Updated flag.
func (a *Animator[T]) ResetUpdated() { a.flags.Updated = false }

// Constrained reports whether solver solutions may write the state.
func (a *Animator[T]) Constrained() bool { return a.flags.Constrained }

// SetConstrained sets the Constrained flag.
func (a *Animator[T]) SetConstrained(constrained bool) { a.flags.Constrained = constrained }

// Constraining reports whether value changes are pushed into a solver.
func (a *Animator[T]) Constraining() bool { return a.flags.Constraining }

// SetConstraining sets the Constraining flag. Owners binding a solver set
// it; the animator itself never pushes anywhere.
func (a *Animator[T]) SetConstraining(constraining bool) { a.flags.Constraining = constraining }

// Timing returns the active timing. It is only present while tweening.
func (a *Animator[T]) Timing() (Timing, bool) {
	if a.timing == nil {
		return Timing{}, false
	}
	return *a.timing, true
}

// Interpolator returns the active interpolator. It is only present while
// tweening.
func (a *Animator[T]) Interpolator() (Interpolator[T], bool) {
	if a.interpolator == nil {
		return Interpolator[T]{}, false
	}
	return *a.interpolator, true
}

// Deferred returns a state recorded from a call whose affinity was too weak
// to apply, if any.
func (a *Animator[T]) Deferred() (T, Affinity, bool) {
	if a.deferred == nil {
		var zero T
		return zero, Transient, false
	}
	return a.deferred.state, a.deferred.affinity, true
}

// AddObserver registers o and returns a function that removes it.
func (a *Animator[T]) AddObserver(o *Observer[T]) func() {
	a.nextObserverID++
	id := a.nextObserverID
	a.observers = append(a.observers, observerEntry[T]{id: id, observer: o})
	return func() {
		kept := make([]observerEntry[T], 0, len(a.observers))
		for _, e := range a.observers {
			if e.id != id {
				kept = append(kept, e)
			}
		}
		a.observers = kept
	}
}

// SetState sets the target state at Extrinsic affinity. tween is anything
// ForTween accepts: nil or false applies the state immediately, true uses
// the animator's defaults, and a Transition, Timing, Easing, duration or
// initializer describes the tween.
func (a *Animator[T]) SetState(state T, tween any) {
	a.SetStateAffinity(state, tween, Extrinsic)
}

// SetStateAffinity sets the target state on behalf of a caller with the
// given affinity. Calls weaker than the animator's current affinity are
// recorded and applied once the affinity drops to their level. A call
// stronger than Inherited relinquishes inheritance.
//
// A malformed tween is reported to the error handler and the state is
// applied immediately.
func (a *Animator[T]) SetStateAffinity(state T, tween any, affinity Affinity) {
	if affinity < a.affinity {
		a.deferred = &deferredState[T]{state: state, tween: tween, affinity: affinity}
		logger().Debug("animator state deferred",
			"fastener", a.Name, "affinity", affinity.String(), "held", a.affinity.String())
		return
	}
	a.deferred = nil
	a.affinity = affinity
	if affinity > Inherited && a.flags.Inherited {
		a.flags.Inherited = false
		a.flags.Overridden = true
	}

	tr, err := ForTween(tween, a.value, a.kind, a.defaultDuration(), a.Easing)
	if err != nil {
		errors.Report(&errors.MotionError{
			Op:       "animation.Animator.SetState",
			Kind:     errors.KindType,
			Fastener: a.Name,
			Err:      err,
		})
		tr = nil
	}
	a.setState(state, tr)
}

func (a *Animator[T]) defaultDuration() time.Duration {
	if a.Duration == 0 {
		return DefaultDuration
	}
	return a.Duration
}

func (a *Animator[T]) setState(newState T, tr *Transition[T]) {
	oldState := a.state

	if tr == nil || !a.defined {
		wasTweening := a.flags.Tweening
		interrupted := a.pendingInterrupt()
		a.clearTween()
		a.state = newState
		wasDefined := a.defined
		a.defined = true
		if !wasDefined || !a.kind.Equal(newState, oldState) {
			a.notifySetState(newState, oldState)
		}
		a.writeValue(newState)
		if wasTweening {
			a.fireInterrupt(interrupted, a.value)
		}
		return
	}

	if !a.kind.Equal(newState, a.state) {
		a.state = newState
		tm := tr.Timing()
		a.timing = &tm
		ip := NewInterpolator(a.kind, a.value, newState)
		if custom, ok := tr.Interpolator(); ok && custom.Kind() != nil {
			ip = custom.Range(a.value, newState)
		}
		a.interpolator = &ip

		if a.flags.Tweening {
			if !a.flags.Interrupted {
				a.interrupted = a.transition
			}
			a.flags.Interrupted = true
		} else {
			a.flags.Tweening = true
		}
		a.flags.Diverged = true
		a.transition = tr
		a.notifySetState(newState, oldState)
		a.decohere()
		return
	}

	if !a.flags.Tweening && tr.onEnd != nil {
		tr.onEnd(a.value)
	}
}

// SetValue writes the current value directly, without tweening and without
// touching the target state. On an unset animator it also sets the state.
// Phase animators use it to flip direction before tweening toward rest.
func (a *Animator[T]) SetValue(v T) {
	if !a.defined {
		a.state = v
		a.defined = true
	}
	a.writeValue(v)
}

func (a *Animator[T]) writeValue(v T) {
	old := a.value
	a.value = v
	a.flags.Updated = true
	if !a.kind.Equal(v, old) {
		a.notifySetValue(v, old)
		a.decohereSubFasteners()
	}
}

// Animate advances an in-flight tween to frame time t, then recoheres any
// decoherent sub fasteners. It is a no-op for idle animators with no
// decoherent subs. Frame times must not decrease.
func (a *Animator[T]) Animate(t time.Duration) {
	if a.flags.Tweening {
		a.tween(t)
	}
	a.recohereSubFasteners(t)
}

func (a *Animator[T]) tween(t time.Duration) {
	oldValue := a.value
	if a.timing == nil {
		tm := Linear.WithDomain(t, t)
		a.timing = &tm
	}
	if a.interpolator == nil {
		ip := NewInterpolator(a.kind, oldValue, a.state)
		a.interpolator = &ip
	}

	if a.flags.Interrupted {
		a.flags.Interrupted = false
		tr := a.interrupted
		a.interrupted = nil
		a.fireInterrupt(tr, oldValue)
	}

	if a.flags.Diverged {
		a.flags.Diverged = false
		d := max(a.timing.Duration, 0)
		var tm Timing
		if !a.kind.Equal(a.state, oldValue) {
			tm = a.timing.WithDomain(t, t+d)
		} else {
			tm = a.timing.WithDomain(t-d, t)
		}
		a.timing = &tm
		a.fireBegin(oldValue)
	}

	progress := a.timing.Progress(t)
	newValue := a.interpolator.At(a.timing.Easing.Ease(progress))
	a.writeValue(newValue)
	a.notifyUpdate(newValue)

	if progress >= 1 {
		tr := a.transition
		a.clearTween()
		a.fireEnd(tr, a.value)
	}
}

// clearTween drops the timing, interpolator and transitions and clears the
// tween flags without firing callbacks.
func (a *Animator[T]) clearTween() {
	a.timing = nil
	a.interpolator = nil
	a.transition = nil
	a.interrupted = nil
	a.flags.Tweening = false
	a.flags.Diverged = false
	a.flags.Interrupted = false
}

// pendingInterrupt returns the transition owed an OnInterrupt if the tween
// stopped now.
func (a *Animator[T]) pendingInterrupt() *Transition[T] {
	if a.flags.Interrupted && a.interrupted != nil {
		return a.interrupted
	}
	return a.transition
}

func (a *Animator[T]) fireBegin(v T) {
	var d time.Duration
	if a.timing != nil {
		d = a.timing.Duration
	}
	logger().Debug("animator tween began", "fastener", a.Name, "duration", d)
	emitBegan(a.Name, d)
	if a.transition != nil && a.transition.onBegin != nil {
		a.transition.onBegin(v)
	}
	for _, e := range a.observers {
		if e.observer.OnBegin != nil {
			e.observer.OnBegin(v)
		}
	}
}

func (a *Animator[T]) fireEnd(tr *Transition[T], v T) {
	logger().Debug("animator tween ended", "fastener", a.Name)
	emitEnded(a.Name)
	if tr != nil && tr.onEnd != nil {
		tr.onEnd(v)
	}
	for _, e := range a.observers {
		if e.observer.OnEnd != nil {
			e.observer.OnEnd(v)
		}
	}
}

func (a *Animator[T]) fireInterrupt(tr *Transition[T], v T) {
	logger().Debug("animator tween interrupted", "fastener", a.Name)
	emitInterrupted(a.Name)
	if tr != nil && tr.onInterrupt != nil {
		tr.onInterrupt(v)
	}
	for _, e := range a.observers {
		if e.observer.OnInterrupt != nil {
			e.observer.OnInterrupt(v)
		}
	}
}

func (a *Animator[T]) notifySetState(newState, oldState T) {
	for _, e := range a.observers {
		if e.observer.OnSetState != nil {
			e.observer.OnSetState(newState, oldState)
		}
	}
}

func (a *Animator[T]) notifySetValue(newValue, oldValue T) {
	for _, e := range a.observers {
		if e.observer.OnSetValue != nil {
			e.observer.OnSetValue(newValue, oldValue)
		}
	}
}

func (a *Animator[T]) notifyUpdate(v T) {
	for _, e := range a.observers {
		if e.observer.OnUpdate != nil {
			e.observer.OnUpdate(v)
		}
	}
}
