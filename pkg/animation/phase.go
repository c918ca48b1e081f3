package animation

import (
	"github.com/go-drift/motion/pkg/errors"
)

// Phase is a toggle position: Value runs from 0 (off) to 1 (on) and
// Direction is +1 while moving on, -1 while moving off and 0 at rest.
type Phase struct {
	Value     float64
	Direction float64
}

// PhaseKind is the kind for Phase values. The direction holds the start's
// direction until progress reaches 1, so an in-flight toggle reports where
// it is heading.
var PhaseKind Kind[Phase] = phaseKind{}

type phaseKind struct{}

func (phaseKind) Equal(a, b Phase) bool { return a == b }

func (phaseKind) Lerp(a, b Phase, u float64) Phase {
	p := Phase{Value: a.Value + (b.Value-a.Value)*u, Direction: a.Direction}
	if u >= 1 {
		p.Direction = b.Direction
	}
	return p
}

// Coerce accepts a Phase, a bool (on or off at rest), a number (a resting
// value) or a map with value and direction keys.
func (phaseKind) Coerce(v any) (Phase, error) {
	switch p := v.(type) {
	case Phase:
		return p, nil
	case bool:
		if p {
			return Phase{Value: 1}, nil
		}
		return Phase{}, nil
	case map[string]any:
		value, errV := toFloat(p["value"])
		dir, errD := toFloat(p["direction"])
		if errV == nil && errD == nil {
			return Phase{Value: value, Direction: dir}, nil
		}
	default:
		if f, err := toFloat(v); err == nil && v != nil {
			return Phase{Value: f}, nil
		}
	}
	return Phase{}, &errors.CoercionError{Target: "animation.Phase", Value: v}
}

func (phaseKind) Float(p Phase) (float64, error) { return p.Value, nil }
func (phaseKind) FromFloat(f float64) Phase     { return Phase{Value: f} }

type phaseHooks struct {
	willRaise, didRaise, willLower, didLower *func()
}

func callHook(fn *func()) {
	if *fn != nil {
		(*fn)()
	}
}

func newPhaseAnimator(name string, on bool, hooks phaseHooks) *Animator[Phase] {
	initial := Phase{}
	if on {
		initial.Value = 1
	}
	a := NewAnimator(name, PhaseKind, initial)
	a.AddObserver(&Observer[Phase]{
		OnBegin: func(v Phase) {
			switch {
			case v.Direction > 0:
				callHook(hooks.willRaise)
			case v.Direction < 0:
				callHook(hooks.willLower)
			}
		},
		OnEnd: func(v Phase) {
			if v.Value >= 1 {
				callHook(hooks.didRaise)
			} else {
				callHook(hooks.didLower)
			}
		},
	})
	return a
}

// toggle turns a toward target (0 or 1). The direction is written into the
// value first so observers see where the phase is heading, then the state
// tweens to rest. It reports false when a is already at or heading to
// target.
func toggle(a *Animator[Phase], target float64, tween any, hooks phaseHooks) bool {
	if a.State().Value == target && a.Defined() {
		return false
	}
	dir := 1.0
	if target < a.Value().Value {
		dir = -1
	}
	a.SetValue(Phase{Value: a.Value().Value, Direction: dir})
	a.SetState(Phase{Value: target}, tween)
	if !a.IsTweening() {
		if dir > 0 {
			callHook(hooks.willRaise)
			callHook(hooks.didRaise)
		} else {
			callHook(hooks.willLower)
			callHook(hooks.didLower)
		}
	}
	return true
}

// ExpansionAnimator animates a disclosure between collapsed (0) and
// expanded (1).
type ExpansionAnimator struct {
	*Animator[Phase]

	WillExpand   func()
	DidExpand    func()
	WillCollapse func()
	DidCollapse  func()
}

// NewExpansionAnimator returns an expansion animator at rest.
func NewExpansionAnimator(name string, expanded bool) *ExpansionAnimator {
	e := &ExpansionAnimator{}
	e.Animator = newPhaseAnimator(name, expanded, e.hooks())
	return e
}

func (e *ExpansionAnimator) hooks() phaseHooks {
	return phaseHooks{&e.WillExpand, &e.DidExpand, &e.WillCollapse, &e.DidCollapse}
}

// Expand tweens toward expanded. It returns false if already expanded or
// expanding.
func (e *ExpansionAnimator) Expand(tween any) bool {
	return toggle(e.Animator, 1, tween, e.hooks())
}

// Collapse tweens toward collapsed. It returns false if already collapsed or
// collapsing.
func (e *ExpansionAnimator) Collapse(tween any) bool {
	return toggle(e.Animator, 0, tween, e.hooks())
}

// Toggle expands a collapsed or collapsing animator and collapses otherwise.
func (e *ExpansionAnimator) Toggle(tween any) {
	if e.State().Value >= 1 {
		e.Collapse(tween)
	} else {
		e.Expand(tween)
	}
}

func (e *ExpansionAnimator) Expanded() bool   { return atRest(e.Value(), 1) }
func (e *ExpansionAnimator) Collapsed() bool  { return atRest(e.Value(), 0) }
func (e *ExpansionAnimator) Expanding() bool  { return e.Value().Direction > 0 }
func (e *ExpansionAnimator) Collapsing() bool { return e.Value().Direction < 0 }

func atRest(p Phase, target float64) bool {
	return p.Direction == 0 && p.Value == target
}

// FocusAnimator animates keyboard or pointer focus between unfocused (0) and
// focused (1).
type FocusAnimator struct {
	*Animator[Phase]

	WillFocus   func()
	DidFocus    func()
	WillUnfocus func()
	DidUnfocus  func()
}

// NewFocusAnimator returns a focus animator at rest.
func NewFocusAnimator(name string, focused bool) *FocusAnimator {
	f := &FocusAnimator{}
	f.Animator = newPhaseAnimator(name, focused, f.hooks())
	return f
}

func (f *FocusAnimator) hooks() phaseHooks {
	return phaseHooks{&f.WillFocus, &f.DidFocus, &f.WillUnfocus, &f.DidUnfocus}
}

// Focus tweens toward focused.
func (f *FocusAnimator) Focus(tween any) bool {
	return toggle(f.Animator, 1, tween, f.hooks())
}

// Unfocus tweens toward unfocused.
func (f *FocusAnimator) Unfocus(tween any) bool {
	return toggle(f.Animator, 0, tween, f.hooks())
}

func (f *FocusAnimator) Focused() bool   { return atRest(f.Value(), 1) }
func (f *FocusAnimator) Unfocused() bool { return atRest(f.Value(), 0) }

// PresenceAnimator animates an element appearing (1) and going away (0).
type PresenceAnimator struct {
	*Animator[Phase]

	WillPresent func()
	DidPresent  func()
	WillDismiss func()
	DidDismiss  func()
}

// NewPresenceAnimator returns a presence animator at rest.
func NewPresenceAnimator(name string, presented bool) *PresenceAnimator {
	p := &PresenceAnimator{}
	p.Animator = newPhaseAnimator(name, presented, p.hooks())
	return p
}

func (p *PresenceAnimator) hooks() phaseHooks {
	return phaseHooks{&p.WillPresent, &p.DidPresent, &p.WillDismiss, &p.DidDismiss}
}

// Present tweens toward presented.
func (p *PresenceAnimator) Present(tween any) bool {
	return toggle(p.Animator, 1, tween, p.hooks())
}

// Dismiss tweens toward dismissed.
func (p *PresenceAnimator) Dismiss(tween any) bool {
	return toggle(p.Animator, 0, tween, p.hooks())
}

func (p *PresenceAnimator) Presented() bool  { return atRest(p.Value(), 1) }
func (p *PresenceAnimator) Dismissed() bool  { return atRest(p.Value(), 0) }
func (p *PresenceAnimator) Presenting() bool { return p.Value().Direction > 0 }
func (p *PresenceAnimator) Dismissing() bool { return p.Value().Direction < 0 }
