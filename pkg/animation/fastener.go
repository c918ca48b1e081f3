package animation

import (
	"time"

	"github.com/go-drift/motion/pkg/errors"
)

// FastenerName returns the animator's name.
func (a *Animator[T]) FastenerName() string { return a.Name }

// Graph returns the graph the animator is registered in, or nil.
func (a *Animator[T]) Graph() *Graph { return a.graph }

// ID returns the animator's graph ID. It is zero when unregistered.
func (a *Animator[T]) ID() FastenerID { return a.id }

func (a *Animator[T]) bind(g *Graph, id FastenerID) {
	a.graph = g
	a.id = id
	if g != nil && a.decoherent {
		g.schedule(id)
	}
}

// Affinity returns the affinity of the call that last set the state.
func (a *Animator[T]) Affinity() Affinity { return a.affinity }

// Inherits reports whether the value is currently copied from the super
// fastener.
func (a *Animator[T]) Inherits() bool { return a.flags.Inherited }

// SetAffinity changes the held affinity. Dropping to Inherited or below
// while a super fastener exists resumes inheritance; rising above
// Inherited relinquishes it. A deferred state whose affinity now suffices
// is applied.
func (a *Animator[T]) SetAffinity(affinity Affinity) {
	if affinity <= Inherited && a.SuperFastener() != nil {
		a.affinity = Inherited
		if !a.flags.Inherited {
			a.startInheriting()
		}
		return
	}
	a.affinity = affinity
	if affinity > Inherited && a.flags.Inherited {
		a.flags.Inherited = false
		a.flags.Overridden = true
	}
	a.flushDeferred()
}

// Attach makes parent the super fastener. The animator joins parent's graph
// if it is not registered yet. If the held affinity is Inherited or weaker,
// the animator starts inheriting parent's value and state on the next
// recoherence; otherwise it is marked Overridden and keeps its own value.
//
// Attach fails with errors.ErrNotRegistered when parent has no graph,
// errors.ErrGraphMismatch when the two belong to different graphs, and
// errors.ErrCycle when parent already descends from the animator. Attaching
// nil detaches.
func (a *Animator[T]) Attach(parent *Animator[T]) error {
	if parent == nil {
		a.Detach()
		return nil
	}
	g := parent.graph
	if g == nil {
		return errors.ErrNotRegistered
	}
	if a.graph == nil {
		if _, err := g.Add(a); err != nil {
			return err
		}
	} else if a.graph != g {
		return errors.ErrGraphMismatch
	}
	if err := g.link(a.id, parent.id); err != nil {
		return err
	}
	if a.affinity <= Inherited {
		a.affinity = Inherited
		a.startInheriting()
	} else {
		a.flags.Overridden = true
	}
	return nil
}

// Detach removes the super link. An inheriting animator keeps the value it
// last inherited, drops to Transient affinity and applies any deferred
// state.
func (a *Animator[T]) Detach() {
	if a.graph != nil && a.graph.unlink(a.id) {
		a.detached()
	}
}

func (a *Animator[T]) detached() {
	a.flags.Inherited = false
	a.flags.Overridden = false
	if a.affinity <= Inherited {
		a.affinity = Transient
	}
	a.flushDeferred()
}

func (a *Animator[T]) startInheriting() {
	a.flags.Inherited = true
	a.flags.Overridden = false
	a.decohere()
}

func (a *Animator[T]) flushDeferred() {
	d := a.deferred
	if d == nil || a.flags.Inherited || d.affinity < a.affinity {
		return
	}
	a.deferred = nil
	a.SetStateAffinity(d.state, d.tween, d.affinity)
}

// embedded is implemented by *Animator[T] and, through promotion, by every
// type that embeds one.
type embedded[T any] interface {
	animator() *Animator[T]
}

func (a *Animator[T]) animator() *Animator[T] { return a }

// animatorOf returns the animator behind f, or nil when f animates another
// value type.
func animatorOf[T any](f Fastener) *Animator[T] {
	if e, ok := f.(embedded[T]); ok {
		return e.animator()
	}
	return nil
}

// SuperFastener returns the animator this one inherits from, or nil.
func (a *Animator[T]) SuperFastener() *Animator[T] {
	return animatorOf[T](a.graph.superOf(a.id))
}

// SubFasteners returns the animators attached to this one, in attach order.
func (a *Animator[T]) SubFasteners() []*Animator[T] {
	var subs []*Animator[T]
	for _, f := range a.graph.subsOf(a.id) {
		if sub := animatorOf[T](f); sub != nil {
			subs = append(subs, sub)
		}
	}
	return subs
}

// Dispose unregisters the animator and drops its observers and any tween
// without firing callbacks. Sub fasteners relinquish inheritance.
func (a *Animator[T]) Dispose() {
	if a.graph != nil {
		a.graph.Remove(a.id)
	}
	a.clearTween()
	a.observers = nil
	a.deferred = nil
	a.decoherent = false
}

// Decohere marks the animator as needing recoherence and queues it in its
// graph.
func (a *Animator[T]) Decohere() { a.decohere() }

func (a *Animator[T]) decohere() {
	a.decoherent = true
	a.continuing = false
	if a.graph != nil {
		a.graph.schedule(a.id)
	}
}

// Coherent reports whether the animator has no pending recoherence.
func (a *Animator[T]) Coherent() bool { return !a.decoherent }

func (a *Animator[T]) isDecoherent() bool { return a.decoherent }

// Recohere resolves the animator for frame time t. An inheriting animator
// copies its super fastener's value and state; a tweening one advances its
// tween. Sub fasteners are recohered afterward, so one call settles the
// whole subtree. A tweening animator stays decoherent and is queued for
// the next frame.
func (a *Animator[T]) Recohere(t time.Duration) {
	if !a.decoherent {
		return
	}
	if a.continuing && t <= a.coherentTime {
		return
	}
	a.decoherent = false
	a.continuing = false
	a.coherentTime = t

	if a.flags.Inherited {
		sup := a.SuperFastener()
		if sup == nil {
			errors.Invariant("animation.Animator.Recohere", a.Name, "inherited animator has no super fastener")
			return
		}
		a.inherit(sup)
	} else if a.flags.Tweening {
		a.tween(t)
	}

	if a.flags.Tweening {
		a.decohere()
		a.continuing = true
	}
	a.recohereSubFasteners(t)
}

// inherit copies sup's value and state, replacing any tween of its own.
// Timing is not copied: the super fastener drives the motion and the copy
// arrives frame by frame.
func (a *Animator[T]) inherit(sup *Animator[T]) {
	oldState := a.state
	wasTweening := a.flags.Tweening
	interrupted := a.pendingInterrupt()
	a.clearTween()

	wasDefined := a.defined
	a.state = copyValue(a.kind, sup.state)
	a.defined = sup.defined
	if !wasDefined || !a.kind.Equal(a.state, oldState) {
		a.notifySetState(a.state, oldState)
	}
	a.writeValue(copyValue(a.kind, sup.value))
	if wasTweening {
		a.fireInterrupt(interrupted, a.value)
	}
}

func (a *Animator[T]) decohereSubFasteners() {
	for _, f := range a.graph.subsOf(a.id) {
		f.decohere()
	}
}

func (a *Animator[T]) recohereSubFasteners(t time.Duration) {
	for _, f := range a.graph.subsOf(a.id) {
		f.Recohere(t)
	}
}
