// Package animation provides property animators for building smooth,
// interruptible transitions between states.
//
// # Core Components
//
//   - [Animator]: Holds a property's value and target state. SetState with a
//     transition tweens the value toward the state frame by frame; without
//     one the value jumps.
//
//   - [Transition]: Duration, easing, interpolator and begin/end/interrupt
//     callbacks for one state change. [ForTween] accepts the shorthand forms
//     (true, an Easing, a Timing, a duration, a tag or an initializer map).
//
//   - [Easing] and [Timing]: Tagged easing curves (the Penner set plus
//     CSS-style cubic beziers) and the time domain they are evaluated over.
//
//   - [Kind]: How values of a type compare, blend and coerce. Built-in kinds
//     cover float64, colors, offsets, phases and step-only values.
//
//   - [Graph]: Registers animators, links them into inheritance trees and
//     recoheres whatever changed on each frame.
//
// # Basic Usage
//
//	g := animation.NewGraph()
//	opacity := animation.NewAnimator("opacity", animation.Float64, 0.0)
//	g.Add(opacity)
//
//	opacity.SetState(1, animation.EaseOut.WithDuration(300*time.Millisecond))
//
//	// In the frame loop
//	g.Tick()
//	draw(opacity.Value())
//
// # Affinity and Inheritance
//
// Every state change carries an [Affinity]. An animator attached to a super
// fastener copies its value while its own affinity is Inherited or weaker;
// a stronger SetState overrides the inheritance until the affinity is
// lowered again.
//
// # Threading
//
// Animators and graphs are not safe for concurrent use. Drive them from the
// goroutine that runs the frame loop.
package animation
