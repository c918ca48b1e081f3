package animation

import (
	"fmt"

	"github.com/go-drift/motion/pkg/errors"
)

// Affinity is the authority behind a state change. An animator remembers the
// affinity of the call that last set its state; later calls are honored only
// at an equal or stronger affinity. Weaker calls are recorded and applied
// once the stronger claim is released.
//
// From weakest to strongest:
//
//	Transient < Reflexive < Inherited < Intrinsic < Extrinsic
type Affinity uint8

const (
	// Transient makes no claim; any caller may override.
	Transient Affinity = iota
	// Reflexive marks values the engine derives from its own outputs, such
	// as constraint solutions and theme lookups.
	Reflexive
	// Inherited marks values copied from a super fastener.
	Inherited
	// Intrinsic marks values set by the owning object.
	Intrinsic
	// Extrinsic marks values set by outside callers. This is the affinity
	// of Animator.SetState.
	Extrinsic
)

// String returns a human-readable affinity name.
func (a Affinity) String() string {
	switch a {
	case Transient:
		return "transient"
	case Reflexive:
		return "reflexive"
	case Inherited:
		return "inherited"
	case Intrinsic:
		return "intrinsic"
	case Extrinsic:
		return "extrinsic"
	default:
		return fmt.Sprintf("Affinity(%d)", int(a))
	}
}

// ParseAffinity returns the affinity with the given name.
func ParseAffinity(name string) (Affinity, error) {
	for a := Transient; a <= Extrinsic; a++ {
		if a.String() == name {
			return a, nil
		}
	}
	return Transient, &errors.TypeError{Op: "animation.ParseAffinity", Expected: "affinity name", Got: name}
}

// Status summarizes where an animator is in its tween lifecycle.
//
//	          SetState(new, tween)          Animate(t)
//	Idle ───────────────────────► Diverged ───────────► Tweening
//	  ▲                                                   │  │
//	  │              progress reaches 1                   │  │ SetState(other, tween)
//	  └───────────────────────────────────────────────────┘  ▼
//	                                                    Interrupted
//
// An interrupted animator keeps tweening; the next frame fires OnInterrupt,
// rebases its timing and continues toward the new state.
type Status int

const (
	// StatusIdle means value equals state and nothing is tweening.
	StatusIdle Status = iota
	// StatusDiverged means state just changed and no frame has run yet.
	StatusDiverged
	// StatusTweening means the animator is interpolating toward state.
	StatusTweening
	// StatusInterrupted means a tween received a new state mid-flight.
	StatusInterrupted
)

// String returns a human-readable status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusDiverged:
		return "diverged"
	case StatusTweening:
		return "tweening"
	case StatusInterrupted:
		return "interrupted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Flags is the animator's flag set, one named boolean per flag.
type Flags struct {
	// Tweening is set while a tween is in flight.
	Tweening bool
	// Diverged is set when state changed and timing must be rebased on the
	// next frame.
	Diverged bool
	// Interrupted is set when a running tween received a new state.
	Interrupted bool
	// Updated is set whenever the value is written; owners clear it with
	// Animator.ResetUpdated after consuming the change.
	Updated bool
	// Inherited is set while the value is copied from the super fastener.
	Inherited bool
	// Overridden is set when a super fastener exists but a stronger
	// affinity has taken over.
	Overridden bool
	// Constrained is set when solver solutions may write the state.
	Constrained bool
	// Constraining is set while the value is pushed into a solver.
	Constraining bool
}

func (f Flags) status() Status {
	switch {
	case f.Interrupted:
		return StatusInterrupted
	case f.Diverged:
		return StatusDiverged
	case f.Tweening:
		return StatusTweening
	default:
		return StatusIdle
	}
}
