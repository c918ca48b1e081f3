package animation

import "time"

// Timing binds an [Easing] to a time domain on the frame clock.
//
// Progress is linear and clamped before easing is applied, so a Timing
// evaluated before Start yields Ease(0) and after Start+Duration yields
// Ease(1). Back and elastic easings may still produce values outside [0, 1]
// in between.
type Timing struct {
	// Easing shapes progress. The zero value is linear.
	Easing Easing
	// Start is the frame time at which progress is 0.
	Start time.Duration
	// Duration is the length of the domain. Negative durations are treated as 0.
	Duration time.Duration
}

// End returns Start + Duration.
func (t Timing) End() time.Duration {
	return t.Start + max(t.Duration, 0)
}

// WithDomain returns a copy spanning [t0, t1].
func (t Timing) WithDomain(t0, t1 time.Duration) Timing {
	return Timing{Easing: t.Easing, Start: t0, Duration: t1 - t0}
}

// WithDuration returns a copy with the same start and a new duration.
func (t Timing) WithDuration(d time.Duration) Timing {
	return Timing{Easing: t.Easing, Start: t.Start, Duration: d}
}

// Progress returns the linear, clamped progress at time now. With a zero
// duration any now at or after Start yields 1.
func (t Timing) Progress(now time.Duration) float64 {
	if t.Duration <= 0 {
		if now >= t.Start {
			return 1
		}
		return 0
	}
	return clampUnit(float64(now-t.Start) / float64(t.Duration))
}

// At returns the eased progress at time now.
func (t Timing) At(now time.Duration) float64 {
	return t.Easing.Ease(t.Progress(now))
}

// Equal reports whether two timings have the same easing and domain.
func (t Timing) Equal(other Timing) bool {
	return t.Easing.Equal(other.Easing) && t.Start == other.Start && t.Duration == other.Duration
}
