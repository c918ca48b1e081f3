package theme

import (
	"context"

	"github.com/zoobzio/capitan"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/logging"
)

// ThemeApplied is emitted when an animator takes a value from a theme.
var ThemeApplied = capitan.NewSignal(
	"motion.theme.applied",
	"Theme look applied to an animator",
)

// Signal field keys.
var (
	// KeyTheme is the theme name.
	KeyTheme = capitan.NewStringKey("theme")

	// KeyLook is the look name.
	KeyLook = capitan.NewStringKey("look")
)

// Themed is implemented by animators that follow a theme.
type Themed interface {
	ApplyTheme(theme *Theme, mood MoodVector, tween any)
}

// ApplyAll applies theme to every animator in order.
func ApplyAll(animators []Themed, theme *Theme, mood MoodVector, tween any) {
	for _, a := range animators {
		a.ApplyTheme(theme, mood, tween)
	}
}

// ThemeAnimator is an animator whose state can come from a theme look.
// Applying a theme sets the state as if SetStateAffinity had been called
// with the looked-up value at the look's affinity, so explicit SetState
// calls (Extrinsic) win over theme values (Intrinsic by default).
type ThemeAnimator[T any] struct {
	*animation.Animator[T]

	look         *Look[T]
	lookAffinity animation.Affinity
	theme        *Theme
	mood         MoodVector
}

// NewThemeAnimator returns a theme animator whose value and state are
// initial.
func NewThemeAnimator[T any](name string, kind animation.Kind[T], initial T) *ThemeAnimator[T] {
	return &ThemeAnimator[T]{
		Animator:     animation.NewAnimator(name, kind, initial),
		lookAffinity: animation.Intrinsic,
	}
}

// Look returns the bound look.
func (a *ThemeAnimator[T]) Look() (Look[T], bool) {
	if a.look == nil {
		return Look[T]{}, false
	}
	return *a.look, true
}

// LookAffinity returns the affinity theme values are applied with.
func (a *ThemeAnimator[T]) LookAffinity() animation.Affinity { return a.lookAffinity }

// Theme returns the last applied theme and mood.
func (a *ThemeAnimator[T]) Theme() (*Theme, MoodVector) { return a.theme, a.mood }

// SetLook binds look at Intrinsic affinity and, if a theme has been applied,
// tweens to its value.
func (a *ThemeAnimator[T]) SetLook(look Look[T], tween any) {
	a.SetLookAffinity(look, tween, animation.Intrinsic)
}

// SetLookAffinity binds look at the given affinity.
func (a *ThemeAnimator[T]) SetLookAffinity(look Look[T], tween any, affinity animation.Affinity) {
	a.look = &look
	a.lookAffinity = affinity
	if a.theme != nil {
		a.apply(tween)
	}
}

// ClearLook unbinds the look. The current state is kept.
func (a *ThemeAnimator[T]) ClearLook() {
	a.look = nil
}

// ApplyTheme records theme and mood and, if a look is bound, sets the state
// to the look's value. A nil theme is recorded and changes nothing. A look
// the theme does not define leaves the state alone; a value that fails to
// coerce is reported and the previous value kept. ThemeApplied is emitted
// only when the value is applied, not when a stronger affinity defers it.
func (a *ThemeAnimator[T]) ApplyTheme(theme *Theme, mood MoodVector, tween any) {
	a.theme = theme
	a.mood = mood
	if theme != nil && a.look != nil {
		a.apply(tween)
	}
}

func (a *ThemeAnimator[T]) apply(tween any) {
	look := *a.look
	v, ok, err := Lookup(a.theme, look, a.mood)
	if err != nil {
		logging.Logger().Warn("theme value rejected",
			"fastener", a.Name, "look", look.Name, "theme", a.theme.Name, "error", err)
		errors.Report(&errors.MotionError{
			Op:       "theme.ThemeAnimator.ApplyTheme",
			Kind:     errors.KindCoercion,
			Fastener: a.Name,
			Err:      err,
		})
		return
	}
	if !ok {
		logging.Logger().Debug("theme look undefined",
			"fastener", a.Name, "look", look.Name, "theme", a.theme.Name)
		return
	}
	a.SetStateAffinity(v, tween, a.lookAffinity)
	if _, _, deferred := a.Deferred(); deferred {
		return
	}
	capitan.Emit(context.Background(), ThemeApplied,
		animation.KeyFastener.Field(a.Name),
		KeyTheme.Field(a.theme.Name),
		KeyLook.Field(look.Name),
	)
}
