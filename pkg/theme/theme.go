// Package theme provides mood-aware value tables and animators that follow
// them.
//
// A [Theme] maps looks (named, typed properties such as a background color)
// to a base value and optional per-mood values. [Lookup] resolves a look
// under a [MoodVector], and [ThemeAnimator] tweens to the resolved value
// whenever a theme is applied.
package theme

import (
	"fmt"
	"maps"
	"slices"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/graphics"
)

// Mood names a situational variant of a look, such as a hovered or
// disabled control.
type Mood string

// Built-in moods.
const (
	Ambient   Mood = "ambient"
	Primary   Mood = "primary"
	Secondary Mood = "secondary"
	Disabled  Mood = "disabled"
	Hovering  Mood = "hovering"
	Selected  Mood = "selected"
	Warning   Mood = "warning"
	Alert     Mood = "alert"
	Raised    Mood = "raised"
	Floating  Mood = "floating"
)

// MoodVector weights moods. A nil vector means the ambient mood.
type MoodVector map[Mood]float64

// Dominant returns the mood with the highest positive weight among those
// accepted by has. Ties go to the lexically smallest name.
func (m MoodVector) Dominant(has func(Mood) bool) (Mood, bool) {
	var best Mood
	var bestWeight float64
	found := false
	for _, mood := range slices.Sorted(maps.Keys(m)) {
		w := m[mood]
		if w <= 0 || (has != nil && !has(mood)) {
			continue
		}
		if !found || w > bestWeight {
			best, bestWeight, found = mood, w, true
		}
	}
	return best, found
}

// Brightness indicates whether a theme is light or dark.
type Brightness int

const (
	// BrightnessLight is a light theme.
	BrightnessLight Brightness = iota
	// BrightnessDark is a dark theme.
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// Look is a typed key into a theme.
type Look[T any] struct {
	Name string
	Kind animation.Kind[T]
}

// NewLook returns a look with the given name and kind.
func NewLook[T any](name string, kind animation.Kind[T]) Look[T] {
	return Look[T]{Name: name, Kind: kind}
}

// Predefined looks.
var (
	BackgroundColor = NewLook("backgroundColor", animation.Color)
	SurfaceColor    = NewLook("surfaceColor", animation.Color)
	TextColor       = NewLook("textColor", animation.Color)
	AccentColor     = NewLook("accentColor", animation.Color)
	BorderColor     = NewLook("borderColor", animation.Color)
	ErrorColor      = NewLook("errorColor", animation.Color)

	Opacity      = NewLook("opacity", animation.Float64)
	CornerRadius = NewLook("cornerRadius", animation.Float64)
	Spacing      = NewLook("spacing", animation.Float64)
)

// Entry is a look's raw values: a base and per-mood overrides. Values are
// stored as given (typed values, numbers or strings from a theme file) and
// coerced on lookup.
type Entry struct {
	Base  any
	Moods map[Mood]any
}

// Theme is a named table of looks.
type Theme struct {
	Name       string
	Version    string
	Brightness Brightness

	entries map[string]*Entry
}

// New returns an empty theme.
func New(name string) *Theme {
	return &Theme{Name: name, Version: SchemaVersion, entries: make(map[string]*Entry)}
}

func (t *Theme) entry(look string) *Entry {
	e := t.entries[look]
	if e == nil {
		e = &Entry{}
		if t.entries == nil {
			t.entries = make(map[string]*Entry)
		}
		t.entries[look] = e
	}
	return e
}

// Set assigns a look's base value.
func (t *Theme) Set(look string, value any) *Theme {
	t.entry(look).Base = value
	return t
}

// SetMood assigns a look's value under a mood.
func (t *Theme) SetMood(look string, mood Mood, value any) *Theme {
	e := t.entry(look)
	if e.Moods == nil {
		e.Moods = make(map[Mood]any)
	}
	e.Moods[mood] = value
	return t
}

// Looks returns the names of every look in the theme, sorted.
func (t *Theme) Looks() []string {
	return slices.Sorted(maps.Keys(t.entries))
}

// Raw returns the uncoerced value of a look under a mood vector and whether
// the theme defines it.
func (t *Theme) Raw(look string, mood MoodVector) (any, bool) {
	if t == nil {
		return nil, false
	}
	e, ok := t.entries[look]
	if !ok {
		return nil, false
	}
	if m, ok := mood.Dominant(func(m Mood) bool { _, ok := e.Moods[m]; return ok }); ok {
		return e.Moods[m], true
	}
	if e.Base == nil {
		return nil, false
	}
	return e.Base, true
}

// Clone returns a deep copy of the theme. Entry maps are copied so the
// clone can be edited without affecting the original.
func (t *Theme) Clone() *Theme {
	c := *t
	c.entries = make(map[string]*Entry, len(t.entries))
	for name, e := range t.entries {
		ec := &Entry{Base: e.Base}
		if e.Moods != nil {
			ec.Moods = maps.Clone(e.Moods)
		}
		c.entries[name] = ec
	}
	return &c
}

// Lookup resolves look in theme under mood and coerces the result with the
// look's kind. It reports false when the theme does not define the look.
func Lookup[T any](theme *Theme, look Look[T], mood MoodVector) (T, bool, error) {
	var zero T
	raw, ok := theme.Raw(look.Name, mood)
	if !ok {
		return zero, false, nil
	}
	v, err := look.Kind.Coerce(raw)
	if err != nil {
		return zero, true, fmt.Errorf("theme %q look %q: %w", theme.Name, look.Name, err)
	}
	return v, true, nil
}

// Validate checks that every predefined color look the theme defines parses
// as a color and every predefined number look as a number.
func (t *Theme) Validate() error {
	colors := []Look[graphics.Color]{BackgroundColor, SurfaceColor, TextColor, AccentColor, BorderColor, ErrorColor}
	numbers := []Look[float64]{Opacity, CornerRadius, Spacing}
	for _, look := range colors {
		if err := validateLook(t, look); err != nil {
			return err
		}
	}
	for _, look := range numbers {
		if err := validateLook(t, look); err != nil {
			return err
		}
	}
	return nil
}

func validateLook[T any](t *Theme, look Look[T]) error {
	e, ok := t.entries[look.Name]
	if !ok {
		return nil
	}
	if e.Base != nil {
		if _, err := look.Kind.Coerce(e.Base); err != nil {
			return fmt.Errorf("look %q: %w", look.Name, err)
		}
	}
	for _, mood := range slices.Sorted(maps.Keys(e.Moods)) {
		if _, err := look.Kind.Coerce(e.Moods[mood]); err != nil {
			return fmt.Errorf("look %q mood %q: %w", look.Name, mood, err)
		}
	}
	return nil
}
