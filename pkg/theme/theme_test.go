package theme

import (
	"strings"
	"testing"

	"github.com/go-drift/motion/pkg/graphics"
)

func TestMoodVector_Dominant(t *testing.T) {
	all := func(Mood) bool { return true }
	tests := []struct {
		name   string
		vector MoodVector
		has    func(Mood) bool
		want   Mood
		ok     bool
	}{
		{"nil vector", nil, all, "", false},
		{"highest weight", MoodVector{Hovering: 0.5, Selected: 1}, all, Selected, true},
		{"tie by name", MoodVector{Selected: 1, Hovering: 1}, all, Hovering, true},
		{"zero weight ignored", MoodVector{Hovering: 0}, all, "", false},
		{"negative weight ignored", MoodVector{Hovering: -1, Alert: 0.1}, all, Alert, true},
		{"filtered", MoodVector{Hovering: 1, Alert: 0.2}, func(m Mood) bool { return m == Alert }, Alert, true},
		{"nil filter", MoodVector{Raised: 1}, nil, Raised, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.vector.Dominant(tt.has)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Dominant() = %q, %v; want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	th := New("test").
		Set(BackgroundColor.Name, "white").
		SetMood(BackgroundColor.Name, Hovering, "#ff0000").
		SetMood(BackgroundColor.Name, Alert, graphics.ColorBlue).
		Set(Opacity.Name, 1)

	tests := []struct {
		name string
		mood MoodVector
		want graphics.Color
	}{
		{"base", nil, graphics.ColorWhite},
		{"mood", MoodVector{Hovering: 1}, graphics.ColorRed},
		{"weighted", MoodVector{Hovering: 0.2, Alert: 0.8}, graphics.ColorBlue},
		{"tie by name", MoodVector{Hovering: 1, Alert: 1}, graphics.ColorBlue},
		{"undefined mood falls back", MoodVector{Disabled: 1}, graphics.ColorWhite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := Lookup(th, BackgroundColor, tt.mood)
			if err != nil || !ok {
				t.Fatalf("Lookup() ok=%v err=%v", ok, err)
			}
			if got != tt.want {
				t.Errorf("Lookup() = %v, want %v", got, tt.want)
			}
		})
	}

	if v, ok, err := Lookup(th, Opacity, nil); err != nil || !ok || v != 1 {
		t.Errorf("Lookup(Opacity) = %v, %v, %v", v, ok, err)
	}
	if _, ok, err := Lookup(th, TextColor, nil); ok || err != nil {
		t.Errorf("expected an undefined look, got ok=%v err=%v", ok, err)
	}
	if _, ok, _ := Lookup[float64](nil, Opacity, nil); ok {
		t.Error("expected a nil theme to define nothing")
	}
}

func TestLookup_CoercionError(t *testing.T) {
	th := New("broken").Set(Opacity.Name, "very")
	_, ok, err := Lookup(th, Opacity, nil)
	if !ok || err == nil {
		t.Fatalf("expected a coercion error, got ok=%v err=%v", ok, err)
	}
	if !strings.Contains(err.Error(), `look "opacity"`) {
		t.Errorf("error %q should name the look", err)
	}
}

func TestTheme_Clone(t *testing.T) {
	orig := New("orig").Set(Spacing.Name, 4).SetMood(Spacing.Name, Raised, 8)
	c := orig.Clone()
	c.SetMood(Spacing.Name, Raised, 12).Set(CornerRadius.Name, 2)

	if v, _, _ := Lookup(orig, Spacing, MoodVector{Raised: 1}); v != 8 {
		t.Errorf("expected original unaffected, got %v", v)
	}
	if got := orig.Looks(); len(got) != 1 {
		t.Errorf("expected one look in the original, got %v", got)
	}
	if got := c.Looks(); len(got) != 2 || got[0] != CornerRadius.Name {
		t.Errorf("expected sorted looks, got %v", got)
	}
}

func TestTheme_Validate(t *testing.T) {
	if err := DefaultLightTheme().Validate(); err != nil {
		t.Errorf("light: %v", err)
	}
	if err := DefaultDarkTheme().Validate(); err != nil {
		t.Errorf("dark: %v", err)
	}
	bad := New("bad").SetMood(TextColor.Name, Disabled, "not-a-color")
	if err := bad.Validate(); err == nil || !strings.Contains(err.Error(), "disabled") {
		t.Errorf("expected a mood validation error, got %v", err)
	}
	custom := New("custom").Set("shadowBlur", "anything")
	if err := custom.Validate(); err != nil {
		t.Errorf("expected unknown looks to pass, got %v", err)
	}
}

func TestDefaults(t *testing.T) {
	light, dark := DefaultLightTheme(), DefaultDarkTheme()
	if light.Brightness != BrightnessLight || dark.Brightness != BrightnessDark {
		t.Error("unexpected brightness")
	}
	lt, _, _ := Lookup(light, TextColor, nil)
	dt, _, _ := Lookup(dark, TextColor, nil)
	if lt == dt {
		t.Error("expected light and dark text colors to differ")
	}
	if o, _, _ := Lookup(light, Opacity, MoodVector{Disabled: 1}); o != 0.38 {
		t.Errorf("disabled opacity = %v", o)
	}
}
