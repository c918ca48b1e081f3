package theme_test

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/theme"
)

// This example shows how a mood vector selects among a look's values.
func ExampleLookup() {
	t := theme.New("buttons").
		Set("padding", 8).
		SetMood("padding", theme.Raised, 12).
		SetMood("padding", theme.Floating, 16)

	padding := theme.NewLook("padding", animation.Float64)
	for _, mood := range []theme.MoodVector{nil, {theme.Raised: 1}, {theme.Raised: 0.4, theme.Floating: 0.6}} {
		v, _, _ := theme.Lookup(t, padding, mood)
		fmt.Println(v)
	}
	// Output:
	// 8
	// 12
	// 16
}

// This example shows a themed animator following a theme switch.
func ExampleThemeAnimator() {
	g := animation.NewGraph()
	radius := theme.NewThemeAnimator("radius", animation.Float64, 0.0)
	g.Add(radius)
	radius.SetLook(theme.CornerRadius, nil)

	radius.ApplyTheme(theme.DefaultLightTheme(), nil, nil)
	fmt.Println(radius.Value())

	radius.ApplyTheme(theme.DefaultLightTheme(), theme.MoodVector{theme.Floating: 1},
		animation.Linear.WithDuration(200*time.Millisecond))
	g.Step(0)
	g.Step(100 * time.Millisecond)
	fmt.Println(radius.Value())
	// Output:
	// 8
	// 12
}
