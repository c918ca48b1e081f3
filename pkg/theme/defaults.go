package theme

import "github.com/go-drift/motion/pkg/graphics"

// palette holds the handful of scheme colors the default looks draw from.
type palette struct {
	Primary        graphics.Color
	PrimaryHover   graphics.Color
	OnPrimary      graphics.Color
	Secondary      graphics.Color
	Background     graphics.Color
	Surface        graphics.Color
	SurfaceVariant graphics.Color
	OnSurface      graphics.Color
	OnSurfaceMuted graphics.Color
	Outline        graphics.Color
	Error          graphics.Color
}

func lightPalette() palette {
	return palette{
		Primary:        graphics.RGB(0x67, 0x50, 0xA4),
		PrimaryHover:   graphics.RGB(0x7F, 0x67, 0xBE),
		OnPrimary:      graphics.RGB(0xFF, 0xFF, 0xFF),
		Secondary:      graphics.RGB(0x62, 0x5B, 0x71),
		Background:     graphics.RGB(0xFF, 0xFB, 0xFE),
		Surface:        graphics.RGB(0xFF, 0xFB, 0xFE),
		SurfaceVariant: graphics.RGB(0xE7, 0xE0, 0xEC),
		OnSurface:      graphics.RGB(0x1C, 0x1B, 0x1F),
		OnSurfaceMuted: graphics.RGB(0x49, 0x45, 0x4F),
		Outline:        graphics.RGB(0x79, 0x74, 0x7E),
		Error:          graphics.RGB(0xB3, 0x26, 0x1E),
	}
}

func darkPalette() palette {
	return palette{
		Primary:        graphics.RGB(0xD0, 0xBC, 0xFF),
		PrimaryHover:   graphics.RGB(0xE8, 0xDD, 0xFF),
		OnPrimary:      graphics.RGB(0x38, 0x1E, 0x72),
		Secondary:      graphics.RGB(0xCC, 0xC2, 0xDC),
		Background:     graphics.RGB(0x1C, 0x1B, 0x1F),
		Surface:        graphics.RGB(0x1C, 0x1B, 0x1F),
		SurfaceVariant: graphics.RGB(0x49, 0x45, 0x4F),
		OnSurface:      graphics.RGB(0xE6, 0xE1, 0xE5),
		OnSurfaceMuted: graphics.RGB(0xCA, 0xC4, 0xD0),
		Outline:        graphics.RGB(0x93, 0x8F, 0x99),
		Error:          graphics.RGB(0xF2, 0xB8, 0xB5),
	}
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *Theme {
	t := fromPalette("light", lightPalette())
	t.Brightness = BrightnessLight
	return t
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *Theme {
	t := fromPalette("dark", darkPalette())
	t.Brightness = BrightnessDark
	return t
}

func fromPalette(name string, p palette) *Theme {
	t := New(name)

	t.Set(BackgroundColor.Name, p.Background).
		SetMood(BackgroundColor.Name, Primary, p.Primary).
		SetMood(BackgroundColor.Name, Hovering, p.PrimaryHover).
		SetMood(BackgroundColor.Name, Selected, p.SurfaceVariant).
		SetMood(BackgroundColor.Name, Alert, p.Error)

	t.Set(SurfaceColor.Name, p.Surface).
		SetMood(SurfaceColor.Name, Raised, p.SurfaceVariant).
		SetMood(SurfaceColor.Name, Floating, p.SurfaceVariant)

	t.Set(TextColor.Name, p.OnSurface).
		SetMood(TextColor.Name, Primary, p.OnPrimary).
		SetMood(TextColor.Name, Secondary, p.OnSurfaceMuted).
		SetMood(TextColor.Name, Disabled, p.OnSurface.WithAlpha(0.38)).
		SetMood(TextColor.Name, Alert, p.Error)

	t.Set(AccentColor.Name, p.Primary).
		SetMood(AccentColor.Name, Secondary, p.Secondary).
		SetMood(AccentColor.Name, Hovering, p.PrimaryHover).
		SetMood(AccentColor.Name, Disabled, p.OnSurface.WithAlpha(0.12))

	t.Set(BorderColor.Name, p.Outline).
		SetMood(BorderColor.Name, Selected, p.Primary).
		SetMood(BorderColor.Name, Warning, p.Error).
		SetMood(BorderColor.Name, Alert, p.Error)

	t.Set(ErrorColor.Name, p.Error)

	t.Set(Opacity.Name, 1.0).
		SetMood(Opacity.Name, Disabled, 0.38)
	t.Set(CornerRadius.Name, 8.0).
		SetMood(CornerRadius.Name, Floating, 16.0)
	t.Set(Spacing.Name, 8.0)

	return t
}
