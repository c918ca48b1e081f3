package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/go-drift/motion/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "theme",
		Short: "Validate a theme file",
		Long: `Validate a theme file and list its looks.

The file must carry a v1 semantic version, and every predefined look
(backgroundColor, textColor, opacity, ...) must hold a value of its kind.
Colors are hex (#rgb, #rrggbb, #rrggbbaa) or CSS color names.

With --watch, the file is re-validated on every write until interrupted.
Pass "light" or "dark" instead of a file to print a built-in theme.`,
		Usage: "motion theme [--watch] <file | light | dark>",
		Run:   runTheme,
	})
}

func runTheme(args []string) error {
	var path string
	watch := false
	for _, arg := range args {
		switch {
		case arg == "--watch":
			watch = true
		case path == "":
			path = arg
		default:
			return fmt.Errorf("unexpected argument %q", arg)
		}
	}
	if path == "" {
		return fmt.Errorf("theme requires a file")
	}

	switch path {
	case "light", "dark":
		t := theme.DefaultLightTheme()
		if path == "dark" {
			t = theme.DefaultDarkTheme()
		}
		data, err := theme.Marshal(t)
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	if !watch {
		t, err := theme.LoadFile(path)
		if err != nil {
			return err
		}
		printTheme(t)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return watchTheme(ctx, path)
}

func watchTheme(ctx context.Context, path string) error {
	updates, err := theme.Watch(ctx, path)
	if err != nil {
		return err
	}
	for u := range updates {
		if u.Err != nil {
			fmt.Fprintf(stdout, "invalid: %v\n", u.Err)
			continue
		}
		printTheme(u.Theme)
	}
	return nil
}

func printTheme(t *theme.Theme) {
	looks := t.Looks()
	fmt.Fprintf(stdout, "ok: %s %s (%s, %d looks: %s)\n",
		t.Name, t.Version, t.Brightness, len(looks), strings.Join(looks, ", "))
}
