package cmd

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/zoobzio/capitan"

	"github.com/go-drift/motion/cmd/motion/internal/scenario"
	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "trace",
		Short: "Run a scenario and print every frame",
		Long: `Run a scenario file and print each animator's value per frame.

A scenario declares float animators and timed events:

  length: 500ms            # omit to run until settled
  animators:
    - name: panel
      look: opacity        # follow a theme look
    - name: label
      parent: panel        # inherit panel's value
  relations:
    - {dst: label, src: panel, scale: 0.5}
  events:
    - {at: 0ms, animator: panel, state: 1, tween: {duration: 300ms, easing: linear}}
    - {at: 100ms, mood: {disabled: 1}, tween: 200ms}

Values marked * are mid-tween. Frame length, default duration and easing
come from motion.yaml. With --events, animator lifecycle signals are
printed to stderr as they are emitted.`,
		Usage: "motion trace [--events] <scenario.yaml>",
		Run:   runTrace,
	})
}

func runTrace(args []string) error {
	var path string
	events := false
	for _, arg := range args {
		switch {
		case arg == "--events":
			events = true
		case path == "":
			path = arg
		default:
			return fmt.Errorf("unexpected argument %q", arg)
		}
	}
	if path == "" {
		return fmt.Errorf("trace requires a scenario file")
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	s, err := scenario.Load(path)
	if err != nil {
		return err
	}

	if events {
		hookLifecycle(stderr)
		defer capitan.Shutdown()
	}

	opts := scenario.Options{
		Frame:    cfg.Frame,
		Duration: cfg.Duration,
		Easing:   cfg.Easing,
		Theme:    cfg.Theme,
	}
	return s.Run(opts, func(f scenario.Frame) {
		fmt.Fprintln(stdout, f.String())
	})
}

// hookLifecycle prints animator and theme signals to w. Hooks run on
// capitan's goroutines, so writes are serialized.
func hookLifecycle(w io.Writer) {
	var mu sync.Mutex
	printf := func(format string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(w, format, args...)
	}

	capitan.Hook(animation.AnimatorBegan, func(_ context.Context, e *capitan.Event) {
		name, _ := animation.KeyFastener.From(e)
		d, _ := animation.KeyDuration.From(e)
		printf("[began] %s (%s)\n", name, d)
	})
	capitan.Hook(animation.AnimatorEnded, func(_ context.Context, e *capitan.Event) {
		name, _ := animation.KeyFastener.From(e)
		printf("[ended] %s\n", name)
	})
	capitan.Hook(animation.AnimatorInterrupted, func(_ context.Context, e *capitan.Event) {
		name, _ := animation.KeyFastener.From(e)
		printf("[interrupted] %s\n", name)
	})
	capitan.Hook(theme.ThemeApplied, func(_ context.Context, e *capitan.Event) {
		name, _ := animation.KeyFastener.From(e)
		look, _ := theme.KeyLook.From(e)
		th, _ := theme.KeyTheme.From(e)
		printf("[theme] %s <- %s.%s\n", name, th, look)
	})
}
