package scenario

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/constraint"
	"github.com/go-drift/motion/pkg/theme"
)

// DefaultSettleLimit bounds scenarios that run until settled.
const DefaultSettleLimit = 10 * time.Second

// Options are run settings resolved from project configuration.
type Options struct {
	Frame    time.Duration
	Duration time.Duration
	Easing   animation.Easing
	// Theme is "light", "dark" or a theme file path.
	Theme string
	// SettleLimit bounds runs without a length. Zero uses
	// DefaultSettleLimit.
	SettleLimit time.Duration
}

// Sample is one animator's value in a frame.
type Sample struct {
	Name   string
	Value  float64
	Status animation.Status
}

// Frame is the scenario after one step.
type Frame struct {
	Time    time.Duration
	Samples []Sample
}

// String formats the frame as one trace line.
func (f Frame) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%8s", f.Time)
	for _, s := range f.Samples {
		fmt.Fprintf(&b, "  %s=%s", s.Name, formatValue(s.Value))
		if s.Status != animation.StatusIdle {
			b.WriteString("*")
		}
	}
	return b.String()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
}

type node = theme.ThemeConstraintAnimator[float64]

// Run is a started scenario.
type Run struct {
	scenario  *Scenario
	graph     *animation.Graph
	solver    *constraint.Table
	theme     *theme.Theme
	animators map[string]*node
	order     []*node
	next      int
}

// Start builds the scenario's animators, applies its theme and returns a run
// positioned before the first frame.
func (s *Scenario) Start(opts Options) (*Run, error) {
	th, err := s.loadTheme(opts.Theme)
	if err != nil {
		return nil, err
	}
	r := &Run{
		scenario:  s,
		graph:     animation.NewGraph(),
		solver:    constraint.NewTable(),
		theme:     th,
		animators: make(map[string]*node, len(s.Animators)),
	}

	for _, def := range s.Animators {
		a := theme.NewThemeConstraintAnimator(def.Name, animation.Float64, def.Initial)
		a.Duration = opts.Duration
		if def.Duration > 0 {
			a.Duration = def.Duration
		}
		a.Easing = opts.Easing
		if def.Easing != "" {
			e, err := animation.ParseEasing(def.Easing)
			if err != nil {
				return nil, fmt.Errorf("animator %q: %w", def.Name, err)
			}
			a.Easing = e
		}
		if _, err := r.graph.Add(a); err != nil {
			return nil, fmt.Errorf("animator %q: %w", def.Name, err)
		}
		r.animators[def.Name] = a
		r.order = append(r.order, a)
	}

	for _, def := range s.Animators {
		a := r.animators[def.Name]
		if def.Parent != "" {
			if err := a.Attach(r.animators[def.Parent].Animator); err != nil {
				return nil, fmt.Errorf("animator %q: %w", def.Name, err)
			}
		}
		a.ApplyTheme(th, nil, nil)
		if def.Look != "" {
			a.SetLook(floatLook(def.Look), nil)
		}
		a.SetConstrained(def.Constrained)
		if def.Constraining {
			a.Constrain(r.solver)
		}
	}

	for _, rel := range s.Relations {
		scale := 1.0
		if rel.Scale != nil {
			scale = *rel.Scale
		}
		r.solver.Relate(r.animators[rel.Dst], r.animators[rel.Src], scale, rel.Offset)
	}
	return r, nil
}

func (s *Scenario) loadTheme(fallback string) (*theme.Theme, error) {
	ref := s.Theme
	if ref == "" {
		ref = fallback
	} else if ref != "light" && ref != "dark" && !filepath.IsAbs(ref) {
		ref = filepath.Join(s.dir, ref)
	}
	switch ref {
	case "", "light":
		return theme.DefaultLightTheme(), nil
	case "dark":
		return theme.DefaultDarkTheme(), nil
	}
	return theme.LoadFile(ref)
}

func floatLook(name string) theme.Look[float64] {
	for _, look := range []theme.Look[float64]{theme.Opacity, theme.CornerRadius, theme.Spacing} {
		if look.Name == name {
			return look
		}
	}
	return theme.NewLook(name, animation.Float64)
}

// Graph returns the run's graph.
func (r *Run) Graph() *animation.Graph { return r.graph }

// Animator returns the named animator.
func (r *Run) Animator(name string) *theme.ThemeConstraintAnimator[float64] {
	return r.animators[name]
}

// Step fires every event due by t, steps the graph to t and samples every
// animator.
func (r *Run) Step(t time.Duration) Frame {
	events := r.scenario.Events
	for r.next < len(events) && events[r.next].At <= t {
		r.fire(events[r.next])
		r.next++
	}
	r.graph.Step(t)

	f := Frame{Time: t, Samples: make([]Sample, 0, len(r.order))}
	for _, a := range r.order {
		f.Samples = append(f.Samples, Sample{Name: a.Name, Value: a.Value(), Status: a.Status()})
	}
	return f
}

func (r *Run) fire(e Event) {
	tween := normalizeTween(e.Tween)
	if e.Mood != nil {
		mood := make(theme.MoodVector, len(e.Mood))
		for m, w := range e.Mood {
			mood[theme.Mood(m)] = w
		}
		targets := r.order
		if a, ok := r.animators[e.Animator]; ok {
			targets = []*node{a}
		}
		for _, a := range targets {
			a.ApplyTheme(r.theme, mood, tween)
		}
		return
	}

	a := r.animators[e.Animator]
	switch {
	case e.Detach:
		a.Detach()
	case e.Affinity != "":
		affinity, _ := animation.ParseAffinity(e.Affinity)
		a.SetAffinity(affinity)
	}
	if e.State != nil {
		a.SetState(*e.State, tween)
	}
}

// normalizeTween reads bare numbers as milliseconds and duration strings
// as durations. Anything else passes through to animation.ForTween.
func normalizeTween(v any) any {
	switch n := v.(type) {
	case string:
		if d, err := time.ParseDuration(n); err == nil {
			return d
		}
	case int:
		return time.Duration(n) * time.Millisecond
	case float64:
		return time.Duration(n * float64(time.Millisecond))
	}
	return v
}

// Run steps the scenario from time zero, calling fn with every frame. A
// scenario without a length runs until its last event has fired and the
// graph has settled, failing if that takes longer than the settle limit.
func (s *Scenario) Run(opts Options, fn func(Frame)) error {
	r, err := s.Start(opts)
	if err != nil {
		return err
	}
	frame := s.Frame
	if frame == 0 {
		frame = opts.Frame
	}
	if frame <= 0 {
		return fmt.Errorf("frame length must be positive")
	}

	limit, settle := s.Length, s.Length == 0
	if settle {
		limit = opts.SettleLimit
		if limit == 0 {
			limit = DefaultSettleLimit
		}
	}
	var lastEvent time.Duration
	if n := len(s.Events); n > 0 {
		lastEvent = s.Events[n-1].At
	}

	for t := time.Duration(0); t <= limit; t += frame {
		fn(r.Step(t))
		if settle && t >= lastEvent && !r.graph.Pending() {
			return nil
		}
	}
	if settle {
		return fmt.Errorf("scenario did not settle within %s", limit)
	}
	return nil
}
