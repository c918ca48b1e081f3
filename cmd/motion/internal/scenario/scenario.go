// Package scenario describes and runs scripted animator timelines.
//
// A scenario declares float animators (optionally inheriting from one
// another, following theme looks or linked by constraint equalities) and a
// list of timed events. Running it steps a graph at a fixed frame length
// and reports every animator's value per frame.
package scenario

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/animation"
)

// Scenario is a parsed scenario file.
type Scenario struct {
	// Frame overrides the configured frame length.
	Frame time.Duration `yaml:"frame,omitempty"`
	// Length is how long to run. Zero runs until the graph settles.
	Length time.Duration `yaml:"length,omitempty"`
	// Theme is "light", "dark" or a theme file path relative to the
	// scenario. Empty uses the configured theme.
	Theme     string     `yaml:"theme,omitempty"`
	Animators []Animator `yaml:"animators"`
	Relations []Relation `yaml:"relations,omitempty"`
	Events    []Event    `yaml:"events,omitempty"`

	dir string
}

// Animator declares one float animator.
type Animator struct {
	Name     string        `yaml:"name"`
	Initial  float64       `yaml:"initial,omitempty"`
	Parent   string        `yaml:"parent,omitempty"`
	Look     string        `yaml:"look,omitempty"`
	Duration time.Duration `yaml:"duration,omitempty"`
	Easing   string        `yaml:"easing,omitempty"`
	// Constraining pushes the animator's value into the scenario's solver.
	Constraining bool `yaml:"constraining,omitempty"`
	// Constrained lets solver solutions set the animator's state.
	Constrained bool `yaml:"constrained,omitempty"`
}

// Relation makes Dst follow Scale·Src + Offset.
type Relation struct {
	Dst    string   `yaml:"dst"`
	Src    string   `yaml:"src"`
	Scale  *float64 `yaml:"scale,omitempty"`
	Offset float64  `yaml:"offset,omitempty"`
}

// Event is one scripted action. Exactly one of State, Mood, Affinity or
// Detach applies per event; Tween accompanies State and Mood.
type Event struct {
	At       time.Duration      `yaml:"at"`
	Animator string             `yaml:"animator,omitempty"`
	State    *float64           `yaml:"state,omitempty"`
	Tween    any                `yaml:"tween,omitempty"`
	Affinity string             `yaml:"affinity,omitempty"`
	Mood     map[string]float64 `yaml:"mood,omitempty"`
	Detach   bool               `yaml:"detach,omitempty"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	slices.SortStableFunc(s.Events, func(a, b Event) int {
		return cmp.Compare(a.At, b.At)
	})
	return &s, nil
}

func (s *Scenario) validate() error {
	if len(s.Animators) == 0 {
		return fmt.Errorf("scenario declares no animators")
	}
	if s.Frame < 0 || s.Length < 0 {
		return fmt.Errorf("frame and length must not be negative")
	}
	names := make(map[string]bool, len(s.Animators))
	for _, a := range s.Animators {
		if a.Name == "" {
			return fmt.Errorf("animator has no name")
		}
		if names[a.Name] {
			return fmt.Errorf("duplicate animator %q", a.Name)
		}
		names[a.Name] = true
	}
	for _, a := range s.Animators {
		if a.Parent != "" && !names[a.Parent] {
			return fmt.Errorf("animator %q: unknown parent %q", a.Name, a.Parent)
		}
	}
	for _, r := range s.Relations {
		if !names[r.Dst] || !names[r.Src] {
			return fmt.Errorf("relation %s = %s: unknown animator", r.Dst, r.Src)
		}
	}
	for i, e := range s.Events {
		if e.At < 0 {
			return fmt.Errorf("event %d: negative time", i)
		}
		if e.Mood != nil {
			continue
		}
		if !names[e.Animator] {
			return fmt.Errorf("event %d: unknown animator %q", i, e.Animator)
		}
		if e.Affinity != "" {
			if _, err := animation.ParseAffinity(e.Affinity); err != nil {
				return fmt.Errorf("event %d: %w", i, err)
			}
		}
		if e.State == nil && e.Affinity == "" && !e.Detach {
			return fmt.Errorf("event %d: nothing to do", i)
		}
	}
	return nil
}
