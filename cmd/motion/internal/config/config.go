// Package config loads the optional motion.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/animation"
)

// FileName is the project configuration file name.
const FileName = "motion.yaml"

// Defaults used when motion.yaml leaves a value unset.
const (
	DefaultFrame    = 16 * time.Millisecond
	DefaultDuration = animation.DefaultDuration
	DefaultEasing   = "ease-in-out"
)

// Config represents the optional motion.yaml configuration.
type Config struct {
	Frame    time.Duration  `yaml:"frame,omitempty"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Theme    string         `yaml:"theme,omitempty"`
}

// DefaultsConfig holds animator defaults.
type DefaultsConfig struct {
	Duration time.Duration `yaml:"duration,omitempty"`
	Easing   string        `yaml:"easing,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root        string
	ModulePath  string
	ProjectName string
	Frame       time.Duration
	Duration    time.Duration
	Easing      animation.Easing
	// Theme is "light", "dark" or an absolute path to a theme file.
	Theme string
}

// LoadOptional reads motion.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads motion.yaml (if present) and resolves defaults. dir need not
// be a Go module; when it is, the module path names the project.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	modulePath := modulePath(dir)

	frame := cfg.Frame
	if frame == 0 {
		frame = DefaultFrame
	}
	if frame < 0 {
		return nil, fmt.Errorf("frame must be positive (got %s)", frame)
	}

	duration := cfg.Defaults.Duration
	if duration == 0 {
		duration = DefaultDuration
	}
	if duration < 0 {
		return nil, fmt.Errorf("defaults.duration must be positive (got %s)", duration)
	}

	tag := strings.TrimSpace(cfg.Defaults.Easing)
	if tag == "" {
		tag = DefaultEasing
	}
	easing, err := animation.ParseEasing(tag)
	if err != nil {
		return nil, fmt.Errorf("defaults.easing: %w", err)
	}

	themeRef := strings.TrimSpace(cfg.Theme)
	switch themeRef {
	case "":
		themeRef = "light"
	case "light", "dark":
	default:
		if !filepath.IsAbs(themeRef) {
			themeRef = filepath.Join(dir, themeRef)
		}
	}

	return &Resolved{
		Root:        dir,
		ModulePath:  modulePath,
		ProjectName: projectName(modulePath, dir),
		Frame:       frame,
		Duration:    duration,
		Easing:      easing,
		Theme:       themeRef,
	}, nil
}

// FindProjectRoot walks up from dir to the nearest directory holding
// motion.yaml or go.mod. It returns dir itself when neither is found.
func FindProjectRoot(dir string) string {
	for d := dir; ; {
		for _, marker := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(d, marker)); err == nil {
				return d
			}
		}
		parent := filepath.Dir(d)
		if parent == d {
			return dir
		}
		d = parent
	}
}

func modulePath(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return ""
	}
	return modfile.ModulePath(data)
}

func projectName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
			parts := strings.Split(prefix, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "motion"
	}
	return base
}
