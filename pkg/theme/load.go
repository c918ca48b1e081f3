package theme

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/errors"
)

// SchemaVersion is the theme file version written by Marshal. Files with
// any v1 version load.
const SchemaVersion = "v1.0.0"

type themeFile struct {
	Name       string               `yaml:"name"`
	Version    string               `yaml:"version"`
	Brightness string               `yaml:"brightness,omitempty"`
	Looks      map[string]lookEntry `yaml:"looks"`
}

// lookEntry is either a bare scalar (the base value) or a mapping with base
// and moods.
type lookEntry struct {
	Base  any          `yaml:"base,omitempty"`
	Moods map[Mood]any `yaml:"moods,omitempty"`
}

func (e *lookEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&e.Base)
	}
	type plain lookEntry
	return node.Decode((*plain)(e))
}

func (e lookEntry) MarshalYAML() (any, error) {
	if len(e.Moods) == 0 {
		return e.Base, nil
	}
	type plain lookEntry
	return plain(e), nil
}

// Parse decodes a theme from YAML. The version must be a valid v1 semantic
// version; every predefined look must coerce to its kind.
func Parse(data []byte) (*Theme, error) {
	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, configError("theme.Parse", fmt.Errorf("failed to parse theme: %w", err))
	}
	if f.Name == "" {
		return nil, configError("theme.Parse", fmt.Errorf("theme has no name"))
	}
	if !semver.IsValid(f.Version) {
		return nil, configError("theme.Parse", fmt.Errorf("theme %q: invalid version %q", f.Name, f.Version))
	}
	if major := semver.Major(f.Version); major != "v1" {
		return nil, configError("theme.Parse", fmt.Errorf("theme %q: unsupported version %s", f.Name, major))
	}

	t := New(f.Name)
	t.Version = f.Version
	switch f.Brightness {
	case "", "light":
	case "dark":
		t.Brightness = BrightnessDark
	default:
		return nil, configError("theme.Parse", fmt.Errorf("theme %q: unknown brightness %q", f.Name, f.Brightness))
	}
	for name, e := range f.Looks {
		entry := t.entry(name)
		entry.Base = e.Base
		if len(e.Moods) > 0 {
			entry.Moods = e.Moods
		}
	}
	if err := t.Validate(); err != nil {
		return nil, configError("theme.Parse", fmt.Errorf("theme %q: %w", f.Name, err))
	}
	return t, nil
}

// LoadFile reads and parses a theme file.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configError("theme.LoadFile", fmt.Errorf("failed to read %s: %w", path, err))
	}
	return Parse(data)
}

// Marshal encodes a theme as YAML. Looks without moods are written as bare
// values.
func Marshal(t *Theme) ([]byte, error) {
	f := themeFile{
		Name:    t.Name,
		Version: t.Version,
		Looks:   make(map[string]lookEntry, len(t.entries)),
	}
	if t.Brightness == BrightnessDark {
		f.Brightness = "dark"
	}
	for _, name := range slices.Sorted(maps.Keys(t.entries)) {
		e := t.entries[name]
		f.Looks[name] = lookEntry{Base: marshalValue(e.Base), Moods: marshalMoods(e.Moods)}
	}
	return yaml.Marshal(f)
}

// marshalValue writes fmt.Stringer values (colors) in their parseable form.
func marshalValue(v any) any {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return v
}

func marshalMoods(moods map[Mood]any) map[Mood]any {
	if len(moods) == 0 {
		return nil
	}
	out := make(map[Mood]any, len(moods))
	for m, v := range moods {
		out[m] = marshalValue(v)
	}
	return out
}

func configError(op string, err error) *errors.MotionError {
	return &errors.MotionError{Op: op, Kind: errors.KindConfig, Err: err}
}
