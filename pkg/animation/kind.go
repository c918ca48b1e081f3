package animation

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/graphics"
)

// Kind describes how values of T compare, blend and arrive from external
// sources such as theme tables. One Animator implementation serves every
// value type through its Kind.
type Kind[T any] interface {
	// Equal reports value equality. Animators use it to decide whether a
	// new state actually differs, so it must compare structure, not identity.
	Equal(a, b T) bool
	// Lerp blends a toward b by u. u is usually in [0, 1] but may overshoot.
	Lerp(a, b T, u float64) T
	// Coerce converts an externally supplied value (a theme entry, a solver
	// result, a decoded init record) to T.
	Coerce(v any) (T, error)
}

// Numeric is implemented by kinds whose values map to a single number. Only
// numeric kinds can participate in constraint solving.
type Numeric[T any] interface {
	Float(v T) (float64, error)
	FromFloat(f float64) T
}

// Copier is implemented by kinds whose values share memory (slices, maps,
// pointers). Inherited animators copy through it so parent and child never
// alias mutable state.
type Copier[T any] interface {
	Copy(v T) T
}

// Float64 is the kind for plain numbers.
var Float64 Kind[float64] = float64Kind{}

// Color is the kind for ARGB colors. Colors coerce from graphics.Color,
// uint32, hex strings and CSS color names.
var Color Kind[graphics.Color] = colorKind{}

// Offset is the kind for 2D offsets.
var Offset Kind[graphics.Offset] = offsetKind{}

type float64Kind struct{}

func (float64Kind) Equal(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func (float64Kind) Lerp(a, b float64, u float64) float64 {
	return a + (b-a)*u
}

// Coerce converts numbers and numeric strings. nil converts to 0; every
// other type fails.
func (float64Kind) Coerce(v any) (float64, error) {
	return toFloat(v)
}

func (float64Kind) Float(v float64) (float64, error) { return v, nil }
func (float64Kind) FromFloat(f float64) float64     { return f }

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, &errors.CoercionError{Target: "float64", Value: v, Err: err}
		}
		return f, nil
	}
	return 0, &errors.CoercionError{Target: "float64", Value: v}
}

type colorKind struct{}

func (colorKind) Equal(a, b graphics.Color) bool { return a == b }

func (colorKind) Lerp(a, b graphics.Color, u float64) graphics.Color {
	return graphics.LerpColor(a, b, u)
}

func (colorKind) Coerce(v any) (graphics.Color, error) {
	switch c := v.(type) {
	case graphics.Color:
		return c, nil
	case uint32:
		return graphics.Color(c), nil
	case int:
		if c >= 0 && uint64(c) <= math.MaxUint32 {
			return graphics.Color(c), nil
		}
	case string:
		parsed, err := graphics.ParseColor(c)
		if err != nil {
			return 0, &errors.CoercionError{Target: "graphics.Color", Value: v, Err: err}
		}
		return parsed, nil
	}
	return 0, &errors.CoercionError{Target: "graphics.Color", Value: v}
}

type offsetKind struct{}

func (offsetKind) Equal(a, b graphics.Offset) bool { return a == b }

func (offsetKind) Lerp(a, b graphics.Offset, u float64) graphics.Offset {
	return graphics.LerpOffset(a, b, u)
}

// Coerce accepts an Offset, a two-element numeric list, or a map with x and
// y keys (as decoded from YAML).
func (offsetKind) Coerce(v any) (graphics.Offset, error) {
	switch o := v.(type) {
	case graphics.Offset:
		return o, nil
	case []any:
		if len(o) == 2 {
			x, errX := toFloat(o[0])
			y, errY := toFloat(o[1])
			if errX == nil && errY == nil {
				return graphics.Offset{X: x, Y: y}, nil
			}
		}
	case map[string]any:
		x, errX := toFloat(o["x"])
		y, errY := toFloat(o["y"])
		if errX == nil && errY == nil && len(o) <= 2 {
			return graphics.Offset{X: x, Y: y}, nil
		}
	}
	return graphics.Offset{}, &errors.CoercionError{Target: "graphics.Offset", Value: v}
}

// Step is a kind for values that cannot blend (strings, enums, font names).
// The interpolated value holds the start until progress reaches 1.
type Step[T comparable] struct{}

func (Step[T]) Equal(a, b T) bool { return a == b }

func (Step[T]) Lerp(a, b T, u float64) T {
	if u >= 1 {
		return b
	}
	return a
}

func (Step[T]) Coerce(v any) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var zero T
	return zero, &errors.CoercionError{Target: fmt.Sprintf("%T", zero), Value: v}
}

// Deep is a Step-like kind for composite values compared with
// reflect.DeepEqual.
type Deep[T any] struct{}

func (Deep[T]) Equal(a, b T) bool { return reflect.DeepEqual(a, b) }

func (Deep[T]) Lerp(a, b T, u float64) T {
	if u >= 1 {
		return b
	}
	return a
}

// Copy returns a deep copy of v. Pointers, slices, maps, interfaces and
// exported struct fields are duplicated; unexported fields, map keys,
// channels and funcs are shared. v must not contain pointer cycles.
func (Deep[T]) Copy(v T) T {
	dst := reflect.New(reflect.TypeOf((*T)(nil)).Elem())
	deepCopy(dst.Elem(), reflect.ValueOf(&v).Elem())
	return *dst.Interface().(*T)
}

func deepCopy(dst, src reflect.Value) {
	switch src.Kind() {
	case reflect.Pointer:
		if src.IsNil() {
			return
		}
		p := reflect.New(src.Elem().Type())
		deepCopy(p.Elem(), src.Elem())
		dst.Set(p)
	case reflect.Interface:
		if src.IsNil() {
			return
		}
		e := reflect.New(src.Elem().Type()).Elem()
		deepCopy(e, src.Elem())
		dst.Set(e)
	case reflect.Slice:
		if src.IsNil() {
			return
		}
		s := reflect.MakeSlice(src.Type(), src.Len(), src.Len())
		for i := range src.Len() {
			deepCopy(s.Index(i), src.Index(i))
		}
		dst.Set(s)
	case reflect.Array:
		for i := range src.Len() {
			deepCopy(dst.Index(i), src.Index(i))
		}
	case reflect.Map:
		if src.IsNil() {
			return
		}
		m := reflect.MakeMapWithSize(src.Type(), src.Len())
		for iter := src.MapRange(); iter.Next(); {
			val := reflect.New(iter.Value().Type()).Elem()
			deepCopy(val, iter.Value())
			m.SetMapIndex(iter.Key(), val)
		}
		dst.Set(m)
	case reflect.Struct:
		dst.Set(src)
		for i := range src.NumField() {
			if dst.Field(i).CanSet() {
				deepCopy(dst.Field(i), src.Field(i))
			}
		}
	default:
		dst.Set(src)
	}
}

func (Deep[T]) Coerce(v any) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var zero T
	return zero, &errors.CoercionError{Target: reflect.TypeOf((*T)(nil)).Elem().String(), Value: v}
}

// ToFloat converts v to a number through a numeric kind. Non-numeric kinds
// fail with a *errors.CoercionError.
func ToFloat[T any](kind Kind[T], v T) (float64, error) {
	n, ok := kind.(Numeric[T])
	if !ok {
		return 0, &errors.CoercionError{Target: "float64", Value: v}
	}
	return n.Float(v)
}

// FromFloat converts a number to T through a numeric kind, falling back to
// Coerce for kinds that are not Numeric.
func FromFloat[T any](kind Kind[T], f float64) (T, error) {
	if n, ok := kind.(Numeric[T]); ok {
		return n.FromFloat(f), nil
	}
	return kind.Coerce(f)
}

func copyValue[T any](kind Kind[T], v T) T {
	if c, ok := kind.(Copier[T]); ok {
		return c.Copy(v)
	}
	return v
}
