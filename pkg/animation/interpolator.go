package animation

// Interpolator maps progress to a value between two endpoints.
//
// At(0) returns From and At(1) returns To exactly, whatever the kind's Lerp
// would compute, so tweens always land on their targets. At is pure: the
// same u always yields an equal value.
type Interpolator[T any] struct {
	kind Kind[T]
	from T
	to   T
}

// NewInterpolator returns an interpolator from from to to blended by kind.
func NewInterpolator[T any](kind Kind[T], from, to T) Interpolator[T] {
	return Interpolator[T]{kind: kind, from: from, to: to}
}

// At returns the value at progress u.
func (ip Interpolator[T]) At(u float64) T {
	switch {
	case u == 0:
		return ip.from
	case u == 1:
		return ip.to
	case ip.kind == nil:
		if u < 1 {
			return ip.from
		}
		return ip.to
	}
	return ip.kind.Lerp(ip.from, ip.to, u)
}

// From returns the start value.
func (ip Interpolator[T]) From() T { return ip.from }

// To returns the end value.
func (ip Interpolator[T]) To() T { return ip.to }

// Kind returns the blend used between the endpoints.
func (ip Interpolator[T]) Kind() Kind[T] { return ip.kind }

// Range returns an interpolator with the same blend and new endpoints.
func (ip Interpolator[T]) Range(from, to T) Interpolator[T] {
	return Interpolator[T]{kind: ip.kind, from: from, to: to}
}

// Equal reports whether both interpolators have equal endpoints.
func (ip Interpolator[T]) Equal(other Interpolator[T]) bool {
	kind := ip.kind
	if kind == nil {
		kind = other.kind
	}
	if kind == nil {
		return false
	}
	return kind.Equal(ip.from, other.from) && kind.Equal(ip.to, other.to)
}
