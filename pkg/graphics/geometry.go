package graphics

// Offset represents a 2D point or displacement in logical pixels.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// LerpOffset linearly interpolates between two offsets.
func LerpOffset(a, b Offset, t float64) Offset {
	return Offset{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
