package systems

import "gonum.org/v1/gonum/spatial/r2"

// NewBounds returns the world rectangle [0, width] × [0, height].
func NewBounds(width, height float64) r2.Box {
	return r2.Box{Max: r2.Vec{X: width, Y: height}}
}

// Clamp moves p into b, independently per axis.
func Clamp(p r2.Vec, b r2.Box) r2.Vec {
	return r2.Vec{
		X: clamp(p.X, b.Min.X, b.Max.X),
		Y: clamp(p.Y, b.Min.Y, b.Max.Y),
	}
}

// InBounds reports whether p lies inside b, edges included.
func InBounds(p r2.Vec, b r2.Box) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
