package automata

import "math"

// Vector is a 2D geometric primitive. It exists only to support the
// out-of-scope automaton layout/visualization surface named in
// SPEC_FULL.md's Library surface — nothing in the matching core uses it.
type Vector struct {
	X, Y float64
}

// NewVector returns the vector (x, y).
func NewVector(x, y float64) Vector { return Vector{X: x, Y: y} }

// Add returns v + other.
func (v Vector) Add(other Vector) Vector { return Vector{X: v.X + other.X, Y: v.Y + other.Y} }

// Sub returns v - other.
func (v Vector) Sub(other Vector) Vector { return Vector{X: v.X - other.X, Y: v.Y - other.Y} }

// Scale returns v scaled by k.
func (v Vector) Scale(k float64) Vector { return Vector{X: v.X * k, Y: v.Y * k} }

// Length returns v's Euclidean norm.
func (v Vector) Length() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns v scaled to unit length. The zero vector normalizes to
// itself.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}
