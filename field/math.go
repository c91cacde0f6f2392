package field

import "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2          { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2          { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(s float64) Vec2       { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) AddScalar(s float64) Vec2 { return Vec2{v.X + s, v.Y + s} }

func (v Vec2) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Rotate rotates v counter-clockwise by rad.
func (v Vec2) Rotate(rad float64) Vec2 {
	s := math.Sin(rad)
	c := math.Cos(rad)
	return Vec2{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

// Floor returns the lattice cell containing v.
func (v Vec2) Floor() Vec2 { return Vec2{math.Floor(v.X), math.Floor(v.Y)} }

// Fract returns the position of v inside its lattice cell, in [0,1).
func (v Vec2) Fract() Vec2 { return Vec2{fract(v.X), fract(v.Y)} }

func (v Vec2) finite() bool { return isFinite(v.X) && isFinite(v.Y) }

func fract(x float64) float64 { return x - math.Floor(x) }

func mix(a, b, t float64) float64 { return a*(1-t) + b*t }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// smoothstep is the Hermite step used by shading languages. edge0 may be
// greater than edge1, which inverts the ramp.
func smoothstep(edge0, edge1, x float64) float64 {
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
