package field

// Hash21 maps a lattice coordinate to a pseudo-random value in [0,1).
//
// The formula is fixed so golden values stay portable:
//
//	p  = fract(p * (123.34, 456.21))
//	p += dot(p, p + 45.32)
//	h  = fract(p.x * p.y)
//
// It has no cryptographic properties.
func Hash21(p Vec2) float64 {
	x := fract(p.X * 123.34)
	y := fract(p.Y * 456.21)
	d := x*(x+45.32) + y*(y+45.32)
	x += d
	y += d
	return fract(x * y)
}
