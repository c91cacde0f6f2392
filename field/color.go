package field

// RGB is a linear color with unbounded float channels.
type RGB struct {
	R, G, B float64
}

func (c RGB) Add(o RGB) RGB       { return RGB{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c RGB) Scale(s float64) RGB { return RGB{c.R * s, c.G * s, c.B * s} }

// Max returns the brightest channel.
func (c RGB) Max() float64 {
	m := c.R
	if c.G > m {
		m = c.G
	}
	if c.B > m {
		m = c.B
	}
	return m
}

func (c RGB) clamp(lo, hi float64) RGB {
	return RGB{clamp(c.R, lo, hi), clamp(c.G, lo, hi), clamp(c.B, lo, hi)}
}
