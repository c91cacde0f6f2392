package field

import "math"

const (
	// MinStarDistance caps the 1/d glow at a star's center.
	MinStarDistance = 0.01

	glowStrength = 0.05
	raySharpness = 1000.0
	diagonalRays = 0.3
	maxFlare     = 0.6

	// starPeak is the largest value star can return: full glow at
	// MinStarDistance plus both ray sets at full flare.
	starPeak = glowStrength/MinStarDistance + maxFlare*(1+diagonalRays)
	// maxTwinkle is the top of the twinkle range.
	maxTwinkle = 1.5
	// maxTint is the largest tint channel (blue at size 1).
	maxTint = 2 + 0.2
)

var (
	tintFreq = RGB{R: 0.2, G: 0.3, B: 0.9}
	tintBias = RGB{R: 0.4, G: 0.4, B: 0.2}
)

// star returns the brightness of a single star at offset uv from its center.
// flare scales the cross-shaped rays; 0 disables them.
func star(uv Vec2, flare float64) float64 {
	d := uv.Len()
	m := glowStrength / math.Max(d, MinStarDistance)

	m += rays(uv) * flare
	m += rays(uv.Rotate(math.Pi/4)) * diagonalRays * flare

	return m * smoothstep(1.0, 0.2, d)
}

func rays(uv Vec2) float64 {
	return math.Max(0, 1-math.Abs(uv.X*uv.Y*raySharpness))
}

// StarLayer sums the stars of the lattice cell containing uv and its eight
// neighbors. A star's glow reaches past its own cell, so the 3x3 kernel is
// needed to avoid seams at cell edges.
func StarLayer(uv Vec2, time float64) RGB {
	var col RGB

	gv := uv.Fract().AddScalar(-0.5)
	id := uv.Floor()

	for y := -1; y <= 1; y++ {
		for x := -1; x <= 1; x++ {
			offs := V2(float64(x), float64(y))

			n := Hash21(id.Add(offs))
			size := fract(n * 345.32)

			p := Vec2{
				X: gv.X - offs.X - n + 0.5,
				Y: gv.Y - offs.Y - fract(n*34) + 0.5,
			}
			s := star(p, smoothstep(0.9, 1.0, size)*maxFlare)
			s *= twinkle(n, time)

			col = col.Add(starTint(n, size).Scale(s * size))
		}
	}

	return col
}

func starTint(n, size float64) RGB {
	h := fract(n * 2345.2)
	c := RGB{
		R: math.Sin(tintFreq.R*h*123.2)*0.5 + 0.5,
		G: math.Sin(tintFreq.G*h*123.2)*0.5 + 0.5,
		B: math.Sin(tintFreq.B*h*123.2)*0.5 + 0.5,
	}
	return RGB{
		R: c.R + tintBias.R,
		G: c.G*0.25 + tintBias.G,
		B: c.B*(1+size) + tintBias.B,
	}
}

// twinkle oscillates in [0.5, 1.5] with a per-star phase.
func twinkle(n, time float64) float64 {
	return math.Sin(time*3+n*2*math.Pi)*0.5 + 1
}
