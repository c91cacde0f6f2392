package field

import (
	"fmt"
	"math"
)

const (
	// NumLayers is the number of depth layers summed per pixel.
	NumLayers = 4

	// Drift is the rate, per unit of time, of both the frame rotation (in
	// radians) and the layer depth cycle.
	Drift = 0.02

	// Period is the time after which every layer is back at the same depth.
	Period = 1 / Drift

	// MaxChannel bounds every output channel. The unclamped layer sum goes
	// past it near bright star centers; ComputePixel clamps.
	MaxChannel = 5.0

	// RawChannelBound bounds every channel of the unclamped layer sum: nine
	// stars per layer, each at most starPeak*maxTwinkle*maxTint, weighted by
	// fades that sum to less than maxFadeSum.
	RawChannelBound = 9 * starPeak * maxTwinkle * maxTint * maxFadeSum

	// Fade is at most depth, and four depths spaced 1/4 apart sum to less
	// than 2.5.
	maxFadeSum = 2.5

	nearScale   = 0.5
	farScale    = 20.0
	layerOffset = 453.2
	fadeOutFrom = 0.9
)

// Resolution is the output raster size in pixels.
type Resolution struct {
	Width  int
	Height int
}

func (r Resolution) String() string { return fmt.Sprintf("%dx%d", r.Width, r.Height) }

// Validate reports ErrInvalidConfiguration for rasters with no area.
func (r Resolution) Validate() error {
	if r.Height <= 0 {
		return fmt.Errorf("%w: height %d", ErrInvalidConfiguration, r.Height)
	}
	if r.Width <= 0 {
		return fmt.Errorf("%w: width %d", ErrInvalidConfiguration, r.Width)
	}
	return nil
}

// Layer describes one depth band at a point in time.
type Layer struct {
	Index  int
	Offset float64 // position of the layer in the cycle, k/NumLayers
	Depth  float64 // fract(Offset + time*Drift)
	Scale  float64 // lattice scale; large is far
	Fade   float64 // brightness multiplier, 0 at both ends of the cycle
}

// Layers returns the state of every layer at time.
func Layers(time float64) [NumLayers]Layer {
	var out [NumLayers]Layer
	t := time * Drift
	for k := range out {
		i := float64(k) / NumLayers
		depth := fract(i + t)
		out[k] = Layer{
			Index:  k,
			Offset: i,
			Depth:  depth,
			Scale:  mix(farScale, nearScale, depth),
			Fade:   depth * smoothstep(1.0, fadeOutFrom, depth),
		}
	}
	return out
}

// LayersAt is Layers for untrusted input. A non-finite time is
// ErrInvalidInput.
func LayersAt(time float64) ([NumLayers]Layer, error) {
	if !isFinite(time) {
		return [NumLayers]Layer{}, fmt.Errorf("%w: time %v", ErrInvalidInput, time)
	}
	return Layers(time), nil
}

// UV maps a fragment coordinate to the rotated, aspect-correct plane the
// layers are sampled from. The raster center maps to the origin and one unit
// spans the raster height.
func UV(coord Vec2, res Resolution, time float64) Vec2 {
	return newProjection(res, time).uv(coord)
}

// projection caches the per-frame part of UV.
type projection struct {
	w, h float64
	s, c float64
}

func newProjection(res Resolution, time float64) projection {
	a := time * Drift
	return projection{
		w: float64(res.Width),
		h: float64(res.Height),
		s: math.Sin(a),
		c: math.Cos(a),
	}
}

func (p projection) uv(coord Vec2) Vec2 {
	x := (coord.X - 0.5*p.w) / p.h
	y := (coord.Y - 0.5*p.h) / p.h
	return Vec2{
		X: x*p.c - y*p.s,
		Y: x*p.s + y*p.c,
	}
}

// ComputePixel returns the color at fragment coordinate coord.
func ComputePixel(coord Vec2, res Resolution, time float64) (RGB, error) {
	if err := res.Validate(); err != nil {
		return RGB{}, err
	}
	if !isFinite(time) {
		return RGB{}, fmt.Errorf("%w: time %v", ErrInvalidInput, time)
	}
	if !coord.finite() {
		return RGB{}, fmt.Errorf("%w: coordinate (%v, %v)", ErrInvalidInput, coord.X, coord.Y)
	}
	layers := Layers(time)
	return shade(UV(coord, res, time), &layers, time), nil
}

// shade is the clamped layer sum at uv. Inputs are assumed valid.
func shade(uv Vec2, layers *[NumLayers]Layer, time float64) RGB {
	return layerSum(uv, layers, time).clamp(0, MaxChannel)
}

// layerSum adds the faded star layers at uv. Every channel lies in
// [0, RawChannelBound].
func layerSum(uv Vec2, layers *[NumLayers]Layer, time float64) RGB {
	var col RGB
	for _, l := range layers {
		if l.Fade == 0 {
			continue
		}
		p := uv.Mul(l.Scale).AddScalar(l.Offset * layerOffset)
		col = col.Add(StarLayer(p, time).Scale(l.Fade))
	}
	return col
}
