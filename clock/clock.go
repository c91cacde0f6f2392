// Package clock drives the animation time fed to the starfield.
//
// A Driver accumulates host-supplied frame deltas, scaled by a constant
// factor. It is written by one goroutine per frame; readers get the value
// passed to them explicitly, so it carries no lock.
package clock

import "math"

const (
	// DefaultScale keeps animation time equal to elapsed seconds.
	DefaultScale = 1.0

	// SlowScale advances one animation unit per 1000 elapsed seconds.
	SlowScale = 0.001
)

// Driver is the animation clock.
type Driver struct {
	now   float64
	scale float64
	held  uint64
}

// New returns a clock at zero. Non-positive or non-finite scales select
// DefaultScale.
func New(scale float64) *Driver {
	if !(scale > 0) || math.IsInf(scale, 0) {
		scale = DefaultScale
	}
	return &Driver{scale: scale}
}

// Advance adds deltaSeconds*scale and returns the current time.
//
// A zero, negative or non-finite delta means the host gave no time signal;
// the clock holds its value.
func (d *Driver) Advance(deltaSeconds float64) float64 {
	if !(deltaSeconds > 0) || math.IsInf(deltaSeconds, 0) {
		d.held++
		return d.now
	}
	next := d.now + deltaSeconds*d.scale
	if math.IsInf(next, 0) {
		d.held++
		return d.now
	}
	d.now = next
	return d.now
}

func (d *Driver) Now() float64   { return d.now }
func (d *Driver) Scale() float64 { return d.scale }

// Held returns how many Advance calls carried no usable delta.
func (d *Driver) Held() uint64 { return d.held }

// Reset rewinds the clock to zero.
func (d *Driver) Reset() {
	d.now = 0
	d.held = 0
}
