package hal

import "time"

// hostTime measures wall-clock time between frames.
type hostTime struct {
	now  func() time.Time
	last time.Time
}

func newHostTime() *hostTime {
	return &hostTime{now: time.Now}
}

// step returns the seconds elapsed since the previous call. The first call
// returns 0, which the animation clock treats as "no signal".
func (t *hostTime) step() float64 {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		return 0
	}
	d := now.Sub(t.last)
	t.last = now
	return d.Seconds()
}
