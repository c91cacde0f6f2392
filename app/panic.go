package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"stardrift/hal"
)

// guard turns a panic inside step into an error so the host runner can shut
// down cleanly. The framebuffer is painted dark red to make the failure
// visible in window mode.
func guard(l hal.Logger, fb hal.Framebuffer, step hal.Step) hal.Step {
	return func(dt float64) (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			stack := strings.TrimSpace(string(debug.Stack()))
			l.Error("step panic", "panic", fmt.Sprint(v), "stack", stack)
			if fb != nil {
				fb.ClearRGB(0x40, 0, 0)
				_ = fb.Present()
			}
			err = fmt.Errorf("app: step panic: %v", v)
		}()
		return step(dt)
	}
}
