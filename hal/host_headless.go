package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Host HostConfig
	Hz   int
	// Frames stops the runner after N frames (0 = run until ctx is done).
	Frames uint64
	// WallClock feeds measured wall time to the app instead of a fixed
	// 1/Hz step. Fixed steps make runs reproducible.
	WallClock bool
}

// RunHeadless renders frames on a ticker without opening a window.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp NewApp) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := New(cfg.Host).(*hostHAL)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	t := time.NewTicker(d)
	defer t.Stop()

	fixed := d.Seconds()
	h.logger.Debug("headless start", "hz", cfg.Hz, "frames", cfg.Frames, "wallClock", cfg.WallClock)

	var frame uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			dt := fixed
			if cfg.WallClock {
				dt = h.t.step()
			}
			if step != nil {
				if err := step(dt); err != nil {
					return err
				}
			}
			frame++
			if cfg.Frames > 0 && frame >= cfg.Frames {
				return nil
			}
		}
	}
}
