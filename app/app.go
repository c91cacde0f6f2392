// Package app renders the starfield into a host framebuffer, one frame per
// step.
package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"stardrift/clock"
	"stardrift/field"
	"stardrift/hal"
	"stardrift/internal/stats"
)

var ErrNoDisplay = errors.New("app: host has no framebuffer")

type Config struct {
	// TimeScale multiplies host deltas before they reach the clock.
	TimeScale float64
	Workers   int
	Encoding  field.Encoding

	// StatsEvery logs a timing summary every N presented frames (0 = never).
	StatsEvery uint64
	// Sampler, if set, adds process resources to the timing summary.
	Sampler stats.Sampler
}

type renderFunc func(ctx context.Context, dst *field.Frame, time float64, opts ...field.Option) error

// App owns the animation clock and the frame buffers for one host.
type App struct {
	ctx    context.Context
	log    hal.Logger
	fb     hal.Framebuffer
	clock  *clock.Driver
	frame  *field.Frame
	img    *image.RGBA
	enc    field.Encoding
	opts   []field.Option
	render renderFunc

	stats      *stats.Recorder
	sampler    stats.Sampler
	statsEvery uint64
	now        func() time.Time
}

// New binds an App to the host framebuffer. The raster size is taken from the
// framebuffer.
func New(ctx context.Context, h hal.HAL, cfg Config) (*App, error) {
	d := h.Display()
	if d == nil {
		return nil, ErrNoDisplay
	}
	fb := d.Framebuffer()
	if fb == nil {
		return nil, ErrNoDisplay
	}

	res := field.Resolution{Width: fb.Width(), Height: fb.Height()}
	frame, err := field.NewFrame(res)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	a := &App{
		ctx:        ctx,
		log:        h.Logger(),
		fb:         fb,
		clock:      clock.New(cfg.TimeScale),
		frame:      frame,
		img:        image.NewRGBA(image.Rect(0, 0, res.Width, res.Height)),
		enc:        cfg.Encoding,
		opts:       []field.Option{field.WithWorkers(cfg.Workers)},
		render:     field.RenderInto,
		stats:      stats.NewRecorder(),
		sampler:    cfg.Sampler,
		statsEvery: cfg.StatsEvery,
		now:        time.Now,
	}
	fb.ClearRGB(0, 0, 0)
	a.log.Debug("app ready", "resolution", res.String(), "format", fb.Format().String(), "encoding", a.enc.String(), "timeScale", a.clock.Scale())
	return a, nil
}

// Step advances the clock by deltaSeconds and presents one frame.
//
// A frame that fails to render is logged and skipped; the clock keeps its
// advanced value. Errors are returned only when the host can no longer make
// progress: a cancelled context or a failing framebuffer.
func (a *App) Step(deltaSeconds float64) error {
	t := a.clock.Advance(deltaSeconds)

	start := a.now()
	if err := a.render(a.ctx, a.frame, t, a.opts...); err != nil {
		if ctxErr := a.ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		a.stats.Drop()
		a.log.Warn("frame dropped", "time", t, "err", err)
		return nil
	}
	a.frame.EncodeInto(a.img, a.enc)
	if err := a.fb.WriteRGBA(a.img); err != nil {
		return fmt.Errorf("app: write framebuffer: %w", err)
	}
	if err := a.fb.Present(); err != nil {
		return fmt.Errorf("app: present: %w", err)
	}
	a.stats.Observe(a.now().Sub(start))

	if a.statsEvery > 0 {
		if s := a.stats.Snapshot(); s.Frames%a.statsEvery == 0 {
			a.logStats(s)
		}
	}
	return nil
}

func (a *App) logStats(s stats.Snapshot) {
	kv := append(s.KeyVals(), "time", a.clock.Now())
	if a.sampler != nil {
		if res, err := a.sampler.Sample(); err == nil {
			kv = append(kv, "cpu", res.CPUPercent, "rss", res.RSS)
		} else {
			a.log.Debug("resource sample failed", "err", err)
		}
	}
	a.log.Info("frame stats", kv...)
}

func (a *App) Clock() *clock.Driver   { return a.clock }
func (a *App) Frame() *field.Frame    { return a.frame }
func (a *App) Stats() *stats.Recorder { return a.stats }

// Factory adapts New to the host runners. created, if non-nil, receives the
// App once the host has built it.
func Factory(ctx context.Context, cfg Config, created func(*App)) hal.NewApp {
	return func(h hal.HAL) (hal.Step, error) {
		a, err := New(ctx, h, cfg)
		if err != nil {
			return nil, err
		}
		if created != nil {
			created(a)
		}
		return guard(a.log, a.fb, a.Step), nil
	}
}
