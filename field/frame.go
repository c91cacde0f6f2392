package field

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Frame is a linear color raster. Pix is row-major with row 0 at the top.
type Frame struct {
	Width  int
	Height int
	Pix    []RGB
}

// NewFrame allocates a frame for res.
func NewFrame(res Resolution) (*Frame, error) {
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return &Frame{
		Width:  res.Width,
		Height: res.Height,
		Pix:    make([]RGB, res.Width*res.Height),
	}, nil
}

func (f *Frame) Resolution() Resolution { return Resolution{Width: f.Width, Height: f.Height} }

// At returns the color of the pixel at column x, row y (top-down).
func (f *Frame) At(x, y int) RGB {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return RGB{}
	}
	return f.Pix[y*f.Width+x]
}

// Coord returns the fragment coordinate of the pixel at column x, row y.
func (f *Frame) Coord(x, y int) Vec2 {
	return Vec2{X: float64(x) + 0.5, Y: float64(f.Height-y) - 0.5}
}

const defaultBandRows = 8

type renderOptions struct {
	workers  int
	bandRows int
}

// Option configures RenderFrame and RenderInto.
type Option func(*renderOptions)

// WithWorkers bounds the number of goroutines rendering a frame. Values <= 0
// select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *renderOptions) { o.workers = n }
}

// WithBandRows sets how many rows each unit of work covers.
func WithBandRows(n int) Option {
	return func(o *renderOptions) { o.bandRows = n }
}

func buildOptions(opts []Option) renderOptions {
	o := renderOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.bandRows <= 0 {
		o.bandRows = defaultBandRows
	}
	return o
}

// RenderFrame renders a full frame at time.
func RenderFrame(ctx context.Context, res Resolution, time float64, opts ...Option) (*Frame, error) {
	f, err := NewFrame(res)
	if err != nil {
		return nil, err
	}
	if err := RenderInto(ctx, f, time, opts...); err != nil {
		return nil, err
	}
	return f, nil
}

// RenderInto renders into an existing frame, reusing its pixel buffer.
//
// Rows are split into bands evaluated concurrently. The result does not depend
// on the worker count.
func RenderInto(ctx context.Context, dst *Frame, time float64, opts ...Option) error {
	if dst == nil {
		return fmt.Errorf("%w: nil frame", ErrInvalidConfiguration)
	}
	res := dst.Resolution()
	if err := res.Validate(); err != nil {
		return err
	}
	if len(dst.Pix) != res.Width*res.Height {
		return fmt.Errorf("%w: frame buffer holds %d pixels, want %d", ErrInvalidConfiguration, len(dst.Pix), res.Width*res.Height)
	}
	if !isFinite(time) {
		return fmt.Errorf("%w: time %v", ErrInvalidInput, time)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	o := buildOptions(opts)
	proj := newProjection(res, time)
	layers := Layers(time)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for y0 := 0; y0 < res.Height; y0 += o.bandRows {
		y0 := y0
		y1 := min(y0+o.bandRows, res.Height)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for y := y0; y < y1; y++ {
				row := dst.Pix[y*res.Width : (y+1)*res.Width]
				for x := range row {
					row[x] = shade(proj.uv(dst.Coord(x, y)), &layers, time)
				}
			}
			return nil
		})
	}
	return g.Wait()
}
