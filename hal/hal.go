package hal

import (
	"errors"
	"image"
)

// Logger is the leveled, key/value logger used by the host and the app.
//
// Arguments after msg are alternating keys and values.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{}) error
	Error(msg string, args ...interface{}) error
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb, little endian.
	PixelFormatRGB565 PixelFormat = iota + 1
	// PixelFormatRGBA8888 is 32bpp in R, G, B, A byte order.
	PixelFormatRGBA8888
)

func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGB565:
		return 2
	case PixelFormatRGBA8888:
		return 4
	default:
		return 0
	}
}

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGB565:
		return "rgb565"
	case PixelFormatRGBA8888:
		return "rgba8888"
	default:
		return "unknown"
	}
}

// Framebuffer is a pixel buffer plus a "present" hook.
//
// Writers and readers may live on different goroutines; implementations
// serialize access.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	ClearRGB(r, g, b uint8)
	// WriteRGBA converts src into the framebuffer format. src is clipped to
	// the framebuffer size.
	WriteRGBA(src *image.RGBA) error
	// Snapshot copies the framebuffer into dst as RGBA.
	Snapshot(dst *image.RGBA)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// HAL is the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
}

// Step advances the app by one frame. deltaSeconds is the wall or fixed time
// since the previous frame; zero means no time signal.
type Step func(deltaSeconds float64) error

// NewApp builds the per-frame step for a HAL.
type NewApp func(HAL) (Step, error)
