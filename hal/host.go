package hal

import (
	"os"

	log "github.com/mgutz/logxi/v1"
)

// HostConfig describes the host framebuffer and logging.
type HostConfig struct {
	Width  int
	Height int
	Format PixelFormat

	// Logger defaults to a logxi logger named "stardrift".
	Logger Logger

	// Present, if set, runs on every Framebuffer.Present.
	Present func(Framebuffer) error
}

type hostHAL struct {
	logger Logger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	if cfg.Width <= 0 {
		cfg.Width = 320
	}
	if cfg.Height <= 0 {
		cfg.Height = 320
	}
	logger := cfg.Logger
	if logger == nil {
		logger = NewLogger("stardrift", false)
	}
	fb := newHostFramebuffer(cfg.Width, cfg.Height, cfg.Format)
	fb.present = cfg.Present
	return &hostHAL{
		logger: logger,
		fb:     fb,
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

// NewLogger returns a logxi logger writing to stderr. verbose enables debug
// output regardless of the LOGXI environment settings.
func NewLogger(name string, verbose bool) log.Logger {
	l := log.NewLogger(log.NewConcurrentWriter(os.Stderr), name)
	if verbose {
		l.SetLevel(log.LevelDebug)
	}
	return l
}
