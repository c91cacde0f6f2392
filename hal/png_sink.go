package hal

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// PNGSink writes framebuffer snapshots to numbered PNG files. Use Present as
// HostConfig.Present.
type PNGSink struct {
	Dir   string
	Every uint64

	presented uint64
	written   uint64
	img       *image.RGBA
}

// NewPNGSink writes every Nth presented frame into dir, creating it if needed.
func NewPNGSink(dir string, every uint64) (*PNGSink, error) {
	if dir == "" {
		return nil, fmt.Errorf("png sink: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("png sink: %w", err)
	}
	if every == 0 {
		every = 1
	}
	return &PNGSink{Dir: dir, Every: every}, nil
}

func (s *PNGSink) Present(fb Framebuffer) error {
	n := s.presented
	s.presented++
	if n%s.Every != 0 {
		return nil
	}

	w, h := fb.Width(), fb.Height()
	if s.img == nil || s.img.Bounds().Dx() != w || s.img.Bounds().Dy() != h {
		s.img = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	fb.Snapshot(s.img)

	path := filepath.Join(s.Dir, fmt.Sprintf("frame_%06d.png", n))
	if err := WritePNG(path, s.img); err != nil {
		return err
	}
	s.written++
	return nil
}

// Written returns how many files the sink has produced.
func (s *PNGSink) Written() uint64 { return s.written }

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("png: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("png: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("png: close %s: %w", path, err)
	}
	return nil
}
