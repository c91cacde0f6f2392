package hal

import (
	"fmt"
	"image"
	"sync"
)

type hostFramebuffer struct {
	mu      sync.Mutex
	width   int
	height  int
	format  PixelFormat
	stride  int
	buf     []byte
	present func(Framebuffer) error
}

func newHostFramebuffer(width, height int, format PixelFormat) *hostFramebuffer {
	bpp := format.BytesPerPixel()
	if bpp == 0 {
		format = PixelFormatRGBA8888
		bpp = format.BytesPerPixel()
	}
	stride := width * bpp
	return &hostFramebuffer{
		width:  width,
		height: height,
		format: format,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return f.format }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }

// Present runs the configured present hook, if any. The hook may call
// Snapshot; the lock is not held while it runs.
func (f *hostFramebuffer) Present() error {
	if f.present == nil {
		return nil
	}
	return f.present(f)
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	bpp := f.format.BytesPerPixel()
	for i := 0; i+bpp <= len(f.buf); i += bpp {
		f.putPixel(f.buf[i:i+bpp], r, g, b)
	}
}

func (f *hostFramebuffer) putPixel(dst []byte, r, g, b uint8) {
	switch f.format {
	case PixelFormatRGB565:
		putRGB565(dst, r, g, b)
	default:
		dst[0] = r
		dst[1] = g
		dst[2] = b
		dst[3] = 0xFF
	}
}

func (f *hostFramebuffer) WriteRGBA(src *image.RGBA) error {
	if src == nil {
		return fmt.Errorf("hal: write nil image")
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	b := src.Bounds()
	w := min(b.Dx(), f.width)
	h := min(b.Dy(), f.height)
	bpp := f.format.BytesPerPixel()
	for y := 0; y < h; y++ {
		srow := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
		drow := f.buf[y*f.stride:]
		if f.format == PixelFormatRGBA8888 {
			copy(drow[:w*4], srow[:w*4])
			continue
		}
		for x := 0; x < w; x++ {
			s := srow[x*4 : x*4+4]
			f.putPixel(drow[x*bpp:x*bpp+bpp], s[0], s[1], s[2])
		}
	}
	return nil
}

func (f *hostFramebuffer) Snapshot(dst *image.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b := dst.Bounds()
	w := min(b.Dx(), f.width)
	h := min(b.Dy(), f.height)
	bpp := f.format.BytesPerPixel()
	for y := 0; y < h; y++ {
		srow := f.buf[y*f.stride:]
		drow := dst.Pix[dst.PixOffset(b.Min.X, b.Min.Y+y):]
		if f.format == PixelFormatRGBA8888 {
			copy(drow[:w*4], srow[:w*4])
			continue
		}
		for x := 0; x < w; x++ {
			r, g, bb := rgbFromRGB565(srow[x*bpp : x*bpp+bpp])
			d := drow[x*4 : x*4+4]
			d[0] = r
			d[1] = g
			d[2] = bb
			d[3] = 0xFF
		}
	}
}
