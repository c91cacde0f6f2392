package field

import (
	"fmt"
	"image"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Encoding selects the transfer function applied when quantizing to 8 bits.
type Encoding uint8

const (
	// EncodingSRGB applies the sRGB transfer curve to linear colors.
	EncodingSRGB Encoding = iota
	// EncodingLinear clamps and quantizes without a transfer curve.
	EncodingLinear
)

func (e Encoding) String() string {
	switch e {
	case EncodingSRGB:
		return "srgb"
	case EncodingLinear:
		return "linear"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

// ParseEncoding accepts "srgb" or "linear", case-insensitively.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "srgb", "":
		return EncodingSRGB, nil
	case "linear":
		return EncodingLinear, nil
	}
	return 0, fmt.Errorf("%w: unknown encoding %q", ErrInvalidConfiguration, s)
}

// Encode quantizes c to 8-bit channels.
func (e Encoding) Encode(c RGB) (r, g, b uint8) {
	var out colorful.Color
	if e == EncodingLinear {
		out = colorful.Color{R: c.R, G: c.G, B: c.B}
	} else {
		out = colorful.LinearRgb(c.R, c.G, c.B)
	}
	return out.Clamped().RGB255()
}

// ToRGBA encodes the frame into a new RGBA image.
func (f *Frame) ToRGBA(enc Encoding) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	f.EncodeInto(img, enc)
	return img
}

// EncodeInto writes the frame into dst, which must be at least as large as
// the frame. Pixels outside the frame are left untouched.
func (f *Frame) EncodeInto(dst *image.RGBA, enc Encoding) {
	b := dst.Bounds()
	w := min(f.Width, b.Dx())
	h := min(f.Height, b.Dy())
	for y := 0; y < h; y++ {
		off := y * dst.Stride
		for x := 0; x < w; x++ {
			r, g, bb := enc.Encode(f.Pix[y*f.Width+x])
			p := dst.Pix[off+x*4 : off+x*4+4 : off+x*4+4]
			p[0] = r
			p[1] = g
			p[2] = bb
			p[3] = 0xFF
		}
	}
}
