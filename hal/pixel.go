package hal

// putRGB565 packs an 8-bit color into two little-endian RGB565 bytes.
func putRGB565(dst []byte, r, g, b uint8) {
	p := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
	dst[0] = byte(p)
	dst[1] = byte(p >> 8)
}

// rgbFromRGB565 expands two little-endian RGB565 bytes to 8-bit channels.
func rgbFromRGB565(src []byte) (r, g, b uint8) {
	p := uint16(src[0]) | uint16(src[1])<<8
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F
	return uint8(rr * 255 / 31), uint8(gg * 255 / 63), uint8(bb * 255 / 31)
}
