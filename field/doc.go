// Package field evaluates an animated, layered starfield one pixel at a time.
//
// The generator is a pure function of (fragment coordinate, resolution, time):
// there is no hidden state and no dependency between pixels, so a frame can be
// split across any number of goroutines and still come out bit-identical.
//
// Pipeline (fixed):
//
//	pixel → centered uv → rotation → 4 depth layers → 3x3 star lattice → sum.
//
// Each layer cycles its depth in [0,1) with time. A layer is born small and
// far (scale 20), grows as it approaches the viewer (scale 0.5) and fades out
// just before it wraps, so stars appear to fly through the frame.
//
// Coordinates follow the GPU fragment convention: origin at the bottom-left
// corner, pixel centers at +0.5. Frame rows are stored top-down.
//
// Colors are linear and unencoded. Use Frame.ToRGBA or Frame.EncodeInto to get
// 8-bit pixels in the selected Encoding.
package field
