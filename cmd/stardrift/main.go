// Command stardrift renders an animated procedural starfield in a window,
// headless, or to a single PNG.
package main

import "github.com/tebeka/atexit"

func main() {
	code := 0
	if err := newRootCmd().Execute(); err != nil {
		code = 1
	}
	atexit.Exit(code)
}
