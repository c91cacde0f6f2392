//go:build !cgo

package hal

import "errors"

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Host  HostConfig
	Title string
	Zoom  int
	TPS   int
}

func RunWindow(_ WindowConfig, _ NewApp) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
