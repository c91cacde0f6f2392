// Package buildinfo carries version metadata stamped at link time:
//
//	go build -ldflags "-X stardrift/internal/buildinfo.Version=v1.2.0 -X stardrift/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for window titles and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Long returns every stamped field on one line.
func Long() string {
	return fmt.Sprintf("stardrift %s (commit %s, built %s)", Version, Commit, Date)
}
