// Package version reports the build stamp of the binaries
package version

import (
	"runtime"
	"runtime/debug"
)

// BuildInfo describes one build
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

// Set via -ldflags "-X 'langid/internal/core/version.version=v0.1.0'
// -X 'langid/internal/core/version.commit=abcd' -X 'langid/internal/core/version.date=2026-01-02'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Service is the name the server reports about itself
const Service = "langid-server"

// Info returns the build stamp, falling back to VCS data embedded by the go tool
func Info() BuildInfo {
	bi := BuildInfo{
		Service:   Service,
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
	}
	if commit != "none" {
		return bi
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				bi.Commit = s.Value
			case "vcs.time":
				bi.Date = s.Value
			}
		}
	}
	return bi
}
