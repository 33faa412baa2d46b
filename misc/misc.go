// Package misc carries build identity shared by every command.
package misc

import (
	"runtime/debug"
	"sync"
)

// Overwritten at build time with -ldflags.
var (
	appName = "atext"
	version = "development"
)

// GetAppName returns the program name used for log files and temp artifacts.
func GetAppName() string {
	return appName
}

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}

var gitHash = sync.OnceValue(func() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
})

// GetGitHash returns the VCS revision the binary was built from.
func GetGitHash() string {
	return gitHash()
}
