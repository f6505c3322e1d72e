package app

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/heartmarshall/memoboard/internal/app.Version=1.2.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = "unknown"
)

// BuildVersion describes the running binary for startup logs and /health.
// Without a Commit ldflag the VCS stamp of the Go toolchain is used.
func BuildVersion() string {
	commit := Commit
	if commit == "" {
		commit = "unknown"
		if info, ok := debug.ReadBuildInfo(); ok {
			commit = revisionFrom(info.Settings)
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, BuildTime)
}

func revisionFrom(settings []debug.BuildSetting) string {
	var rev string
	var dirty bool
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return "unknown"
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if dirty {
		rev += "-dirty"
	}
	return rev
}
