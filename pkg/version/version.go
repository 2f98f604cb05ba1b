// Package version reports which build of the relay is running. The
// health endpoint and log banners use it so an operator can tell
// whether a long-lived bot process picked up a deploy.
package version

import "runtime/debug"

// AppName prefixes version strings in logs and user agents.
const AppName = "relay"

// commitOverride is stamped with -ldflags in container builds, where
// the binary is compiled outside a git checkout. Empty means derive
// the commit from embedded VCS metadata instead.
var commitOverride string

// GitCommit identifies this build: the override if stamped, else the
// embedded vcs.revision, else "dev" (go test, go run, non-git builds).
// Hashes are shortened to 8 characters.
var GitCommit = resolveCommit()

func resolveCommit() string {
	if commitOverride != "" {
		return shortHash(commitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return shortHash(s.Value)
			}
		}
	}
	return "dev"
}

func shortHash(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full renders "relay/<commit>".
func Full() string {
	return AppName + "/" + GitCommit
}
