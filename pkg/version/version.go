// Package version derives the build identity reported by /health and used
// in provider attribution headers.
package version

import "runtime/debug"

// AppName is the service name used in version strings and attribution headers.
const AppName = "agentplane"

// commitOverride is set via -ldflags for container builds without .git.
var commitOverride string

// GitCommit is the short commit hash, "dev" when no VCS info is available.
var GitCommit = resolveCommit()

// Dirty reports whether the working tree had uncommitted changes at build time.
var Dirty = resolveDirty()

func resolveCommit() string {
	if commitOverride != "" {
		return short(commitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return short(s.Value)
			}
		}
	}
	return "dev"
}

func resolveDirty() bool {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return false
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.modified" {
			return s.Value == "true"
		}
	}
	return false
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "agentplane/<commit>" for user-agent strings and logs, with a
// "+dirty" suffix on modified builds.
func Full() string {
	v := AppName + "/" + GitCommit
	if Dirty {
		v += "+dirty"
	}
	return v
}
