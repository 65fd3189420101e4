package quest

import "github.com/hsiuhsiu/quest-go/pkg/quest/internal/backend"

var (
	Version         = "v0.0.0-in-progress"
	UpstreamRelease = "v3.7.0"
	UpstreamDir     = "QuEST"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// UpstreamVersion returns the version string reported by the native bindings if
// available; otherwise it falls back to the pinned QuEST release.
func UpstreamVersion() string {
	if v := backend.Version(); v != "" {
		return v
	}
	return UpstreamRelease
}

// Built reports whether the native QuEST bindings are linked into the binary.
func Built() bool { return backend.Built() }
