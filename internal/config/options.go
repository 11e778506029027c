package config

import (
	"fmt"

	"gitpush.dev/gitpush/internal/git"
)

// Options are the global flags accepted by every command
type Options struct {
	// Backend selects the git implementation ("cli" or "native")
	Backend string
	// LogFile, when set, receives a rotating debug log
	LogFile string
	// Verbose shows debug output on the console
	Verbose bool
	// NoColor disables ANSI styling
	NoColor bool
}

// DefaultOptions returns the options used when no flags are given
func DefaultOptions() Options {
	return Options{Backend: string(git.BackendCLI)}
}

// Validate checks that the options can be used to build a client
func (o Options) Validate() error {
	if _, err := git.ParseBackend(o.Backend); err != nil {
		return fmt.Errorf("invalid --backend: %w", err)
	}
	return nil
}

// GitBackend returns the parsed backend, falling back to the default
func (o Options) GitBackend() git.Backend {
	backend, err := git.ParseBackend(o.Backend)
	if err != nil {
		return git.BackendCLI
	}
	return backend
}
