package git

import (
	"context"
	"fmt"
	"path/filepath"
)

// Client defines the repository operations used by the commands.
// This allows the actions to run against the git executable, an embedded
// engine, or a fake in tests.
type Client interface {
	// Dir returns the directory the client operates on
	Dir() string

	// Repository lifecycle
	IsRepository(ctx context.Context) (bool, error)
	Init(ctx context.Context) error

	// Working tree
	Status(ctx context.Context) (RepositoryStatus, error)
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	CurrentBranch(ctx context.Context) (BranchInfo, error)

	// Remotes
	Push(ctx context.Context, opts PushOptions) error
	AddRemote(ctx context.Context, name, url string) error
	Remotes(ctx context.Context) ([]RemoteInfo, error)
}

// Backend selects the Client implementation
type Backend string

const (
	// BackendCLI shells out to the git executable
	BackendCLI Backend = "cli"
	// BackendNative uses the embedded go-git engine
	BackendNative Backend = "native"
)

// Backends lists the supported backends
var Backends = []Backend{BackendCLI, BackendNative}

// ParseBackend converts a flag value into a Backend
func ParseBackend(name string) (Backend, error) {
	for _, b := range Backends {
		if string(b) == name {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown backend %q (expected one of %v)", name, Backends)
}

// NewClient creates a Client for dir using the given backend
func NewClient(backend Backend, dir string) (Client, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	switch backend {
	case BackendCLI, "":
		return NewCLIClient(absDir), nil
	case BackendNative:
		return NewNativeClient(absDir), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}
