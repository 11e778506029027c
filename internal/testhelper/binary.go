// Package testhelper builds the git-push binary once per test process so
// end-to-end tests can check exit codes and stderr.
package testhelper

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	binaryPath string
	binaryOnce sync.Once
	binaryErr  error
)

// Result is the outcome of one binary invocation
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// BinaryPath returns the path of the git-push binary, building it on first use
func BinaryPath(t *testing.T) string {
	t.Helper()
	binaryOnce.Do(func() {
		binaryPath, binaryErr = buildBinary()
	})
	if binaryErr != nil {
		t.Fatalf("failed to build git-push binary: %v", binaryErr)
	}
	return binaryPath
}

// RunBinary runs git-push with args in dir
func RunBinary(t *testing.T, dir string, args ...string) Result {
	t.Helper()
	//nolint:gosec // test binary built from this module
	cmd := exec.Command(BinaryPath(t), args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := Result{}
	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		t.Fatalf("failed to run git-push: %v", err)
	}
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	return res
}

// buildBinary builds ./cmd/git-push into a temp directory and returns its path
func buildBinary() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	moduleRoot := findModuleRoot(wd)
	if moduleRoot == "" {
		return "", fmt.Errorf("could not find module root (go.mod) starting from %s", wd)
	}

	tmpDir, err := os.MkdirTemp("", "git-push-test-binary-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}

	path := filepath.Join(tmpDir, "git-push")
	cmd := exec.Command("go", "build", "-o", path, "./cmd/git-push")
	cmd.Dir = moduleRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("failed to build: %s: %w", string(output), err)
	}
	return path, nil
}

// findModuleRoot walks up from startDir to the directory containing go.mod
func findModuleRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
