// Package errors provides sentinel errors and custom error types for the git-push application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that an operation was attempted outside an initialized repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrPushFailed indicates that both the direct push and the upstream retry failed
	ErrPushFailed = errors.New("push failed")

	// ErrRemoteAddFailed indicates that a remote could not be registered
	ErrRemoteAddFailed = errors.New("remote add failed")

	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")
)

// NotARepositoryError represents an error when a directory is not a git repository
type NotARepositoryError struct {
	Dir string
}

func (e *NotARepositoryError) Error() string {
	return `Not a git repository. Run "git-push init" first.`
}

// Is returns true if the target error is ErrNotARepository
func (e *NotARepositoryError) Is(target error) bool {
	return target == ErrNotARepository
}

// NewNotARepositoryError creates a new NotARepositoryError
func NewNotARepositoryError(dir string) *NotARepositoryError {
	return &NotARepositoryError{Dir: dir}
}

// PushError represents a push that failed on both the plain attempt and the
// --set-upstream retry. The underlying errors are kept for debug logging.
type PushError struct {
	Remote string
	Branch string
	First  error
	Retry  error
}

func (e *PushError) Error() string {
	return "Unable to push to remote. Please check your remote configuration."
}

// Is returns true if the target error is ErrPushFailed
func (e *PushError) Is(target error) bool {
	return target == ErrPushFailed
}

// Unwrap returns the error from the final attempt
func (e *PushError) Unwrap() error {
	return e.Retry
}

// NewPushError creates a new PushError
func NewPushError(remote, branch string, first, retry error) *PushError {
	return &PushError{
		Remote: remote,
		Branch: branch,
		First:  first,
		Retry:  retry,
	}
}

// RemoteAddReason classifies why registering a remote failed
type RemoteAddReason int

const (
	// RemoteAddOther is any failure not covered by a more specific reason
	RemoteAddOther RemoteAddReason = iota
	// RemoteExists means a remote with the same name is already configured
	RemoteExists
	// RemoteInvalidName means the remote name was rejected by the engine
	RemoteInvalidName
)

func (r RemoteAddReason) String() string {
	switch r {
	case RemoteExists:
		return "already exists"
	case RemoteInvalidName:
		return "invalid name"
	default:
		return "other"
	}
}

// RemoteAddError represents a failure to register a remote, tagged with a reason code
type RemoteAddError struct {
	Name   string
	URL    string
	Reason RemoteAddReason
	Err    error
}

func (e *RemoteAddError) Error() string {
	if e.Reason == RemoteExists {
		return fmt.Sprintf("remote %s already exists", e.Name)
	}
	if e.Err != nil {
		return fmt.Sprintf("failed to add remote %s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("failed to add remote %s (%s)", e.Name, e.Reason)
}

// Is returns true if the target error is ErrRemoteAddFailed
func (e *RemoteAddError) Is(target error) bool {
	return target == ErrRemoteAddFailed
}

func (e *RemoteAddError) Unwrap() error {
	return e.Err
}

// NewRemoteAddError creates a new RemoteAddError
func NewRemoteAddError(name, url string, reason RemoteAddReason, err error) *RemoteAddError {
	return &RemoteAddError{
		Name:   name,
		URL:    url,
		Reason: reason,
		Err:    err,
	}
}

// IsRemoteExists reports whether err is a RemoteAddError caused by an existing remote
func IsRemoteExists(err error) bool {
	var addErr *RemoteAddError
	return errors.As(err, &addErr) && addErr.Reason == RemoteExists
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command  string
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError.
// exitCode is -1 when the process did not run to completion.
func NewGitCommandError(command string, args []string, stdout, stderr string, exitCode int, err error) *GitCommandError {
	return &GitCommandError{
		Command:  command,
		Args:     args,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: exitCode,
		Err:      err,
	}
}
