// Package runtime provides the execution context for git-push commands.
//
// It encapsulates the shared dependencies needed by actions: the repository
// client, console output, progress reporting and the clock used to stamp
// generated commit messages.
package runtime
