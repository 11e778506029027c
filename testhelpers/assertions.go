package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectCommitCount asserts the number of commits reachable from HEAD
func ExpectCommitCount(t *testing.T, repo *GitRepo, expected int) {
	t.Helper()
	count, err := repo.CommitCount("HEAD")
	require.NoError(t, err, "Failed to count commits")
	require.Equal(t, expected, count, "Commit count does not match")
}

// ExpectLastCommitMessage asserts the subject of the HEAD commit
func ExpectLastCommitMessage(t *testing.T, repo *GitRepo, expected string) {
	t.Helper()
	msg, err := repo.LastCommitMessage()
	require.NoError(t, err, "Failed to read last commit message")
	require.Equal(t, expected, msg, "Last commit message does not match")
}

// ExpectRemoteBranchAt asserts that branch on the bare remote points at the local revision
func ExpectRemoteBranchAt(t *testing.T, repo *GitRepo, bareDir, branch string) {
	t.Helper()
	local, err := repo.GetRevision(branch)
	require.NoError(t, err, "Failed to read local revision")
	remote, err := RemoteBranchSHA(bareDir, branch)
	require.NoError(t, err, "Failed to read remote revision")
	require.Equal(t, local, remote, "Remote branch does not match local")
}
