package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitpush.dev/gitpush/internal/cli"
	gperrors "gitpush.dev/gitpush/internal/errors"
	"gitpush.dev/gitpush/testhelpers"
)

// execute runs the root command with args and returns its stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := cli.NewRootCmd("1.2.3", "abc123", "2024-03-05")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--no-color"))
	err := cmd.Execute()
	return out.String(), err
}

var backends = []string{"cli", "native"}

func TestVersion(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	require.Contains(t, out, "1.2.3 (commit abc123, built 2024-03-05)")
}

func TestUnknownBackend(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	_, err := execute(t, "status", "--dir", scene.Dir, "--backend", "svn")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown backend")
}

func TestPushCommand(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			t.Run("pushes every change to origin", func(t *testing.T) {
				scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
				require.NoError(t, scene.Repo.CreateChange("edited", "1", true))
				require.NoError(t, scene.Repo.CreateChange("new file", "2", true))

				out, err := execute(t, "push", "-m", "ship it", "-d", scene.Dir, "--backend", backend)
				require.NoError(t, err, out)
				require.Contains(t, out, "Successfully pushed to GitHub (main)")
				require.Contains(t, out, "Files changed: 2")

				testhelpers.ExpectLastCommitMessage(t, scene.Repo, "ship it")
				testhelpers.ExpectRemoteBranchAt(t, scene.Repo, scene.RemoteDir("origin"), "main")
			})

			t.Run("clean tree is a no-op", func(t *testing.T) {
				scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)

				out, err := execute(t, "push", "-d", scene.Dir, "--backend", backend)
				require.NoError(t, err)
				require.Contains(t, out, "No changes to commit")
				testhelpers.ExpectCommitCount(t, scene.Repo, 1)
			})

			t.Run("missing origin keeps the commit", func(t *testing.T) {
				scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
				require.NoError(t, scene.Repo.CreateChange("edited", "1", true))

				_, err := execute(t, "push", "-m", "local only", "-d", scene.Dir, "--backend", backend)
				require.ErrorIs(t, err, gperrors.ErrPushFailed)
				testhelpers.ExpectLastCommitMessage(t, scene.Repo, "local only")
				testhelpers.ExpectCommitCount(t, scene.Repo, 2)
			})

			t.Run("outside a repository", func(t *testing.T) {
				scene := testhelpers.NewEmptyScene(t)

				_, err := execute(t, "push", "-d", scene.Dir, "--backend", backend)
				require.ErrorIs(t, err, gperrors.ErrNotARepository)
			})

			t.Run("missing directory does not push the enclosing repository", func(t *testing.T) {
				scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
				require.NoError(t, scene.Repo.CreateChange("edited", "1", true))

				out, err := execute(t, "push", "-m", "typo dir", "-d", filepath.Join(scene.Dir, "does-not-exist"), "--backend", backend)
				require.Error(t, err)
				require.NotContains(t, out, "Successfully pushed")
				testhelpers.ExpectLastCommitMessage(t, scene.Repo, "1")
				testhelpers.ExpectCommitCount(t, scene.Repo, 1)
			})

			t.Run("staged rename counts as one changed file", func(t *testing.T) {
				scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
				require.NoError(t, scene.Repo.RunGitCommand("mv", "1_test.txt", "renamed.txt"))

				out, err := execute(t, "push", "-m", "mv", "-d", scene.Dir, "--backend", backend)
				require.NoError(t, err, out)
				require.Contains(t, out, "Files changed: 1\n")
				testhelpers.ExpectRemoteBranchAt(t, scene.Repo, scene.RemoteDir("origin"), "main")
			})
		})
	}
}

func TestStatusCommand(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			t.Run("reports changes and remotes", func(t *testing.T) {
				scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
				require.NoError(t, scene.Repo.CreateChange("edited", "1", true))
				require.NoError(t, scene.Repo.CreateChange("new", "2", true))

				out, err := execute(t, "status", "-d", scene.Dir, "--backend", backend)
				require.NoError(t, err)
				require.Contains(t, out, "Branch: main")
				require.Contains(t, out, "  origin: "+scene.RemoteDir("origin"))
				require.Contains(t, out, "⚠ 1 file(s) modified")
				require.Contains(t, out, "✗ 1 file(s) untracked")
				require.Contains(t, out, "  M  1_test.txt")
				require.Contains(t, out, "  ?? 2_test.txt")
			})

			t.Run("staged rename is shown once", func(t *testing.T) {
				scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
				require.NoError(t, scene.Repo.RunGitCommand("mv", "1_test.txt", "renamed.txt"))

				out, err := execute(t, "status", "-d", scene.Dir, "--backend", backend)
				require.NoError(t, err)
				require.Contains(t, out, "✓ 1 file(s) staged")
				require.Contains(t, out, "  R  renamed.txt")
				require.NotContains(t, out, "1_test.txt")
			})

			t.Run("notice outside a repository", func(t *testing.T) {
				scene := testhelpers.NewEmptyScene(t)

				out, err := execute(t, "status", "-d", scene.Dir, "--backend", backend)
				require.NoError(t, err)
				require.Equal(t, "Not a git repository\n", out)
			})
		})
	}
}

func TestInitCommand(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			t.Run("creates a repository with origin and is repeatable", func(t *testing.T) {
				scene := testhelpers.NewEmptyScene(t)
				url := "https://github.com/acme/widgets.git"

				out, err := execute(t, "init", "-d", scene.Dir, "-r", url, "--backend", backend)
				require.NoError(t, err, out)
				require.DirExists(t, filepath.Join(scene.Dir, ".git"))
				require.Contains(t, out, "Remote URL: "+url)

				out, err = execute(t, "init", "-d", scene.Dir, "-r", url, "--backend", backend)
				require.NoError(t, err, out)
				require.Contains(t, out, "Repository already initialized")
				require.Contains(t, out, `Remote "origin" already exists`)
				require.Contains(t, out, "Current remote: "+url)
			})

			t.Run("without a remote prints a tip", func(t *testing.T) {
				scene := testhelpers.NewEmptyScene(t)

				out, err := execute(t, "init", "-d", scene.Dir, "--backend", backend)
				require.NoError(t, err)
				require.Contains(t, out, "Add a remote with --remote option")
			})
		})
	}
}

func TestLogFile(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	logFile := filepath.Join(t.TempDir(), "git-push.log")

	out, err := execute(t, "status", "-d", scene.Dir, "--log-file", logFile)
	require.NoError(t, err)
	require.NotContains(t, out, "using cli backend")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "using cli backend")
}
