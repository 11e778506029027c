package main_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitpush.dev/gitpush/internal/testhelper"
	"gitpush.dev/gitpush/testhelpers"
)

func TestExitCodes(t *testing.T) {
	t.Run("push outside a repository exits 1 with an error line", func(t *testing.T) {
		scene := testhelpers.NewEmptyScene(t)

		res := testhelper.RunBinary(t, scene.Dir, "push", "--no-color")
		require.Equal(t, 1, res.ExitCode)
		require.Equal(t, "Error: Not a git repository. Run \"git-push init\" first.\n", res.Stderr)
	})

	t.Run("status outside a repository exits 0", func(t *testing.T) {
		scene := testhelpers.NewEmptyScene(t)

		res := testhelper.RunBinary(t, scene.Dir, "status", "--no-color")
		require.Equal(t, 0, res.ExitCode)
		require.Equal(t, "Not a git repository\n", res.Stdout)
	})

	t.Run("push without origin exits 1 with the remote hint", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateChange("edited", "1", true))

		res := testhelper.RunBinary(t, scene.Dir, "push", "-m", "wip", "--no-color")
		require.Equal(t, 1, res.ExitCode)
		require.Contains(t, res.Stderr, "Unable to push to remote. Please check your remote configuration.")
		testhelpers.ExpectLastCommitMessage(t, scene.Repo, "wip")
	})
}
