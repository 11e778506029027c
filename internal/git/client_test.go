package git_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gperrors "gitpush.dev/gitpush/internal/errors"
	"gitpush.dev/gitpush/internal/git"
	"gitpush.dev/gitpush/testhelpers"
)

// forEachBackend runs fn once per Client implementation
func forEachBackend(t *testing.T, fn func(t *testing.T, backend git.Backend)) {
	for _, backend := range git.Backends {
		t.Run(string(backend), func(t *testing.T) {
			fn(t, backend)
		})
	}
}

func newClient(t *testing.T, backend git.Backend, dir string) git.Client {
	t.Helper()
	client, err := git.NewClient(backend, dir)
	require.NoError(t, err)
	return client
}

func TestIsRepositoryAndInit(t *testing.T) {
	forEachBackend(t, func(t *testing.T, backend git.Backend) {
		ctx := context.Background()
		scene := testhelpers.NewEmptyScene(t)
		client := newClient(t, backend, scene.Dir)

		isRepo, err := client.IsRepository(ctx)
		require.NoError(t, err)
		require.False(t, isRepo)

		require.NoError(t, client.Init(ctx))

		isRepo, err = client.IsRepository(ctx)
		require.NoError(t, err)
		require.True(t, isRepo)
	})
}

func TestRepositoryDirectory(t *testing.T) {
	forEachBackend(t, func(t *testing.T, backend git.Backend) {
		ctx := context.Background()

		t.Run("missing directory is an error, not the enclosing repository", func(t *testing.T) {
			scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
			client := newClient(t, backend, filepath.Join(scene.Dir, "does-not-exist"))

			_, err := client.IsRepository(ctx)
			require.Error(t, err)

			require.Error(t, client.StageAll(ctx))
			require.Error(t, client.Commit(ctx, "typo dir"))
			require.Error(t, client.Init(ctx))
			require.NoDirExists(t, filepath.Join(scene.Dir, "does-not-exist"))
			testhelpers.ExpectCommitCount(t, scene.Repo, 1)
		})

		t.Run("git directory has no work tree", func(t *testing.T) {
			scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

			for _, dir := range []string{
				filepath.Join(scene.Dir, ".git"),
				filepath.Join(scene.Dir, ".git", "refs"),
			} {
				isRepo, err := newClient(t, backend, dir).IsRepository(ctx)
				require.NoError(t, err, dir)
				require.False(t, isRepo, dir)
			}
		})

		t.Run("subdirectory belongs to the enclosing repository", func(t *testing.T) {
			scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
			require.NoError(t, scene.Repo.WriteFile("pkg/file.go", "package pkg"))

			isRepo, err := newClient(t, backend, filepath.Join(scene.Dir, "pkg")).IsRepository(ctx)
			require.NoError(t, err)
			require.True(t, isRepo)
		})
	})
}

func TestStatus(t *testing.T) {
	forEachBackend(t, func(t *testing.T, backend git.Backend) {
		ctx := context.Background()

		t.Run("clean repository", func(t *testing.T) {
			scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
			status, err := newClient(t, backend, scene.Dir).Status(ctx)
			require.NoError(t, err)
			require.True(t, status.IsClean())
		})

		t.Run("modified, staged and untracked files", func(t *testing.T) {
			scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
			require.NoError(t, scene.Repo.CreateChange("changed", "1", true))
			require.NoError(t, scene.Repo.CreateChange("staged", "staged", false))
			require.NoError(t, scene.Repo.WriteFile("notes/todo.md", "untracked"))

			status, err := newClient(t, backend, scene.Dir).Status(ctx)
			require.NoError(t, err)
			require.ElementsMatch(t, []git.FileStatus{
				{Path: "1_test.txt", Index: git.Unmodified, WorkingDir: git.Modified},
				{Path: "staged_test.txt", Index: git.Added, WorkingDir: git.Unmodified},
				{Path: "notes/todo.md", Index: git.Untracked, WorkingDir: git.Untracked},
			}, status.Files)
		})

		t.Run("staged rename is a single entry", func(t *testing.T) {
			scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
			require.NoError(t, scene.Repo.RunGitCommand("mv", "1_test.txt", "renamed.txt"))

			status, err := newClient(t, backend, scene.Dir).Status(ctx)
			require.NoError(t, err)
			require.Equal(t, []git.FileStatus{
				{Path: "renamed.txt", Index: git.Renamed, WorkingDir: git.Unmodified},
			}, status.Files)
		})

		t.Run("rename with a second unrelated deletion", func(t *testing.T) {
			scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
			require.NoError(t, scene.Repo.CreateChangeAndCommit("2", "2"))
			require.NoError(t, scene.Repo.RunGitCommand("mv", "1_test.txt", "renamed.txt"))
			require.NoError(t, scene.Repo.RunGitCommand("rm", "-q", "2_test.txt"))

			status, err := newClient(t, backend, scene.Dir).Status(ctx)
			require.NoError(t, err)
			require.ElementsMatch(t, []git.FileStatus{
				{Path: "renamed.txt", Index: git.Renamed, WorkingDir: git.Unmodified},
				{Path: "2_test.txt", Index: git.Deleted, WorkingDir: git.Unmodified},
			}, status.Files)
		})

		t.Run("counts commits ahead of upstream", func(t *testing.T) {
			scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
			require.NoError(t, scene.Repo.CreateChangeAndCommit("2", "2"))
			require.NoError(t, scene.Repo.CreateChangeAndCommit("3", "3"))

			status, err := newClient(t, backend, scene.Dir).Status(ctx)
			require.NoError(t, err)
			require.Equal(t, "main", status.Branch)
			require.Equal(t, "origin/main", status.Tracking)
			require.Equal(t, 2, status.Ahead)
			require.Equal(t, 0, status.Behind)
			require.Empty(t, status.Files)
		})
	})
}

func TestStageAllAndCommit(t *testing.T) {
	forEachBackend(t, func(t *testing.T, backend git.Backend) {
		ctx := context.Background()
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		client := newClient(t, backend, scene.Dir)

		require.NoError(t, scene.Repo.CreateChange("changed", "1", true))
		require.NoError(t, scene.Repo.WriteFile("new.txt", "untracked"))

		require.NoError(t, client.StageAll(ctx))
		status, err := client.Status(ctx)
		require.NoError(t, err)
		for _, f := range status.Files {
			require.False(t, f.WorkingDir.IsSet(), "%s should be fully staged", f.Path)
		}

		require.NoError(t, client.Commit(ctx, "stage everything"))

		msg, err := scene.Repo.LastCommitMessage()
		require.NoError(t, err)
		require.Equal(t, "stage everything", msg)

		status, err = client.Status(ctx)
		require.NoError(t, err)
		require.Empty(t, status.Files)
	})
}

func TestCurrentBranch(t *testing.T) {
	forEachBackend(t, func(t *testing.T, backend git.Backend) {
		ctx := context.Background()

		t.Run("named branch", func(t *testing.T) {
			scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
			info, err := newClient(t, backend, scene.Dir).CurrentBranch(ctx)
			require.NoError(t, err)
			require.Equal(t, "main", info.Current)
		})

		t.Run("unborn branch", func(t *testing.T) {
			scene := testhelpers.NewScene(t, nil)
			info, err := newClient(t, backend, scene.Dir).CurrentBranch(ctx)
			require.NoError(t, err)
			require.Equal(t, "main", info.Current)
		})

		t.Run("detached head", func(t *testing.T) {
			scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
			require.NoError(t, scene.Repo.RunGitCommand("checkout", "--detach"))
			info, err := newClient(t, backend, scene.Dir).CurrentBranch(ctx)
			require.NoError(t, err)
			require.Empty(t, info.Current)
		})
	})
}

func TestPush(t *testing.T) {
	forEachBackend(t, func(t *testing.T, backend git.Backend) {
		ctx := context.Background()

		t.Run("updates the remote branch", func(t *testing.T) {
			scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
			require.NoError(t, scene.Repo.CreateChangeAndCommit("2", "2"))

			client := newClient(t, backend, scene.Dir)
			require.NoError(t, client.Push(ctx, git.PushOptions{Remote: "origin", Branch: "main"}))

			local, err := scene.Repo.GetRevision("main")
			require.NoError(t, err)
			remote, err := testhelpers.RemoteBranchSHA(scene.RemoteDir("origin"), "main")
			require.NoError(t, err)
			require.Equal(t, local, remote)
		})

		t.Run("sets upstream when requested", func(t *testing.T) {
			scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
			_, err := scene.Repo.CreateBareRemote("origin")
			require.NoError(t, err)

			client := newClient(t, backend, scene.Dir)
			require.NoError(t, client.Push(ctx, git.PushOptions{Remote: "origin", Branch: "main", SetUpstream: true}))

			upstream, err := scene.Repo.RunGitCommandAndGetOutput("config", "branch.main.remote")
			require.NoError(t, err)
			require.Equal(t, "origin", upstream)
		})

		t.Run("fails without the remote", func(t *testing.T) {
			scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
			err := newClient(t, backend, scene.Dir).Push(ctx, git.PushOptions{Remote: "origin", Branch: "main"})
			require.Error(t, err)
		})

		t.Run("refuses a detached head", func(t *testing.T) {
			scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
			err := newClient(t, backend, scene.Dir).Push(ctx, git.PushOptions{Remote: "origin"})
			require.ErrorIs(t, err, gperrors.ErrNotOnBranch)
		})
	})
}

func TestRemotes(t *testing.T) {
	forEachBackend(t, func(t *testing.T, backend git.Backend) {
		ctx := context.Background()
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		client := newClient(t, backend, scene.Dir)

		remotes, err := client.Remotes(ctx)
		require.NoError(t, err)
		require.Empty(t, remotes)

		url := "https://example.com/me/repo.git"
		require.NoError(t, client.AddRemote(ctx, "origin", url))

		remotes, err = client.Remotes(ctx)
		require.NoError(t, err)
		require.Equal(t, []git.RemoteInfo{{Name: "origin", FetchURL: url, PushURL: url}}, remotes)

		err = client.AddRemote(ctx, "origin", "https://example.com/other.git")
		require.ErrorIs(t, err, gperrors.ErrRemoteAddFailed)
		require.True(t, gperrors.IsRemoteExists(err))

		err = client.AddRemote(ctx, "", url)
		require.Error(t, err)
		require.False(t, gperrors.IsRemoteExists(err))

		for _, name := range []string{"bad name", "a..b", "bad~name"} {
			err = client.AddRemote(ctx, name, url)
			var addErr *gperrors.RemoteAddError
			require.ErrorAs(t, err, &addErr, name)
			require.Equal(t, gperrors.RemoteInvalidName, addErr.Reason, name)
		}

		remotes, err = client.Remotes(ctx)
		require.NoError(t, err)
		require.Len(t, remotes, 1)
	})
}
