package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git repository.
// Git global and system config are ignored for the duration of the test.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	isolateGitConfig(t)

	tmpDir := tempDir(t)
	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  tmpDir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}
	return scene
}

// NewEmptyScene creates a scene whose directory is not a Git repository.
func NewEmptyScene(t *testing.T) *Scene {
	t.Helper()
	isolateGitConfig(t)
	dir := tempDir(t)
	return &Scene{Dir: dir, Repo: OpenGitRepo(dir)}
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}

// RemoteSceneSetup creates a single commit and a bare "origin" remote with main pushed.
func RemoteSceneSetup(scene *Scene) error {
	if err := BasicSceneSetup(scene); err != nil {
		return err
	}
	if _, err := scene.Repo.CreateBareRemote("origin"); err != nil {
		return err
	}
	return scene.Repo.PushBranch("origin", "main")
}

// RemoteDir returns the bare repository path created by CreateBareRemote for name.
func (s *Scene) RemoteDir(name string) string {
	return s.Dir + "-" + name + ".git"
}

func isolateGitConfig(t *testing.T) {
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
}

// tempDir returns a fresh directory whose bare-remote siblings are also cleaned up.
func tempDir(t *testing.T) string {
	parent := t.TempDir()
	dir := filepath.Join(parent, "repo")
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	return dir
}
