package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const textFileName = "test.txt"

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory using 'git init'.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	// Use git -c flags to avoid reading global config and set local configs
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "init", dir, "-b", "main")
	cmd.Env = gitEnv()
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	if err := repo.ConfigureUser(); err != nil {
		return nil, err
	}
	return repo, nil
}

// OpenGitRepo wraps an existing repository directory, such as one created by the code under test.
func OpenGitRepo(dir string) *GitRepo {
	return &GitRepo{Dir: dir}
}

// ConfigureUser sets the commit identity (required for commits).
func (r *GitRepo) ConfigureUser() error {
	if err := r.runGitCommand("config", "user.name", "Test User"); err != nil {
		return err
	}
	return r.runGitCommand("config", "user.email", "test@example.com")
}

// gitEnv returns the environment for git commands, ignoring global and system config.
func gitEnv() []string {
	return append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null", "GIT_CONFIG_NOSYSTEM=1")
}

// runGitCommand executes a git command in the repository directory.
func (r *GitRepo) runGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = gitEnv()
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git %s failed: %w, output: %s", strings.Join(args, " "), err, string(output))
	}
	return nil
}

// RunGitCommand executes a git command and returns an error if it fails.
func (r *GitRepo) RunGitCommand(args ...string) error {
	return r.runGitCommand(args...)
}

// RunGitCommandAndGetOutput executes a git command and returns its trimmed output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = gitEnv()
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// WriteFile writes a file relative to the repository root without staging it.
func (r *GitRepo) WriteFile(name, content string) error {
	filePath := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(filePath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// CreateChange creates a file change in the repository.
func (r *GitRepo) CreateChange(textValue string, prefix string, unstaged bool) error {
	fileName := textFileName
	if prefix != "" {
		fileName = prefix + "_" + fileName
	}
	if err := r.WriteFile(fileName, textValue); err != nil {
		return err
	}
	if !unstaged {
		return r.runGitCommand("add", fileName)
	}
	return nil
}

// CreateChangeAndCommit creates a file change and commits it.
func (r *GitRepo) CreateChangeAndCommit(textValue string, prefix string) error {
	if err := r.CreateChange(textValue, prefix, false); err != nil {
		return err
	}
	return r.runGitCommand("commit", "-m", textValue)
}

// CurrentBranchName returns the name of the checked out branch.
func (r *GitRepo) CurrentBranchName() (string, error) {
	return r.RunGitCommandAndGetOutput("branch", "--show-current")
}

// LastCommitMessage returns the subject and body of HEAD.
func (r *GitRepo) LastCommitMessage() (string, error) {
	return r.RunGitCommandAndGetOutput("log", "-1", "--format=%B")
}

// CommitCount returns the number of commits reachable from rev.
func (r *GitRepo) CommitCount(rev string) (int, error) {
	output, err := r.RunGitCommandAndGetOutput("rev-list", "--count", rev)
	if err != nil {
		return 0, err
	}
	var count int
	if _, err := fmt.Sscanf(output, "%d", &count); err != nil {
		return 0, fmt.Errorf("failed to parse commit count: %w", err)
	}
	return count, nil
}

// CreateBareRemote creates a bare git repository to act as a remote.
// Returns the path to the bare repository.
func (r *GitRepo) CreateBareRemote(name string) (string, error) {
	bareDir, err := r.CreateBareRepo(name)
	if err != nil {
		return "", err
	}
	if err := r.runGitCommand("remote", "add", name, bareDir); err != nil {
		return "", fmt.Errorf("failed to add remote: %w", err)
	}
	return bareDir, nil
}

// CreateBareRepo creates a bare repository next to the repo without registering it.
func (r *GitRepo) CreateBareRepo(name string) (string, error) {
	// Sibling directory unique to this repo so each test gets its own remote
	bareDir := r.Dir + "-" + name + ".git"

	cmd := exec.Command("git", "init", "--bare", bareDir)
	cmd.Env = gitEnv()
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to create bare repo: %w", err)
	}
	return bareDir, nil
}

// PushBranch pushes a branch to a remote and sets its upstream.
func (r *GitRepo) PushBranch(remote, branch string) error {
	return r.runGitCommand("push", "-u", remote, branch)
}

// RemoteBranchSHA returns the SHA of branch in the bare repository at bareDir.
func RemoteBranchSHA(bareDir, branch string) (string, error) {
	return OpenGitRepo(bareDir).RunGitCommandAndGetOutput("rev-parse", "refs/heads/"+branch)
}

// GetRevision returns the SHA of a revision (branch, tag, or commit reference).
func (r *GitRepo) GetRevision(rev string) (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", rev)
}
