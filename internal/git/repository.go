package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	gperrors "gitpush.dev/gitpush/internal/errors"
)

// nativeClient implements Client on top of an embedded go-git repository
type nativeClient struct {
	dir string
}

// NewNativeClient returns a Client backed by go-git
func NewNativeClient(dir string) Client {
	return &nativeClient{dir: dir}
}

func (c *nativeClient) Dir() string {
	return c.dir
}

// open opens the repository containing dir.
// dir must exist, and directories inside a .git directory have no work tree.
func (c *nativeClient) open() (*gogit.Repository, error) {
	info, err := os.Stat(c.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("failed to open repository: %s is not a directory", c.dir)
	}
	if insideGitDir(c.dir) {
		return nil, gperrors.NewNotARepositoryError(c.dir)
	}

	repo, err := gogit.PlainOpenWithOptions(c.dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return nil, gperrors.NewNotARepositoryError(c.dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return repo, nil
}

// insideGitDir reports whether dir is a .git directory or below one
func insideGitDir(dir string) bool {
	for d := filepath.Clean(dir); ; {
		if filepath.Base(d) == gogit.GitDirName {
			return true
		}
		parent := filepath.Dir(d)
		if parent == d {
			return false
		}
		d = parent
	}
}

// worktree opens the repository and its work tree
func (c *nativeClient) worktree() (*gogit.Repository, *gogit.Worktree, error) {
	repo, err := c.open()
	if err != nil {
		return nil, nil, err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	return repo, wt, nil
}

func (c *nativeClient) IsRepository(_ context.Context) (bool, error) {
	repo, err := c.open()
	if errors.Is(err, gperrors.ErrNotARepository) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	// Bare repositories have no work tree to stage from
	if _, err := repo.Worktree(); errors.Is(err, gogit.ErrIsBareRepository) {
		return false, nil
	}
	return true, nil
}

func (c *nativeClient) Init(_ context.Context) error {
	if _, err := os.Stat(c.dir); err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	if _, err := gogit.PlainInit(c.dir, false); err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	return nil
}

func (c *nativeClient) Status(_ context.Context) (RepositoryStatus, error) {
	repo, wt, err := c.worktree()
	if err != nil {
		return RepositoryStatus{}, err
	}

	st, err := wt.Status()
	if err != nil {
		return RepositoryStatus{}, fmt.Errorf("failed to get status: %w", err)
	}

	paths := make([]string, 0, len(st))
	for path := range st {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var res RepositoryStatus
	for _, path := range paths {
		fs := st[path]
		entry := FileStatus{
			Path:       path,
			Index:      StatusCode(fs.Staging),
			WorkingDir: StatusCode(fs.Worktree),
		}
		if !entry.Index.IsSet() && !entry.WorkingDir.IsSet() {
			continue
		}
		res.Files = append(res.Files, entry)
	}

	files, err := detectRenames(repo, res.Files)
	if err != nil {
		return RepositoryStatus{}, err
	}
	res.Files = files

	if err := c.fillTracking(repo, &res); err != nil {
		return RepositoryStatus{}, err
	}
	return res, nil
}

// fillTracking sets branch, upstream and ahead/behind counts.
// Unborn branches and branches without an upstream report zero counts.
func (c *nativeClient) fillTracking(repo *gogit.Repository, res *RepositoryStatus) error {
	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return nil
	}
	res.Branch = head.Name().Short()

	cfg, err := repo.Config()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	branch, ok := cfg.Branches[res.Branch]
	if !ok || branch.Remote == "" || branch.Merge == "" {
		return nil
	}
	res.Tracking = branch.Remote + "/" + branch.Merge.Short()

	upstream, err := repo.Reference(plumbing.NewRemoteReferenceName(branch.Remote, branch.Merge.Short()), true)
	if err != nil {
		// Upstream configured but never fetched
		return nil
	}

	local, err := reachableCommits(repo, head.Hash())
	if err != nil {
		return err
	}
	remote, err := reachableCommits(repo, upstream.Hash())
	if err != nil {
		return err
	}
	for h := range local {
		if _, ok := remote[h]; !ok {
			res.Ahead++
		}
	}
	for h := range remote {
		if _, ok := local[h]; !ok {
			res.Behind++
		}
	}
	return nil
}

// detectRenames folds a staged deletion and a staged addition of identical
// content into one renamed entry at the new path. Only exact renames are found.
func detectRenames(repo *gogit.Repository, files []FileStatus) ([]FileStatus, error) {
	var deleted, added []int
	for i, f := range files {
		switch {
		case f.Index == Deleted && !f.WorkingDir.IsSet():
			deleted = append(deleted, i)
		case f.Index == Added:
			added = append(added, i)
		}
	}
	if len(deleted) == 0 || len(added) == 0 {
		return files, nil
	}

	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return files, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to read HEAD commit: %w", err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to read HEAD tree: %w", err)
	}
	idx, err := repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}

	// Deleted paths by the blob they had in HEAD
	sources := map[plumbing.Hash][]int{}
	for _, i := range deleted {
		f, err := tree.File(files[i].Path)
		if err != nil {
			continue
		}
		sources[f.Hash] = append(sources[f.Hash], i)
	}

	drop := map[int]bool{}
	for _, i := range added {
		entry, err := idx.Entry(files[i].Path)
		if err != nil {
			continue
		}
		candidates := sources[entry.Hash]
		if len(candidates) == 0 {
			continue
		}
		drop[candidates[0]] = true
		sources[entry.Hash] = candidates[1:]
		files[i].Index = Renamed
	}

	res := make([]FileStatus, 0, len(files)-len(drop))
	for i, f := range files {
		if !drop[i] {
			res = append(res, f)
		}
	}
	return res, nil
}

// reachableCommits returns every commit reachable from hash
func reachableCommits(repo *gogit.Repository, hash plumbing.Hash) (map[plumbing.Hash]struct{}, error) {
	iter, err := repo.Log(&gogit.LogOptions{From: hash})
	if err != nil {
		return nil, fmt.Errorf("failed to walk history from %s: %w", hash, err)
	}
	defer iter.Close()

	seen := map[plumbing.Hash]struct{}{}
	err = iter.ForEach(func(commit *object.Commit) error {
		seen[commit.Hash] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk history from %s: %w", hash, err)
	}
	return seen, nil
}

func (c *nativeClient) StageAll(_ context.Context) error {
	_, wt, err := c.worktree()
	if err != nil {
		return err
	}
	if err := wt.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

func (c *nativeClient) Commit(_ context.Context, message string) error {
	_, wt, err := c.worktree()
	if err != nil {
		return err
	}
	// Author and committer come from the repository and user config
	if _, err := wt.Commit(message, &gogit.CommitOptions{}); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func (c *nativeClient) CurrentBranch(_ context.Context) (BranchInfo, error) {
	repo, err := c.open()
	if err != nil {
		return BranchInfo{}, err
	}
	// Read HEAD without resolving so unborn branches still report a name
	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return BranchInfo{}, fmt.Errorf("failed to get HEAD: %w", err)
	}
	if head.Type() == plumbing.SymbolicReference && head.Target().IsBranch() {
		return BranchInfo{Current: head.Target().Short()}, nil
	}
	return BranchInfo{}, nil
}

func (c *nativeClient) Push(ctx context.Context, opts PushOptions) error {
	if opts.Branch == "" {
		return fmt.Errorf("failed to push: %w", gperrors.ErrNotOnBranch)
	}
	repo, err := c.open()
	if err != nil {
		return err
	}

	remote := opts.Remote
	if remote == "" {
		remote = DefaultRemote
	}
	ref := plumbing.NewBranchReferenceName(opts.Branch)
	err = repo.PushContext(ctx, &gogit.PushOptions{
		RemoteName: remote,
		RefSpecs:   []config.RefSpec{config.RefSpec(ref + ":" + ref)},
	})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to push branch %s: %w", opts.Branch, err)
	}

	if opts.SetUpstream {
		return setUpstream(repo, opts.Branch, remote)
	}
	return nil
}

// setUpstream records remote/branch as the upstream of branch
func setUpstream(repo *gogit.Repository, branch, remote string) error {
	cfg, err := repo.Config()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	cfg.Branches[branch] = &config.Branch{
		Name:   branch,
		Remote: remote,
		Merge:  plumbing.NewBranchReferenceName(branch),
	}
	if err := repo.SetConfig(cfg); err != nil {
		return fmt.Errorf("failed to set upstream for %s: %w", branch, err)
	}
	return nil
}

func (c *nativeClient) AddRemote(_ context.Context, name, url string) error {
	repo, err := c.open()
	if err != nil {
		return gperrors.NewRemoteAddError(name, url, gperrors.RemoteAddOther, err)
	}

	_, err = repo.CreateRemote(&config.RemoteConfig{
		Name: name,
		URLs: []string{url},
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gogit.ErrRemoteExists):
		return gperrors.NewRemoteAddError(name, url, gperrors.RemoteExists, err)
	case errors.Is(err, config.ErrRemoteConfigEmptyName), errors.Is(err, plumbing.ErrInvalidReferenceName):
		return gperrors.NewRemoteAddError(name, url, gperrors.RemoteInvalidName, err)
	default:
		return gperrors.NewRemoteAddError(name, url, gperrors.RemoteAddOther, err)
	}
}

func (c *nativeClient) Remotes(_ context.Context) ([]RemoteInfo, error) {
	repo, err := c.open()
	if err != nil {
		return nil, err
	}
	remotes, err := repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}

	infos := make([]RemoteInfo, 0, len(remotes))
	for _, r := range remotes {
		cfg := r.Config()
		info := RemoteInfo{Name: cfg.Name}
		if len(cfg.URLs) > 0 {
			info.FetchURL = cfg.URLs[0]
			info.PushURL = cfg.URLs[0]
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}
