package testhelpers

import (
	"context"
	"fmt"
	"strings"

	gperrors "gitpush.dev/gitpush/internal/errors"
	"gitpush.dev/gitpush/internal/git"
)

// FakeClient implements git.Client in memory and records every call.
// Fields prefixed with Err make the matching operation fail.
type FakeClient struct {
	DirPath   string
	IsRepo    bool
	Repo      git.RepositoryStatus
	Branch    git.BranchInfo
	RemoteSet []git.RemoteInfo

	ErrStatus    error
	ErrStage     error
	ErrCommit    error
	ErrBranch    error
	ErrRemotes   error
	ErrInit      error
	ErrAddRemote error
	// PushErrors are returned by successive Push calls; later calls succeed
	PushErrors []error

	Calls   []string
	Commits []string
	Pushes  []git.PushOptions
}

var _ git.Client = (*FakeClient)(nil)

// NewFakeClient returns a fake for an initialized repository on main
func NewFakeClient() *FakeClient {
	return &FakeClient{
		DirPath: "/work/repo",
		IsRepo:  true,
		Branch:  git.BranchInfo{Current: "main"},
	}
}

func (f *FakeClient) record(format string, args ...interface{}) {
	f.Calls = append(f.Calls, fmt.Sprintf(format, args...))
}

// CallNames returns the operation names in call order, without arguments
func (f *FakeClient) CallNames() []string {
	names := make([]string, 0, len(f.Calls))
	for _, call := range f.Calls {
		name, _, _ := strings.Cut(call, " ")
		names = append(names, name)
	}
	return names
}

func (f *FakeClient) Dir() string {
	return f.DirPath
}

func (f *FakeClient) IsRepository(_ context.Context) (bool, error) {
	f.record("IsRepository")
	return f.IsRepo, nil
}

func (f *FakeClient) Init(_ context.Context) error {
	f.record("Init")
	if f.ErrInit != nil {
		return f.ErrInit
	}
	f.IsRepo = true
	return nil
}

func (f *FakeClient) Status(_ context.Context) (git.RepositoryStatus, error) {
	f.record("Status")
	if !f.IsRepo {
		return git.RepositoryStatus{}, gperrors.NewNotARepositoryError(f.DirPath)
	}
	return f.Repo, f.ErrStatus
}

func (f *FakeClient) StageAll(_ context.Context) error {
	f.record("StageAll")
	return f.ErrStage
}

func (f *FakeClient) Commit(_ context.Context, message string) error {
	f.record("Commit %s", message)
	if f.ErrCommit != nil {
		return f.ErrCommit
	}
	f.Commits = append(f.Commits, message)
	return nil
}

func (f *FakeClient) CurrentBranch(_ context.Context) (git.BranchInfo, error) {
	f.record("CurrentBranch")
	return f.Branch, f.ErrBranch
}

func (f *FakeClient) Push(_ context.Context, opts git.PushOptions) error {
	f.record("Push %s %s upstream=%t", opts.Remote, opts.Branch, opts.SetUpstream)
	f.Pushes = append(f.Pushes, opts)
	if len(f.PushErrors) == 0 {
		return nil
	}
	err := f.PushErrors[0]
	f.PushErrors = f.PushErrors[1:]
	return err
}

// AddRemote behaves like git: an existing name is rejected with RemoteExists
func (f *FakeClient) AddRemote(_ context.Context, name, url string) error {
	f.record("AddRemote %s %s", name, url)
	if f.ErrAddRemote != nil {
		return f.ErrAddRemote
	}
	for _, remote := range f.RemoteSet {
		if remote.Name == name {
			return gperrors.NewRemoteAddError(name, url, gperrors.RemoteExists, nil)
		}
	}
	f.RemoteSet = append(f.RemoteSet, git.RemoteInfo{Name: name, FetchURL: url, PushURL: url})
	return nil
}

func (f *FakeClient) Remotes(_ context.Context) ([]git.RemoteInfo, error) {
	f.record("Remotes")
	return f.RemoteSet, f.ErrRemotes
}
