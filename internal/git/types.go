package git

// DefaultRemote is the remote name the commands push to and register
const DefaultRemote = "origin"

// StatusCode is a single-character file state, as printed by git status --short
type StatusCode byte

const (
	Unmodified         StatusCode = ' '
	Modified           StatusCode = 'M'
	Added              StatusCode = 'A'
	Deleted            StatusCode = 'D'
	Renamed            StatusCode = 'R'
	Copied             StatusCode = 'C'
	UpdatedButUnmerged StatusCode = 'U'
	Untracked          StatusCode = '?'
)

// IsSet reports whether the code carries a change
func (c StatusCode) IsSet() bool {
	return c != Unmodified && c != 0
}

func (c StatusCode) String() string {
	if c == 0 {
		return string(Unmodified)
	}
	return string(c)
}

// FileStatus is the state of one path in the index and the working tree
type FileStatus struct {
	Path       string
	Index      StatusCode
	WorkingDir StatusCode
}

// IsUntracked reports whether either side marks the path as untracked
func (f FileStatus) IsUntracked() bool {
	return f.Index == Untracked || f.WorkingDir == Untracked
}

// RepositoryStatus is a snapshot of the working tree relative to HEAD and
// the upstream branch. Files only contains entries with at least one code set.
type RepositoryStatus struct {
	Branch   string
	Tracking string
	Ahead    int
	Behind   int
	Files    []FileStatus
}

// IsClean reports whether there are no changes and no divergence from upstream
func (s RepositoryStatus) IsClean() bool {
	return s.Ahead == 0 && s.Behind == 0 && len(s.Files) == 0
}

// BranchInfo describes the checked out branch.
// Current is empty when HEAD is detached.
type BranchInfo struct {
	Current string
}

// RemoteInfo describes a configured remote
type RemoteInfo struct {
	Name     string
	FetchURL string
	PushURL  string
}

// PushOptions contains options for pushing a branch
type PushOptions struct {
	Remote string
	Branch string
	// SetUpstream records Remote/Branch as the branch's upstream tracking branch
	SetUpstream bool
}
