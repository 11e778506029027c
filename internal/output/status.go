package output

import (
	"fmt"
	"strings"

	"gitpush.dev/gitpush/internal/git"
)

// StatusSymbol returns the two-character marker for a file; first match wins
func StatusSymbol(f git.FileStatus) string {
	switch {
	case f.IsUntracked():
		return "??"
	case f.Index == git.Added:
		return "A "
	case f.Index == git.Modified || f.WorkingDir == git.Modified:
		return "M "
	case f.Index == git.Deleted || f.WorkingDir == git.Deleted:
		return "D "
	case f.Index == git.Renamed:
		return "R "
	default:
		return "  "
	}
}

// StatusClass returns the color class for a file, with the same precedence as StatusSymbol
func StatusClass(f git.FileStatus) ColorClass {
	switch {
	case f.IsUntracked():
		return ClassAlert
	case f.Index == git.Added:
		return ClassSuccess
	case f.Index == git.Modified || f.WorkingDir == git.Modified:
		return ClassWarning
	case f.Index == git.Deleted || f.WorkingDir == git.Deleted:
		return ClassAlert
	case f.Index == git.Renamed:
		return ClassNeutral
	default:
		return ClassMuted
	}
}

// StatusCounts tallies changed files. The staged and unstaged sets may overlap;
// untracked files are counted in neither.
type StatusCounts struct {
	Staged    int
	Unstaged  int
	Untracked int
}

// CountFiles computes StatusCounts for files
func CountFiles(files []git.FileStatus) StatusCounts {
	var c StatusCounts
	for _, f := range files {
		if f.IsUntracked() {
			c.Untracked++
			continue
		}
		if f.Index.IsSet() {
			c.Staged++
		}
		if f.WorkingDir.IsSet() {
			c.Unstaged++
		}
	}
	return c
}

// SummaryLine is one line of the repository summary
type SummaryLine struct {
	Text  string
	Class ColorClass
}

// StatusSummary returns the repository-level summary lines
func StatusSummary(status git.RepositoryStatus) []SummaryLine {
	var lines []SummaryLine

	if status.Ahead > 0 {
		lines = append(lines, SummaryLine{fmt.Sprintf("↑ %d commit(s) ahead of remote", status.Ahead), ClassWarning})
	}
	if status.Behind > 0 {
		lines = append(lines, SummaryLine{fmt.Sprintf("↓ %d commit(s) behind remote", status.Behind), ClassWarning})
	}
	if status.IsClean() {
		lines = append(lines, SummaryLine{"✓ Working tree clean", ClassSuccess})
	}

	if len(status.Files) > 0 {
		counts := CountFiles(status.Files)
		if counts.Staged > 0 {
			lines = append(lines, SummaryLine{fmt.Sprintf("✓ %d file(s) staged", counts.Staged), ClassSuccess})
		}
		if counts.Unstaged > 0 {
			lines = append(lines, SummaryLine{fmt.Sprintf("⚠ %d file(s) modified", counts.Unstaged), ClassWarning})
		}
		if counts.Untracked > 0 {
			lines = append(lines, SummaryLine{fmt.Sprintf("✗ %d file(s) untracked", counts.Untracked), ClassAlert})
		}
	}

	return lines
}

// FormatStatus renders the summary lines, colored by class
func FormatStatus(status git.RepositoryStatus) string {
	var b strings.Builder
	for i, line := range StatusSummary(status) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line.Class.Render(line.Text))
	}
	return b.String()
}

// FormatChanges renders one "  <symbol> <path>" line per file
func FormatChanges(files []git.FileStatus) string {
	lines := make([]string, 0, len(files))
	for _, f := range files {
		lines = append(lines, StatusClass(f).Render(fmt.Sprintf("  %s %s", StatusSymbol(f), f.Path)))
	}
	return strings.Join(lines, "\n")
}
