package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Status returns the per-file state and ahead/behind counts of the work tree
func (c *cliClient) Status(ctx context.Context) (RepositoryStatus, error) {
	out, err := c.runner.RunRaw(ctx, "status", "--porcelain=v2", "--branch", "--untracked-files=all", "-z")
	if err != nil {
		return RepositoryStatus{}, fmt.Errorf("failed to get status: %w", err)
	}
	status, err := parseStatusPorcelainV2(out)
	if err != nil {
		return RepositoryStatus{}, fmt.Errorf("parse git status: %w", err)
	}
	return status, nil
}

// parseStatusPorcelainV2 parses NUL-terminated `git status --porcelain=v2 --branch -z` output
func parseStatusPorcelainV2(out string) (RepositoryStatus, error) {
	var res RepositoryStatus
	records := strings.Split(out, "\x00")

	for i := 0; i < len(records); i++ {
		line := records[i]
		if len(line) < 2 {
			continue
		}
		switch line[0] {
		case '#':
			if err := parseBranchHeader(&res, line); err != nil {
				return res, err
			}
		case '1':
			// 1 XY sub mH mI mW hH hI path
			parts := strings.SplitN(line, " ", 9)
			if len(parts) != 9 {
				return res, fmt.Errorf("unexpected status entry: %q", line)
			}
			res.Files = append(res.Files, newFileStatus(parts[8], parts[1]))
		case '2':
			// 2 XY sub mH mI mW hH hI Xscore path, followed by the original path record
			parts := strings.SplitN(line, " ", 10)
			if len(parts) != 10 {
				return res, fmt.Errorf("unexpected status entry: %q", line)
			}
			res.Files = append(res.Files, newFileStatus(parts[9], parts[1]))
			i++
		case 'u':
			// u XY sub m1 m2 m3 mW h1 h2 h3 path
			parts := strings.SplitN(line, " ", 11)
			if len(parts) != 11 {
				return res, fmt.Errorf("unexpected status entry: %q", line)
			}
			res.Files = append(res.Files, newFileStatus(parts[10], parts[1]))
		case '?':
			res.Files = append(res.Files, FileStatus{
				Path:       line[2:],
				Index:      Untracked,
				WorkingDir: Untracked,
			})
		default:
			// '!' ignored
		}
	}
	return res, nil
}

func parseBranchHeader(res *RepositoryStatus, line string) error {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nil
	}
	switch fields[1] {
	case "branch.head":
		if fields[2] != "(detached)" {
			res.Branch = fields[2]
		}
	case "branch.upstream":
		res.Tracking = fields[2]
	case "branch.ab":
		if len(fields) != 4 {
			return fmt.Errorf("unexpected branch header: %q", line)
		}
		ahead, err := strconv.Atoi(strings.TrimPrefix(fields[2], "+"))
		if err != nil {
			return fmt.Errorf("unexpected branch header: %q", line)
		}
		behind, err := strconv.Atoi(strings.TrimPrefix(fields[3], "-"))
		if err != nil {
			return fmt.Errorf("unexpected branch header: %q", line)
		}
		res.Ahead, res.Behind = ahead, behind
	}
	return nil
}

// newFileStatus builds an entry from a porcelain v2 XY field, where '.' means unmodified
func newFileStatus(path, xy string) FileStatus {
	code := func(b byte) StatusCode {
		if b == '.' {
			return Unmodified
		}
		return StatusCode(b)
	}
	return FileStatus{
		Path:       path,
		Index:      code(xy[0]),
		WorkingDir: code(xy[1]),
	}
}
