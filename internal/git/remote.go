package git

import (
	"context"
	"fmt"
	"strings"

	gperrors "gitpush.dev/gitpush/internal/errors"
)

// exitRemoteExists is the status git remote add exits with when the name is taken
const exitRemoteExists = 3

// AddRemote registers a new remote.
// Failures are returned as *errors.RemoteAddError tagged with a reason.
func (c *cliClient) AddRemote(ctx context.Context, name, url string) error {
	if strings.TrimSpace(name) == "" {
		return gperrors.NewRemoteAddError(name, url, gperrors.RemoteInvalidName, nil)
	}
	// git remote add accepts a name only when refs/remotes/<name>/ is a valid ref prefix
	if _, err := c.runner.Run(ctx, "check-ref-format", "refs/remotes/"+name+"/HEAD"); err != nil {
		if exitCode(err) == 1 {
			return gperrors.NewRemoteAddError(name, url, gperrors.RemoteInvalidName, err)
		}
		return gperrors.NewRemoteAddError(name, url, gperrors.RemoteAddOther, err)
	}

	_, err := c.runner.Run(ctx, "remote", "add", name, url)
	if err == nil {
		return nil
	}

	reason := gperrors.RemoteAddOther
	if exitCode(err) == exitRemoteExists {
		reason = gperrors.RemoteExists
	}
	return gperrors.NewRemoteAddError(name, url, reason, err)
}

// Remotes lists configured remotes with their fetch and push URLs
func (c *cliClient) Remotes(ctx context.Context) ([]RemoteInfo, error) {
	lines, err := c.runner.RunLines(ctx, "remote", "-v")
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	return parseRemoteVerbose(lines), nil
}

// parseRemoteVerbose parses `git remote -v` output, keeping first-seen order.
// Each line looks like "origin\tgit@host:repo.git (fetch)".
func parseRemoteVerbose(lines []string) []RemoteInfo {
	var remotes []RemoteInfo
	index := map[string]int{}

	for _, line := range lines {
		name, rest, ok := strings.Cut(line, "\t")
		if !ok || name == "" {
			continue
		}
		url, kind := rest, ""
		if i := strings.LastIndex(rest, " ("); i >= 0 && strings.HasSuffix(rest, ")") {
			url, kind = rest[:i], rest[i+2:len(rest)-1]
		}

		i, seen := index[name]
		if !seen {
			remotes = append(remotes, RemoteInfo{Name: name})
			i = len(remotes) - 1
			index[name] = i
		}
		switch kind {
		case "push":
			remotes[i].PushURL = url
		default:
			remotes[i].FetchURL = url
		}
	}

	for i := range remotes {
		if remotes[i].PushURL == "" {
			remotes[i].PushURL = remotes[i].FetchURL
		}
	}
	return remotes
}
