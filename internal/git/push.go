package git

import (
	"context"
	"fmt"

	gperrors "gitpush.dev/gitpush/internal/errors"
)

// pushArgs builds the git push arguments for opts
func pushArgs(opts PushOptions) []string {
	args := []string{"push"}
	if opts.SetUpstream {
		args = append(args, "--set-upstream")
	}
	remote := opts.Remote
	if remote == "" {
		remote = DefaultRemote
	}
	return append(args, remote, opts.Branch)
}

// Push pushes a branch to a remote, optionally setting it as upstream
func (c *cliClient) Push(ctx context.Context, opts PushOptions) error {
	if opts.Branch == "" {
		return fmt.Errorf("failed to push: %w", gperrors.ErrNotOnBranch)
	}
	if _, err := c.runner.Run(ctx, pushArgs(opts)...); err != nil {
		return fmt.Errorf("failed to push branch %s: %w", opts.Branch, err)
	}
	return nil
}
