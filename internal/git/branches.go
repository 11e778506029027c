package git

import (
	"context"
	"fmt"
)

// CurrentBranch returns the checked out branch.
// An unborn branch is reported by name; a detached HEAD gives an empty name.
func (c *cliClient) CurrentBranch(ctx context.Context) (BranchInfo, error) {
	output, err := c.runner.Run(ctx, "branch", "--show-current")
	if err != nil {
		return BranchInfo{}, fmt.Errorf("failed to get current branch: %w", err)
	}
	return BranchInfo{Current: output}, nil
}
