package git

import (
	"context"
	"fmt"
)

// StageAll stages all changes including untracked files and deletions
func (c *cliClient) StageAll(ctx context.Context) error {
	_, err := c.runner.Run(ctx, "add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}
