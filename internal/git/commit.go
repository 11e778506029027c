package git

import (
	"context"
	"fmt"
)

// Commit creates a commit of the staged changes with the given message
func (c *cliClient) Commit(ctx context.Context, message string) error {
	if _, err := c.runner.Run(ctx, "commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
