package git

import (
	"context"
	"fmt"
)

// cliClient implements Client by running the git executable in a directory
type cliClient struct {
	runner *CommandRunner
}

// NewCLIClient returns a Client backed by the git executable
func NewCLIClient(dir string) Client {
	return &cliClient{runner: NewCommandRunner(dir)}
}

func (c *cliClient) Dir() string {
	return c.runner.WorkingDir()
}

// IsRepository reports whether the directory is inside a git work tree
func (c *cliClient) IsRepository(ctx context.Context) (bool, error) {
	output, err := c.runner.Run(ctx, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		// git exits 128 with "not a git repository" outside a work tree
		if exitCode(err) == 128 {
			return false, nil
		}
		return false, fmt.Errorf("failed to check repository: %w", err)
	}
	return output == "true", nil
}

// Init creates an empty repository in the directory
func (c *cliClient) Init(ctx context.Context) error {
	if _, err := c.runner.Run(ctx, "init"); err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	return nil
}
