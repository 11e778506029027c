package runtime

import (
	"context"
	"time"

	"gitpush.dev/gitpush/internal/config"
	"gitpush.dev/gitpush/internal/git"
	"gitpush.dev/gitpush/internal/output"
)

// Context provides access to the repository client and output for commands
type Context struct {
	context.Context
	Client   git.Client
	Splog    *output.Splog
	Progress output.Progress
	Clock    func() time.Time
}

// NewContextWithSplog creates a new context that writes through splog
func NewContextWithSplog(ctx context.Context, client git.Client, splog *output.Splog, progress output.Progress) *Context {
	if progress == nil {
		progress = output.NewLineProgress(splog)
	}
	return &Context{
		Context:  ctx,
		Client:   client,
		Splog:    splog,
		Progress: progress,
		Clock:    time.Now,
	}
}

// NewContextForDir builds the client for dir from the global options
func NewContextForDir(ctx context.Context, opts config.Options, dir string, splog *output.Splog, progress output.Progress) (*Context, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	client, err := git.NewClient(opts.GitBackend(), dir)
	if err != nil {
		return nil, err
	}
	return NewContextWithSplog(ctx, client, splog, progress), nil
}

// Now returns the current time from the context clock
func (c *Context) Now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock()
}
