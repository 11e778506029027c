package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitpush.dev/gitpush/internal/config"
	"gitpush.dev/gitpush/internal/output"
	"gitpush.dev/gitpush/internal/runtime"
)

// run builds a runtime context for dir and hands it to fn.
// An empty dir means the current working directory.
func run(cmd *cobra.Command, opts *config.Options, dir string, fn func(ctx *runtime.Context) error) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	output.ConfigureColors(opts.NoColor)

	out := cmd.OutOrStdout()
	splog, err := output.NewSplogWithOptions(output.SplogOptions{
		Writer:  out,
		Verbose: opts.Verbose,
		LogFile: opts.LogFile,
	})
	if err != nil {
		return err
	}
	defer func() { _ = splog.Close() }()

	// The spinner only runs when writing straight to a terminal
	interactive := out == os.Stdout && output.IsTTY()
	progress := output.NewProgress(splog, interactive)

	ctx, err := runtime.NewContextForDir(cmd.Context(), *opts, dir, splog, progress)
	if err != nil {
		return err
	}
	splog.Debug("using %s backend in %s", opts.GitBackend(), ctx.Client.Dir())
	return fn(ctx)
}
