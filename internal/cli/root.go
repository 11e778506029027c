// Package cli wires the git-push commands to cobra.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitpush.dev/gitpush/internal/config"
	"gitpush.dev/gitpush/internal/git"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	opts := config.DefaultOptions()

	rootCmd := &cobra.Command{
		Use:   "git-push",
		Short: "A CLI tool to help manage git operations and push code to GitHub",
		Long: `git-push stages, commits and pushes every change in one step.

It also reports repository status and initializes repositories with an
origin remote.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.Backend, "backend", opts.Backend, fmt.Sprintf("Git implementation to use %v", git.Backends))
	flags.BoolVar(&opts.Verbose, "verbose", false, "Show debug output")
	flags.StringVar(&opts.LogFile, "log-file", "", "Write a rotating debug log to this file")
	flags.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newPushCmd(&opts))
	rootCmd.AddCommand(newStatusCmd(&opts))
	rootCmd.AddCommand(newInitCmd(&opts))

	return rootCmd
}
