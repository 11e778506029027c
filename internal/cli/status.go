package cli

import (
	"github.com/spf13/cobra"

	"gitpush.dev/gitpush/internal/actions"
	"gitpush.dev/gitpush/internal/config"
	"gitpush.dev/gitpush/internal/runtime"
)

// newStatusCmd creates the status command
func newStatusCmd(opts *config.Options) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:          "status",
		Aliases:      []string{"st"},
		Short:        "Check the current git status",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, dir, func(ctx *runtime.Context) error {
				return actions.StatusAction(ctx, actions.StatusOptions{})
			})
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory to check (defaults to current directory)")

	return cmd
}
