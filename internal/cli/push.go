package cli

import (
	"github.com/spf13/cobra"

	"gitpush.dev/gitpush/internal/actions"
	"gitpush.dev/gitpush/internal/config"
	"gitpush.dev/gitpush/internal/runtime"
)

// newPushCmd creates the push command
func newPushCmd(opts *config.Options) *cobra.Command {
	var (
		message string
		dir     string
	)

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Stage all changes, commit, and push to GitHub",
		Long: `Stage all changes, commit, and push the current branch to origin.

When no message is given a timestamped "Update: ..." message is used.
If the push is rejected it is retried once with --set-upstream. The
commit is kept even when both attempts fail.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, dir, func(ctx *runtime.Context) error {
				return actions.PushAction(ctx, actions.PushOptions{Message: message})
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory to push (defaults to current directory)")

	return cmd
}
