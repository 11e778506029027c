package cli

import (
	"github.com/spf13/cobra"

	"gitpush.dev/gitpush/internal/actions"
	"gitpush.dev/gitpush/internal/config"
	"gitpush.dev/gitpush/internal/runtime"
)

// newInitCmd creates the init command
func newInitCmd(opts *config.Options) *cobra.Command {
	var (
		dir    string
		remote string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new git repository and set up GitHub remote",
		Long: `Initialize a git repository, or leave an existing one untouched.

With --remote the URL is registered as origin. An existing origin is
reported instead of replaced.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, dir, func(ctx *runtime.Context) error {
				return actions.InitAction(ctx, actions.InitOptions{RemoteURL: remote})
			})
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory to initialize (defaults to current directory)")
	cmd.Flags().StringVarP(&remote, "remote", "r", "", "GitHub remote URL")

	return cmd
}
