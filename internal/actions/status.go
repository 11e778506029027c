package actions

import (
	"gitpush.dev/gitpush/internal/output"
	"gitpush.dev/gitpush/internal/runtime"
)

// StatusAction prints the branch, remotes, summary and changed files of the repository.
// Outside a repository it prints a notice and succeeds.
func StatusAction(ctx *runtime.Context, _ StatusOptions) error {
	client := ctx.Client
	splog := ctx.Splog

	isRepo, err := client.IsRepository(ctx)
	if err != nil {
		return err
	}
	if !isRepo {
		splog.Info("%s", output.ClassWarning.Render("Not a git repository"))
		return nil
	}

	progress := ctx.Progress
	progress.Start("Checking status...")

	status, err := client.Status(ctx)
	if err != nil {
		progress.Fail("Failed to check status")
		return err
	}
	remotes, err := client.Remotes(ctx)
	if err != nil {
		progress.Fail("Failed to check status")
		return err
	}
	branch, err := client.CurrentBranch(ctx)
	if err != nil {
		progress.Fail("Failed to check status")
		return err
	}
	progress.Stop()

	splog.Newline()
	splog.Info("%s", output.ColorHeader("📊 Git Status"))
	splog.Newline()
	splog.Info("%s %s", output.ColorBold("Branch:"), output.ColorBranchName(branch.Current))

	if len(remotes) > 0 {
		splog.Newline()
		splog.Info("%s", output.ColorBold("Remotes:"))
		for _, remote := range remotes {
			splog.Info("%s", output.ColorDim("  "+remote.Name+": "+remote.PushURL))
		}
	} else {
		splog.Newline()
		splog.Info("%s", output.ClassWarning.Render("No remotes configured"))
	}

	splog.Info("%s", output.FormatStatus(status))

	if len(status.Files) > 0 {
		splog.Newline()
		splog.Info("%s", output.ColorBold("Changes:"))
		splog.Info("%s", output.FormatChanges(status.Files))
	}
	return nil
}
