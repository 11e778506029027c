package actions

import (
	"fmt"

	gperrors "gitpush.dev/gitpush/internal/errors"
	"gitpush.dev/gitpush/internal/git"
	"gitpush.dev/gitpush/internal/output"
	"gitpush.dev/gitpush/internal/runtime"
)

// PushAction stages every change, commits it and pushes the current branch to origin.
// A rejected push is retried once with upstream tracking; the commit is kept either way.
func PushAction(ctx *runtime.Context, opts PushOptions) error {
	client := ctx.Client
	splog := ctx.Splog

	isRepo, err := client.IsRepository(ctx)
	if err != nil {
		return err
	}
	if !isRepo {
		return gperrors.NewNotARepositoryError(client.Dir())
	}

	progress := ctx.Progress
	progress.Start("Checking repository status...")

	status, err := client.Status(ctx)
	if err != nil {
		progress.Fail("Operation failed")
		return err
	}
	if len(status.Files) == 0 {
		progress.Info("No changes to commit")
		return nil
	}

	progress.Update("Staging changes...")
	if err := client.StageAll(ctx); err != nil {
		progress.Fail("Operation failed")
		return err
	}

	message := opts.Message
	if message == "" {
		message = GeneratedCommitMessage(ctx.Now())
	}

	progress.Update(fmt.Sprintf("Committing changes: %q...", message))
	if err := client.Commit(ctx, message); err != nil {
		progress.Fail("Operation failed")
		return err
	}

	progress.Update("Pushing to GitHub...")
	branch, err := client.CurrentBranch(ctx)
	if err != nil {
		progress.Fail("Operation failed")
		return err
	}
	if branch.Current == "" {
		progress.Fail("Operation failed")
		return fmt.Errorf("cannot push: %w", gperrors.ErrNotOnBranch)
	}

	if err := pushWithUpstreamRetry(ctx, branch.Current); err != nil {
		return err
	}

	progress.Succeed(output.ClassSuccess.Render(fmt.Sprintf("Successfully pushed to GitHub (%s)", branch.Current)))

	splog.Newline()
	splog.Info("%s", output.ColorCyan("Commit details:"))
	splog.Info("%s", output.ColorDim("  Branch: "+branch.Current))
	splog.Info("%s", output.ColorDim("  Message: "+message))
	splog.Info("%s", output.ColorDim(fmt.Sprintf("  Files changed: %d", len(status.Files))))
	return nil
}

// pushWithUpstreamRetry pushes branch to origin, retrying once with --set-upstream
func pushWithUpstreamRetry(ctx *runtime.Context, branch string) error {
	first := ctx.Client.Push(ctx, git.PushOptions{
		Remote: git.DefaultRemote,
		Branch: branch,
	})
	if first == nil {
		return nil
	}

	ctx.Splog.Debug("push of %s failed: %v", branch, first)
	ctx.Progress.Warn("Push failed - attempting to set upstream branch...")
	ctx.Progress.Start("Pushing to GitHub with upstream tracking...")

	retry := ctx.Client.Push(ctx, git.PushOptions{
		Remote:      git.DefaultRemote,
		Branch:      branch,
		SetUpstream: true,
	})
	if retry == nil {
		return nil
	}

	ctx.Splog.Debug("push of %s with upstream failed: %v", branch, retry)
	ctx.Progress.Fail("Failed to push to remote")
	return gperrors.NewPushError(git.DefaultRemote, branch, first, retry)
}
