package actions

import (
	"errors"

	gperrors "gitpush.dev/gitpush/internal/errors"
	"gitpush.dev/gitpush/internal/git"
	"gitpush.dev/gitpush/internal/output"
	"gitpush.dev/gitpush/internal/runtime"
)

// InitAction creates a repository when needed and optionally registers origin.
// Running it again, with or without the same remote, reports the existing state.
func InitAction(ctx *runtime.Context, opts InitOptions) error {
	client := ctx.Client
	splog := ctx.Splog
	progress := ctx.Progress

	progress.Start("Initializing git repository...")

	isRepo, err := client.IsRepository(ctx)
	if err != nil {
		progress.Fail("Failed to initialize repository")
		return err
	}
	if isRepo {
		progress.Info("Repository already initialized")
	} else {
		if err := client.Init(ctx); err != nil {
			progress.Fail("Failed to initialize repository")
			return err
		}
		progress.Update("Repository initialized")
	}

	if opts.RemoteURL == "" {
		progress.Succeed(output.ClassSuccess.Render("Repository initialized"))
		splog.Tip("%s", output.ClassWarning.Render("Add a remote with --remote option"))
		return nil
	}

	progress.Start("Adding remote...")
	err = client.AddRemote(ctx, git.DefaultRemote, opts.RemoteURL)
	if err == nil {
		progress.Succeed(output.ClassSuccess.Render("Repository initialized with remote"))
		splog.Info("%s", output.ColorDim("Remote URL: "+opts.RemoteURL))
		return nil
	}
	if !gperrors.IsRemoteExists(err) {
		progress.Fail("Failed to initialize repository")
		return err
	}

	existing, lookupErr := findRemote(ctx, git.DefaultRemote)
	if lookupErr != nil {
		progress.Fail("Failed to initialize repository")
		return errors.Join(err, lookupErr)
	}
	progress.Info(`Remote "` + git.DefaultRemote + `" already exists`)
	splog.Info("%s", output.ColorDim("Current remote: "+existing.PushURL))
	return nil
}

// findRemote looks up a configured remote by name
func findRemote(ctx *runtime.Context, name string) (git.RemoteInfo, error) {
	remotes, err := ctx.Client.Remotes(ctx)
	if err != nil {
		return git.RemoteInfo{}, err
	}
	for _, remote := range remotes {
		if remote.Name == name {
			return remote, nil
		}
	}
	return git.RemoteInfo{}, gperrors.NewRemoteAddError(name, "", gperrors.RemoteAddOther, errors.New("remote reported as existing but not found"))
}
