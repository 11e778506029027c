package actions

import "time"

// CommitTimestampLayout formats the timestamp of generated commit messages
const CommitTimestampLayout = "1/2/2006, 3:04:05 PM"

// GeneratedCommitPrefix starts every generated commit message
const GeneratedCommitPrefix = "Update: "

// PushOptions contains options for the push command
type PushOptions struct {
	// Message is the commit message; a timestamped one is generated when empty
	Message string
}

// StatusOptions contains options for the status command
type StatusOptions struct {
	// Currently no options, but structure is here for future extensibility
}

// InitOptions contains options for the init command
type InitOptions struct {
	// RemoteURL, when set, is registered as origin
	RemoteURL string
}

// GeneratedCommitMessage builds the message used when none is given
func GeneratedCommitMessage(now time.Time) string {
	return GeneratedCommitPrefix + now.Format(CommitTimestampLayout)
}
