// Package config holds the global options shared by every git-push command.
//
// Options are built from persistent command-line flags. Nothing is read from
// the environment and nothing is persisted between runs.
package config
