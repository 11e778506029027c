// Package git provides the repository client used by the git-push commands.
//
// Client is a capability interface over a version-control engine:
//   - Repository checks and initialization
//   - Working tree status (per-file codes, ahead/behind counts)
//   - Staging, committing and pushing
//   - Remote registration and lookup
//
// Two backends implement it: the git executable (BackendCLI) and an embedded
// go-git repository (BackendNative). This package should be the only place
// where git commands are executed.
package git
