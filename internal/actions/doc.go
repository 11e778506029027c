// Package actions provides the business logic behind each git-push command.
//
// Each action corresponds to a command (push, status, init) and sequences
// calls on the repository client held by runtime.Context.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Client, Splog, Progress and Clock
//   - Actions are stateless and call the client strictly in order
//   - Failures are returned as errors from internal/errors; nothing is rolled back
package actions
