// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, bad flag value).
	UserError = 1

	// NotFound indicates an operation on an unknown task id.
	NotFound = 2

	// IOError indicates a store read/write/format problem.
	IOError = 3

	// AuthError indicates an auth/config error for the push backend.
	AuthError = 4

	// BackendError indicates a backend/API/network error.
	BackendError = 5
)
