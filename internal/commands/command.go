// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/remote"
	"todo/internal/store"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command operates on the task store.
	// The dispatcher loads the store before Run and the command is
	// responsible for saving after a mutation.
	NeedsStore() bool

	// NeedsBackend returns true if the command talks to the remote
	// task service. Commands like help, version, login, logout return
	// false.
	NeedsBackend() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided; st is nil unless NeedsStore() returns
	// true; be is nil unless NeedsBackend() returns true.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, st *store.Store, be remote.Backend, args []string, out, errOut io.Writer) int
}
