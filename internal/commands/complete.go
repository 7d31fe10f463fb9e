package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/remote"
	"todo/internal/store"
)

func init() {
	Register(&CompleteCmd{})
}

// CompleteCmd implements the complete command.
type CompleteCmd struct{}

func (c *CompleteCmd) Name() string       { return "complete" }
func (c *CompleteCmd) Aliases() []string  { return []string{"done"} }
func (c *CompleteCmd) Synopsis() string   { return "Mark a task completed" }
func (c *CompleteCmd) Usage() string      { return "todo complete <id>" }
func (c *CompleteCmd) NeedsStore() bool   { return true }
func (c *CompleteCmd) NeedsBackend() bool { return false }

func (c *CompleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CompleteCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, be remote.Backend, args []string, out, errOut io.Writer) int {
	id, err := parseTaskID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	f := output.NewFormatter(cfg.Color)

	t, err := st.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.NotFound
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}

	if t.Completed {
		if !cfg.Quiet {
			f.Warnf(out, "task %d is already completed", id)
		}
		return exitcode.Success
	}

	t, err = st.Complete(id)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}
	if err := st.Save(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}

	if !cfg.Quiet {
		f.Successf(out, "completed: %s", t.Title)
	}
	return exitcode.Success
}
