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
	Register(&DeleteCmd{})
}

// DeleteCmd implements the delete command.
type DeleteCmd struct{}

func (c *DeleteCmd) Name() string       { return "delete" }
func (c *DeleteCmd) Aliases() []string  { return []string{"rm"} }
func (c *DeleteCmd) Synopsis() string   { return "Delete a task" }
func (c *DeleteCmd) Usage() string      { return "todo delete <id>" }
func (c *DeleteCmd) NeedsStore() bool   { return true }
func (c *DeleteCmd) NeedsBackend() bool { return false }

func (c *DeleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DeleteCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, be remote.Backend, args []string, out, errOut io.Writer) int {
	id, err := parseTaskID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	t, err := st.Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.NotFound
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}
	if err := st.Save(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}

	if !cfg.Quiet {
		f := output.NewFormatter(cfg.Color)
		f.Removedf(out, "deleted: %s", t.Title)
	}
	return exitcode.Success
}
