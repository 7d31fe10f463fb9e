package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/remote"
	"todo/internal/store"
	"todo/internal/task"
)

func init() {
	Register(&PushCmd{})
}

// PushCmd implements the push command: a one-way export of open tasks to
// a remote task list. The local store stays the source of truth.
type PushCmd struct {
	listName string
}

// SetListName sets the list name (for testing).
func (c *PushCmd) SetListName(name string) {
	c.listName = name
}

func (c *PushCmd) Name() string       { return "push" }
func (c *PushCmd) Aliases() []string  { return nil }
func (c *PushCmd) Synopsis() string   { return "Push open tasks to Google Tasks" }
func (c *PushCmd) Usage() string      { return "todo push [--list <list-name>]" }
func (c *PushCmd) NeedsStore() bool   { return true }
func (c *PushCmd) NeedsBackend() bool { return true }

func (c *PushCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *PushCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, be remote.Backend, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	var list remote.TaskList
	var err error
	if c.listName != "" {
		list, err = be.ResolveList(ctx, c.listName)
		if err != nil {
			if strings.Contains(err.Error(), "not found") {
				fmt.Fprintf(errOut, "error: list not found: %s\n", c.listName)
				return exitcode.UserError
			}
			if strings.Contains(err.Error(), "ambiguous") {
				fmt.Fprintf(errOut, "error: ambiguous list name: %s\n", c.listName)
				return exitcode.UserError
			}
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return exitcode.BackendError
		}
	} else {
		list, err = be.DefaultList(ctx)
		if err != nil {
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return exitcode.BackendError
		}
	}

	open := st.List(store.Filter{Completed: false})
	for _, t := range open {
		if err := be.CreateTask(ctx, list.ID, remoteTask(t)); err != nil {
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return exitcode.BackendError
		}
	}

	if !cfg.Quiet {
		f := output.NewFormatter(cfg.Color)
		f.Successf(out, "pushed %d tasks to %s", len(open), list.Title)
	}
	return exitcode.Success
}

// remoteTask maps a local task to its pushed form. Priority and categories
// have no first-class fields remotely, so they travel in the notes.
func remoteTask(t task.Task) remote.Task {
	var notes []string
	notes = append(notes, "priority: "+string(t.Priority))
	if len(t.Categories) > 0 {
		notes = append(notes, "categories: "+strings.Join(t.Categories, ", "))
	}
	return remote.Task{
		Title: t.Title,
		Notes: strings.Join(notes, "\n"),
		Due:   t.DueDate,
	}
}
