package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/remote"
	"todo/internal/store"
	"todo/internal/task"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Shows pending tasks by default; --completed flips to the done side.
type ListCmd struct {
	completed bool
	priority  string
	tag       string
}

// SetFilter sets the flag values directly (for testing).
func (c *ListCmd) SetFilter(completed bool, priority, tag string) {
	c.completed = completed
	c.priority = priority
	c.tag = tag
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string {
	return "todo list [--completed] [--priority <level>] [--tag <name>]"
}
func (c *ListCmd) NeedsStore() bool   { return true }
func (c *ListCmd) NeedsBackend() bool { return false }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.completed, "completed", false, "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.priority, "p", "", "")
	fs.StringVar(&c.tag, "tag", "", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, be remote.Backend, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	filter := store.Filter{Completed: c.completed, Category: c.tag}
	if c.priority != "" {
		pri, err := task.ParsePriority(c.priority)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		filter.Priority = pri
	}

	f := output.NewFormatter(cfg.Color)
	if !cfg.Quiet {
		f.Header(out, "Tasks")
	}
	f.Tasks(out, st.List(filter))
	return exitcode.Success
}
