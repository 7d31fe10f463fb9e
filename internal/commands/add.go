package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/remote"
	"todo/internal/store"
	"todo/internal/task"
)

func init() {
	Register(&AddCmd{})
}

// multiFlag collects a repeatable string flag.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

// AddCmd implements the add command.
type AddCmd struct {
	priority string
	due      string
	tags     multiFlag
}

// SetOptions sets the flag values directly (for testing).
func (c *AddCmd) SetOptions(priority, due string, tags []string) {
	c.priority = priority
	c.due = due
	c.tags = tags
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "todo add [--priority <level>] [--due <YYYY-MM-DD>] [--tag <name>]... <title...>"
}
func (c *AddCmd) NeedsStore() bool   { return true }
func (c *AddCmd) NeedsBackend() bool { return false }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.priority, "p", "", "")
	fs.StringVar(&c.due, "due", "", "")
	fs.Var(&c.tags, "tag", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, be remote.Backend, args []string, out, errOut io.Writer) int {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	pri := cfg.DefaultPriority
	if c.priority != "" {
		var err error
		pri, err = task.ParsePriority(c.priority)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}

	var due *time.Time
	if c.due != "" {
		d, err := task.ParseDueDate(c.due)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		due = &d
	}

	t := st.Add(title, pri, due, c.tags)
	if err := st.Save(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}

	if !cfg.Quiet {
		f := output.NewFormatter(cfg.Color)
		f.Successf(out, "added %d: %s", t.ID, t.Title)
	}
	return exitcode.Success
}
