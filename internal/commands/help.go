package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/remote"
	"todo/internal/store"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "todo help" }
func (c *HelpCmd) NeedsStore() bool   { return false }
func (c *HelpCmd) NeedsBackend() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, be remote.Backend, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todo                                               List pending tasks
  todo add [--priority <level>] [--due <YYYY-MM-DD>] [--tag <name>]... <title...>
  todo list [--completed] [--priority <level>] [--tag <name>]
  todo search <query...>
  todo complete <id>
  todo delete <id>
  todo export [--format json|csv|pdf] [--output <path>]
  todo push [--list <list-name>]
  todo login
  todo logout
  todo help
  todo version

Aliases:
  ls -> list, done -> complete, rm -> delete

Common flags:
  --config <dir>   Override config directory
  --file <path>    Override store file path
  --quiet          Suppress informational output
  --no-color       Disable styled output
  --debug          Print debug logs to stderr
`
