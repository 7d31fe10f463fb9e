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
)

func init() {
	Register(&SearchCmd{})
}

// SearchCmd implements the search command.
type SearchCmd struct{}

func (c *SearchCmd) Name() string      { return "search" }
func (c *SearchCmd) Aliases() []string { return nil }
func (c *SearchCmd) Synopsis() string  { return "Search task titles" }
func (c *SearchCmd) Usage() string     { return "todo search <query...>" }
func (c *SearchCmd) NeedsStore() bool  { return true }
func (c *SearchCmd) NeedsBackend() bool { return false }

func (c *SearchCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SearchCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, be remote.Backend, args []string, out, errOut io.Writer) int {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		fmt.Fprintln(errOut, "error: search query required")
		return exitcode.UserError
	}

	f := output.NewFormatter(cfg.Color)
	if !cfg.Quiet {
		f.Header(out, fmt.Sprintf("Search results for '%s'", query))
	}
	f.Tasks(out, st.Search(query))
	return exitcode.Success
}
