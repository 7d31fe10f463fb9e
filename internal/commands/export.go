package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/export"
	"todo/internal/output"
	"todo/internal/remote"
	"todo/internal/store"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command.
type ExportCmd struct {
	format string
	output string
}

// SetOptions sets the flag values directly (for testing).
func (c *ExportCmd) SetOptions(format, outPath string) {
	c.format = format
	c.output = outPath
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Export all tasks" }
func (c *ExportCmd) Usage() string {
	return "todo export [--format json|csv|pdf] [--output <path>]"
}
func (c *ExportCmd) NeedsStore() bool   { return true }
func (c *ExportCmd) NeedsBackend() bool { return false }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", "json", "")
	fs.StringVar(&c.output, "output", "", "")
	fs.StringVar(&c.output, "o", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, be remote.Backend, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	format, err := export.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	w := out
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(errOut, "error: create output file: %v\n", err)
			return exitcode.IOError
		}
		defer file.Close()
		w = file
	}

	if err := export.Write(w, format, st.Tasks()); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}

	if c.output != "" && !cfg.Quiet {
		f := output.NewFormatter(cfg.Color)
		f.Successf(out, "exported %d tasks to %s", st.Len(), c.output)
	}
	return exitcode.Success
}
