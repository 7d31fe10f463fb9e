// Package output renders tasks and status messages for the terminal.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todo/internal/task"
)

const (
	timestampLayout = "2006-01-02 15:04"
	dueLayout       = "2006-01-02"

	headerWidth = 50
)

// Formatter renders tasks with or without lipgloss styling.
type Formatter struct {
	ok     lipgloss.Style
	warn   lipgloss.Style
	fail   lipgloss.Style
	accent lipgloss.Style
	header lipgloss.Style
	dim    lipgloss.Style
}

// NewFormatter returns a Formatter. With color disabled every style is a
// no-op and output is plain text.
func NewFormatter(color bool) *Formatter {
	f := &Formatter{
		ok:     lipgloss.NewStyle(),
		warn:   lipgloss.NewStyle(),
		fail:   lipgloss.NewStyle(),
		accent: lipgloss.NewStyle(),
		header: lipgloss.NewStyle(),
		dim:    lipgloss.NewStyle(),
	}
	if color {
		f.ok = f.ok.Foreground(lipgloss.Color("2"))
		f.warn = f.warn.Foreground(lipgloss.Color("3"))
		f.fail = f.fail.Foreground(lipgloss.Color("1"))
		f.accent = f.accent.Foreground(lipgloss.Color("6"))
		f.header = f.header.Foreground(lipgloss.Color("4"))
		f.dim = f.dim.Faint(true)
	}
	return f
}

// Header prints a section header followed by a separator line.
func (f *Formatter) Header(w io.Writer, text string) {
	fmt.Fprintln(w, f.header.Render(text))
	fmt.Fprintln(w, strings.Repeat("=", headerWidth))
}

// Task prints one task: a status line plus indented detail lines for
// categories, due date, and completion time.
func (f *Formatter) Task(w io.Writer, t task.Task) {
	status := f.warn.Render("○")
	if t.Completed {
		status = f.ok.Render("✓")
	}

	fmt.Fprintf(w, "%s [%s] %s %s %s\n",
		status,
		f.accent.Render(fmt.Sprintf("%d", t.ID)),
		t.Title,
		f.priority(t.Priority),
		f.dim.Render(fmt.Sprintf("(created: %s)", t.CreatedAt.Format(timestampLayout))),
	)

	if len(t.Categories) > 0 {
		fmt.Fprintf(w, "     %s %s\n",
			f.header.Render("↳ categories:"),
			f.dim.Render(strings.Join(t.Categories, ", ")))
	}
	if t.DueDate != nil {
		fmt.Fprintf(w, "     %s %s\n",
			f.warn.Render("↳ due:"),
			f.dim.Render(t.DueDate.Format(dueLayout)))
	}
	if t.CompletedAt != nil {
		fmt.Fprintf(w, "     %s %s\n",
			f.ok.Render("↳ completed:"),
			f.dim.Render(t.CompletedAt.Format(timestampLayout)))
	}
}

// Tasks prints a sequence of tasks, or a placeholder when it is empty.
func (f *Formatter) Tasks(w io.Writer, tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, f.warn.Render("no matching tasks found"))
		return
	}
	for _, t := range tasks {
		f.Task(w, t)
	}
}

// Successf prints a confirmation line with a leading check mark.
func (f *Formatter) Successf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", f.ok.Render("✓"), fmt.Sprintf(format, args...))
}

// Warnf prints a warning line with a leading bang.
func (f *Formatter) Warnf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", f.warn.Render("!"), fmt.Sprintf(format, args...))
}

// Removedf prints a deletion line with a leading cross.
func (f *Formatter) Removedf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", f.fail.Render("✗"), fmt.Sprintf(format, args...))
}

func (f *Formatter) priority(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return f.fail.Render("⚠ HIGH")
	case task.PriorityMedium:
		return f.warn.Render("◆ MED")
	default:
		return f.ok.Render("○ LOW")
	}
}
