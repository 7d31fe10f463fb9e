package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/remote"
	"todo/internal/store"
	"todo/internal/task"
	"todo/internal/testutil"
)

// testConfig returns a config pointing at a temp dir with color disabled.
func testConfig(t *testing.T, quiet bool) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Dir:             dir,
		StorePath:       filepath.Join(dir, config.StoreFile),
		Color:           false,
		DefaultPriority: task.PriorityLow,
		Quiet:           quiet,
	}
}

// testStore opens an empty store backed by the config's store path.
func testStore(t *testing.T, cfg *config.Config) *store.Store {
	t.Helper()
	st, err := store.Open(cfg.StorePath, logging.Discard())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return st
}

// runCommand is a helper to run a command against a store and backend.
func runCommand(t *testing.T, cmd commands.Command, cfg *config.Config, st *store.Store, be remote.Backend, args []string) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	code = cmd.Run(context.Background(), cfg, st, be, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, testConfig(t, false), nil, nil, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "todo 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, testConfig(t, false), nil, nil, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("help output should contain 'Usage:'")
	}
	testutil.GoldenString(t, "help", stdout)
}

// Tests for add command
func TestAddCommand(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)

	cmd := &commands.AddCmd{}
	stdout, stderr, code := runCommand(t, cmd, cfg, st, nil, []string{"Buy", "milk"})

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr: %q)", exitcode.Success, code, stderr)
	}
	if stdout != "✓ added 1: Buy milk\n" {
		t.Errorf("unexpected output: %q", stdout)
	}

	// Store was saved
	reloaded := testStore(t, cfg)
	tasks := reloaded.List(store.Filter{})
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task after add, got %d", len(tasks))
	}
	if tasks[0].Title != "Buy milk" {
		t.Errorf("expected title 'Buy milk', got %q", tasks[0].Title)
	}
	if tasks[0].Completed {
		t.Error("new task should not be completed")
	}
	if tasks[0].Priority != task.PriorityLow {
		t.Errorf("expected default priority low, got %q", tasks[0].Priority)
	}
}

func TestAddCommand_WithOptions(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)

	cmd := &commands.AddCmd{}
	cmd.SetOptions("high", "2026-03-15", []string{"home", "errands"})
	_, stderr, code := runCommand(t, cmd, cfg, st, nil, []string{"Buy milk"})

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr: %q)", exitcode.Success, code, stderr)
	}

	tasks := testStore(t, cfg).List(store.Filter{})
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	tk := tasks[0]
	if tk.Priority != task.PriorityHigh {
		t.Errorf("expected priority high, got %q", tk.Priority)
	}
	if tk.DueDate == nil || tk.DueDate.Format("2006-01-02") != "2026-03-15" {
		t.Errorf("expected due date 2026-03-15, got %v", tk.DueDate)
	}
	if len(tk.Categories) != 2 || tk.Categories[0] != "home" {
		t.Errorf("expected categories, got %v", tk.Categories)
	}
}

func TestAddCommand_MissingTitle(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)

	cmd := &commands.AddCmd{}
	_, stderr, code := runCommand(t, cmd, cfg, st, nil, nil)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: title required\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestAddCommand_InvalidPriority(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)

	cmd := &commands.AddCmd{}
	cmd.SetOptions("urgent", "", nil)
	_, stderr, code := runCommand(t, cmd, cfg, st, nil, []string{"Buy milk"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid priority: urgent\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestAddCommand_InvalidDueDate(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)

	cmd := &commands.AddCmd{}
	cmd.SetOptions("", "someday", nil)
	_, stderr, code := runCommand(t, cmd, cfg, st, nil, []string{"Buy milk"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "invalid due date") {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

// Tests for list command
func TestListCommand_PendingOnly(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)
	st.Add("Buy milk", task.PriorityLow, nil, nil)
	st.Add("Write report", task.PriorityLow, nil, nil)
	if _, err := st.Complete(2); err != nil {
		t.Fatal(err)
	}

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, cfg, st, nil, nil)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr: %q)", exitcode.Success, code, stderr)
	}
	if !strings.Contains(stdout, "Buy milk") {
		t.Errorf("expected pending task in output: %q", stdout)
	}
	if strings.Contains(stdout, "Write report") {
		t.Errorf("completed task should be hidden: %q", stdout)
	}
}

func TestListCommand_CompletedFilter(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)
	st.Add("Buy milk", task.PriorityLow, nil, nil)
	st.Add("Write report", task.PriorityLow, nil, nil)
	if _, err := st.Complete(2); err != nil {
		t.Fatal(err)
	}

	cmd := &commands.ListCmd{}
	cmd.SetFilter(true, "", "")
	stdout, _, code := runCommand(t, cmd, cfg, st, nil, nil)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout, "Write report") {
		t.Errorf("expected completed task in output: %q", stdout)
	}
	if strings.Contains(stdout, "Buy milk") {
		t.Errorf("pending task should be hidden: %q", stdout)
	}
}

func TestListCommand_PriorityFilter(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)
	st.Add("urgent thing", task.PriorityHigh, nil, nil)
	st.Add("normal thing", task.PriorityLow, nil, nil)

	cmd := &commands.ListCmd{}
	cmd.SetFilter(false, "high", "")
	stdout, _, code := runCommand(t, cmd, cfg, st, nil, nil)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout, "urgent thing") || strings.Contains(stdout, "normal thing") {
		t.Errorf("priority filter not applied: %q", stdout)
	}
}

func TestListCommand_InvalidPriority(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)

	cmd := &commands.ListCmd{}
	cmd.SetFilter(false, "urgent", "")
	_, stderr, code := runCommand(t, cmd, cfg, st, nil, nil)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid priority: urgent\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestListCommand_Empty(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)

	cmd := &commands.ListCmd{}
	stdout, _, code := runCommand(t, cmd, cfg, st, nil, nil)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout, "no matching tasks found") {
		t.Errorf("expected placeholder, got %q", stdout)
	}
}

func TestListCommand_QuietSkipsHeader(t *testing.T) {
	cfg := testConfig(t, true)
	st := testStore(t, cfg)
	st.Add("Buy milk", task.PriorityLow, nil, nil)

	cmd := &commands.ListCmd{}
	stdout, _, code := runCommand(t, cmd, cfg, st, nil, nil)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if strings.Contains(stdout, "====") {
		t.Errorf("quiet mode should skip the header: %q", stdout)
	}
	if !strings.Contains(stdout, "Buy milk") {
		t.Errorf("task line missing: %q", stdout)
	}
}

// Tests for search command
func TestSearchCommand(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)
	st.Add("Buy MILK", task.PriorityLow, nil, nil)
	st.Add("Write report", task.PriorityLow, nil, nil)

	cmd := &commands.SearchCmd{}
	stdout, _, code := runCommand(t, cmd, cfg, st, nil, []string{"milk"})

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout, "Buy MILK") {
		t.Errorf("expected match in output: %q", stdout)
	}
	if strings.Contains(stdout, "Write report") {
		t.Errorf("non-match should be hidden: %q", stdout)
	}
}

func TestSearchCommand_MissingQuery(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)

	cmd := &commands.SearchCmd{}
	_, stderr, code := runCommand(t, cmd, cfg, st, nil, nil)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: search query required\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

// Tests for complete command
func TestCompleteCommand(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)
	st.Add("Buy milk", task.PriorityLow, nil, nil)

	cmd := &commands.CompleteCmd{}
	stdout, stderr, code := runCommand(t, cmd, cfg, st, nil, []string{"1"})

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr: %q)", exitcode.Success, code, stderr)
	}
	if stdout != "✓ completed: Buy milk\n" {
		t.Errorf("unexpected output: %q", stdout)
	}

	tasks := testStore(t, cfg).List(store.Filter{Completed: true})
	if len(tasks) != 1 {
		t.Fatalf("expected 1 completed task after save, got %d", len(tasks))
	}
	if tasks[0].CompletedAt == nil {
		t.Error("expected completed_at to be persisted")
	}
}

func TestCompleteCommand_AlreadyCompleted(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)
	st.Add("Buy milk", task.PriorityLow, nil, nil)
	if _, err := st.Complete(1); err != nil {
		t.Fatal(err)
	}

	cmd := &commands.CompleteCmd{}
	stdout, _, code := runCommand(t, cmd, cfg, st, nil, []string{"1"})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "! task 1 is already completed\n" {
		t.Errorf("unexpected output: %q", stdout)
	}
}

func TestCompleteCommand_NotFound(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)

	cmd := &commands.CompleteCmd{}
	_, stderr, code := runCommand(t, cmd, cfg, st, nil, []string{"42"})

	if code != exitcode.NotFound {
		t.Errorf("expected exit code %d, got %d", exitcode.NotFound, code)
	}
	if stderr != "error: task not found: 42\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestCompleteCommand_InvalidID(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)

	cmd := &commands.CompleteCmd{}
	_, stderr, code := runCommand(t, cmd, cfg, st, nil, []string{"abc"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid task id: abc\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestCompleteCommand_MissingID(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)

	cmd := &commands.CompleteCmd{}
	_, stderr, code := runCommand(t, cmd, cfg, st, nil, nil)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task id required\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

// Tests for delete command
func TestDeleteCommand(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)
	st.Add("Buy milk", task.PriorityLow, nil, nil)
	st.Add("Buy eggs", task.PriorityLow, nil, nil)

	cmd := &commands.DeleteCmd{}
	stdout, stderr, code := runCommand(t, cmd, cfg, st, nil, []string{"1"})

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr: %q)", exitcode.Success, code, stderr)
	}
	if stdout != "✗ deleted: Buy milk\n" {
		t.Errorf("unexpected output: %q", stdout)
	}

	tasks := testStore(t, cfg).List(store.Filter{})
	if len(tasks) != 1 || tasks[0].Title != "Buy eggs" {
		t.Errorf("expected only 'Buy eggs' to remain, got %+v", tasks)
	}
}

func TestDeleteCommand_NotFound(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)

	cmd := &commands.DeleteCmd{}
	_, stderr, code := runCommand(t, cmd, cfg, st, nil, []string{"7"})

	if code != exitcode.NotFound {
		t.Errorf("expected exit code %d, got %d", exitcode.NotFound, code)
	}
	if stderr != "error: task not found: 7\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

// Tests for export command
func TestExportCommand_JSONToStdout(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)
	st.Add("Buy milk", task.PriorityLow, nil, nil)

	cmd := &commands.ExportCmd{}
	cmd.SetOptions("json", "")
	stdout, stderr, code := runCommand(t, cmd, cfg, st, nil, nil)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr: %q)", exitcode.Success, code, stderr)
	}
	if !strings.Contains(stdout, "\"title\": \"Buy milk\"") {
		t.Errorf("expected JSON output, got %q", stdout)
	}
}

func TestExportCommand_CSVToFile(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)
	st.Add("Buy milk", task.PriorityLow, nil, nil)

	outPath := filepath.Join(t.TempDir(), "tasks.csv")
	cmd := &commands.ExportCmd{}
	cmd.SetOptions("csv", outPath)
	stdout, stderr, code := runCommand(t, cmd, cfg, st, nil, nil)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr: %q)", exitcode.Success, code, stderr)
	}
	if !strings.Contains(stdout, "exported 1 tasks to "+outPath) {
		t.Errorf("unexpected confirmation: %q", stdout)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	if !strings.Contains(string(data), "Buy milk") {
		t.Errorf("exported file missing task: %q", string(data))
	}
}

func TestExportCommand_UnknownFormat(t *testing.T) {
	cfg := testConfig(t, false)
	st := testStore(t, cfg)

	cmd := &commands.ExportCmd{}
	cmd.SetOptions("xml", "")
	_, stderr, code := runCommand(t, cmd, cfg, st, nil, nil)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unknown format: xml\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}
