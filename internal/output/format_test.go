package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"todo/internal/task"
)

func TestTask_Plain(t *testing.T) {
	created := time.Date(2026, 1, 2, 9, 30, 0, 0, time.Local)
	due := time.Date(2026, 1, 10, 23, 59, 59, 0, time.Local)
	tk := task.Task{
		ID:         3,
		Title:      "Buy milk",
		CreatedAt:  created,
		Priority:   task.PriorityHigh,
		DueDate:    &due,
		Categories: []string{"home", "errands"},
	}

	var buf bytes.Buffer
	NewFormatter(false).Task(&buf, tk)

	want := "○ [3] Buy milk ⚠ HIGH (created: 2026-01-02 09:30)\n" +
		"     ↳ categories: home, errands\n" +
		"     ↳ due: 2026-01-10\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestTask_CompletedDetail(t *testing.T) {
	created := time.Date(2026, 1, 2, 9, 30, 0, 0, time.Local)
	completed := time.Date(2026, 1, 3, 17, 0, 0, 0, time.Local)
	tk := task.Task{
		ID:          1,
		Title:       "Write report",
		Completed:   true,
		CreatedAt:   created,
		CompletedAt: &completed,
		Priority:    task.PriorityLow,
	}

	var buf bytes.Buffer
	NewFormatter(false).Task(&buf, tk)

	got := buf.String()
	if !strings.HasPrefix(got, "✓ [1] Write report ○ LOW") {
		t.Errorf("unexpected status line: %q", got)
	}
	if !strings.Contains(got, "↳ completed: 2026-01-03 17:00") {
		t.Errorf("expected completion detail line, got %q", got)
	}
}

func TestTasks_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewFormatter(false).Tasks(&buf, nil)

	if buf.String() != "no matching tasks found\n" {
		t.Errorf("expected placeholder, got %q", buf.String())
	}
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	NewFormatter(false).Header(&buf, "Tasks")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "Tasks" {
		t.Errorf("expected header 'Tasks', got %q", lines[0])
	}
	if lines[1] != strings.Repeat("=", headerWidth) {
		t.Errorf("expected separator line, got %q", lines[1])
	}
}

func TestMessages(t *testing.T) {
	f := NewFormatter(false)

	var buf bytes.Buffer
	f.Successf(&buf, "added %d: %s", 1, "Buy milk")
	if buf.String() != "✓ added 1: Buy milk\n" {
		t.Errorf("unexpected success line: %q", buf.String())
	}

	buf.Reset()
	f.Warnf(&buf, "task %d is already completed", 1)
	if buf.String() != "! task 1 is already completed\n" {
		t.Errorf("unexpected warn line: %q", buf.String())
	}

	buf.Reset()
	f.Removedf(&buf, "deleted: %s", "Buy milk")
	if buf.String() != "✗ deleted: Buy milk\n" {
		t.Errorf("unexpected removed line: %q", buf.String())
	}
}
