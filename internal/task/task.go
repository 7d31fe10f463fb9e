// Package task defines the task data model.
package task

import (
	"fmt"
	"strings"
	"time"
)

// Priority is a task priority level.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority parses a priority string (case-insensitive, trimmed).
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return PriorityHigh, nil
	case "medium", "med":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	default:
		return "", fmt.Errorf("invalid priority: %s", s)
	}
}

// Valid reports whether p is a known priority level.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Task represents a single todo item.
type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Categories  []string   `json:"categories,omitempty"`
}

// HasCategory reports whether the task carries the given category.
func (t Task) HasCategory(name string) bool {
	for _, c := range t.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// MatchesQuery reports whether the task title contains the query,
// case-insensitively.
func (t Task) MatchesQuery(query string) bool {
	return strings.Contains(strings.ToLower(t.Title), strings.ToLower(query))
}

// dueDateLayout is the CLI-facing due date format.
const dueDateLayout = "2006-01-02"

// ParseDueDate parses a YYYY-MM-DD date and pins it to the end of that day
// in local time, so a task is not overdue until the named day has passed.
func ParseDueDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(dueDateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date (want YYYY-MM-DD): %s", s)
	}
	// Build the timestamp from calendar components rather than duration
	// arithmetic so a DST-shortened day still lands on the named date.
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, time.Local), nil
}
