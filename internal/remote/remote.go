// Package remote defines the backend-agnostic interface for pushing tasks
// to an external task service. Commands never import the Google SDK
// directly.
package remote

import (
	"context"
	"time"
)

// Task is the subset of a task that is pushed to a remote list.
type Task struct {
	Title string
	Notes string
	Due   *time.Time
}

// TaskList represents a remote task list.
type TaskList struct {
	ID        string
	Title     string
	IsDefault bool
}

// Backend defines remote task operations used by the push command.
type Backend interface {
	// DefaultList returns the account's default task list.
	DefaultList(ctx context.Context) (TaskList, error)

	// ListLists returns all task lists in API order.
	ListLists(ctx context.Context) ([]TaskList, error)

	// ResolveList finds a list by name (case-insensitive, trimmed).
	// Returns an error if not found or ambiguous.
	ResolveList(ctx context.Context, name string) (TaskList, error)

	// CreateTask creates a task in the given list.
	CreateTask(ctx context.Context, listID string, t Task) error
}
