// Package store persists the task collection as a JSON file on disk.
//
// The file holds a plain JSON array of task records and is the single
// source of truth across invocations. The whole collection is loaded at
// process start and written back after any mutating command.
package store

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"todo/internal/task"
)

// ErrNotFound indicates an operation on an unknown task id.
var ErrNotFound = errors.New("task not found")

//go:embed schema.json
var schemaJSON string

var storeSchema = jsonschema.MustCompileString("todos.schema.json", schemaJSON)

// Store is the in-memory task collection backed by a JSON file.
type Store struct {
	path   string
	tasks  []task.Task
	nextID int
	logger *log.Logger
}

// Open loads the store from path. A missing file is an empty store.
// The file contents are validated against the store schema before use.
func Open(path string, logger *log.Logger) (*Store, error) {
	s := &Store{path: path, nextID: 1, logger: logger}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("store file missing, starting empty", "path", path)
			return s, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse store file %s: %w", path, err)
	}
	if err := storeSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("store file %s is not a valid task list: %w", path, err)
	}

	if err := json.Unmarshal(data, &s.tasks); err != nil {
		return nil, fmt.Errorf("parse store file %s: %w", path, err)
	}

	// The schema cannot express id uniqueness, so enforce it here.
	seen := make(map[int]bool, len(s.tasks))
	for _, t := range s.tasks {
		if seen[t.ID] {
			return nil, fmt.Errorf("store file %s is not a valid task list: duplicate task id %d", path, t.ID)
		}
		seen[t.ID] = true
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}

	logger.Debug("store loaded", "path", path, "tasks", len(s.tasks))
	return s, nil
}

// Save writes the full collection back, overwriting the file.
func (s *Store) Save() error {
	tasks := s.tasks
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}

	s.logger.Debug("store saved", "path", s.path, "tasks", len(s.tasks))
	return nil
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Add creates a new task with a fresh id and appends it to the collection.
// IDs are one greater than the current maximum, so deleting a task never
// makes an existing id ambiguous.
func (s *Store) Add(title string, pri task.Priority, due *time.Time, categories []string) task.Task {
	t := task.Task{
		ID:         s.nextID,
		Title:      title,
		CreatedAt:  time.Now(),
		Priority:   pri,
		DueDate:    due,
		Categories: categories,
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t
}

// Filter selects tasks for listing. Zero values match everything except
// Completed, which always partitions the collection: pending by default,
// completed when set.
type Filter struct {
	Completed bool
	Priority  task.Priority
	Category  string
}

// List returns tasks matching the filter, in insertion order.
func (s *Store) List(f Filter) []task.Task {
	var matched []task.Task
	for _, t := range s.tasks {
		if t.Completed != f.Completed {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if f.Category != "" && !t.HasCategory(f.Category) {
			continue
		}
		matched = append(matched, t)
	}
	return matched
}

// Search returns tasks whose title contains the query, case-insensitively.
func (s *Store) Search(query string) []task.Task {
	var matched []task.Task
	for _, t := range s.tasks {
		if t.MatchesQuery(query) {
			matched = append(matched, t)
		}
	}
	return matched
}

// Tasks returns a copy of the full collection in insertion order.
func (s *Store) Tasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given id.
func (s *Store) Get(id int) (task.Task, error) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return task.Task{}, fmt.Errorf("%w: %d", ErrNotFound, id)
}

// Complete marks the task with the given id as done and records the
// completion time. Completing an already-completed task is a no-op.
func (s *Store) Complete(id int) (task.Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if !s.tasks[i].Completed {
			now := time.Now()
			s.tasks[i].Completed = true
			s.tasks[i].CompletedAt = &now
		}
		return s.tasks[i], nil
	}
	return task.Task{}, fmt.Errorf("%w: %d", ErrNotFound, id)
}

// Delete removes the task with the given id and returns it.
func (s *Store) Delete(id int) (task.Task, error) {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return t, nil
		}
	}
	return task.Task{}, fmt.Errorf("%w: %d", ErrNotFound, id)
}
