package testutil

import (
	"context"
	"errors"
	"strings"
	"sync"

	"todo/internal/remote"
)

// DefaultListID is the ID used for the fake default list.
const DefaultListID = "@default"

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrAmbiguous is returned when multiple matches are found.
var ErrAmbiguous = errors.New("ambiguous")

// FakeBackend is an in-memory implementation of remote.Backend for testing.
type FakeBackend struct {
	mu    sync.RWMutex
	lists []remote.TaskList

	// Created records tasks created per list ID.
	Created map[string][]remote.Task

	// Error injection for testing
	DefaultListErr error
	ListListsErr   error
	ResolveListErr error
	CreateTaskErr  error
}

// NewFakeBackend creates a FakeBackend with a default list.
func NewFakeBackend() *FakeBackend {
	return &FakeBackend{
		lists: []remote.TaskList{
			{ID: DefaultListID, Title: "My Tasks", IsDefault: true},
		},
		Created: make(map[string][]remote.Task),
	}
}

// AddList adds a list to the fake backend.
func (f *FakeBackend) AddList(id, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, remote.TaskList{ID: id, Title: title})
}

// CreatedTasks returns the tasks created in the given list.
func (f *FakeBackend) CreatedTasks(listID string) []remote.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]remote.Task, len(f.Created[listID]))
	copy(out, f.Created[listID])
	return out
}

// DefaultList implements remote.Backend.
func (f *FakeBackend) DefaultList(ctx context.Context) (remote.TaskList, error) {
	if f.DefaultListErr != nil {
		return remote.TaskList{}, f.DefaultListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, l := range f.lists {
		if l.IsDefault {
			return l, nil
		}
	}
	return remote.TaskList{}, errors.New("no default list")
}

// ListLists implements remote.Backend.
func (f *FakeBackend) ListLists(ctx context.Context) ([]remote.TaskList, error) {
	if f.ListListsErr != nil {
		return nil, f.ListListsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]remote.TaskList, len(f.lists))
	copy(result, f.lists)
	return result, nil
}

// ResolveList implements remote.Backend.
func (f *FakeBackend) ResolveList(ctx context.Context, name string) (remote.TaskList, error) {
	if f.ResolveListErr != nil {
		return remote.TaskList{}, f.ResolveListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	nameLower := strings.ToLower(strings.TrimSpace(name))

	var matches []remote.TaskList
	for _, l := range f.lists {
		if strings.ToLower(strings.TrimSpace(l.Title)) == nameLower {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return remote.TaskList{}, ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return remote.TaskList{}, ErrAmbiguous
	}
}

// CreateTask implements remote.Backend.
func (f *FakeBackend) CreateTask(ctx context.Context, listID string, t remote.Task) error {
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	found := false
	for _, l := range f.lists {
		if l.ID == listID {
			found = true
			break
		}
	}
	if !found {
		return ErrNotFound
	}

	f.Created[listID] = append(f.Created[listID], t)
	return nil
}
