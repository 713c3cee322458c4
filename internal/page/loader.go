// Package page implements view-level data fetching: a component-scoped
// cache of one, loaded from the API clients directly without going through
// the domain stores. Pages re-load whenever their route parameter changes;
// late responses from a superseded load are discarded.
package page

import (
	"context"
	"errors"
	"sync"

	"github.com/xride-labs/zoomies-web-sub000/internal/api"
)

// State is the tri-state a page renders from.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateFailed
	StateReady
)

// Loader is one page's fetch state. T is whatever the page needs to render.
type Loader[T any] struct {
	mu    sync.Mutex
	state State
	err   string
	param string
	data  T
	gen   uint64
}

// Load fetches data for param. Concurrent or rapid re-loads race safely:
// only the most recently started load settles the state.
func (l *Loader[T]) Load(ctx context.Context, param string, fetch func(context.Context) (T, error)) error {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.state = StateLoading
	l.err = ""
	l.param = param
	l.mu.Unlock()

	data, err := fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.gen != gen {
		// A newer load started while this one was in flight.
		return nil
	}
	if err != nil {
		l.state = StateFailed
		l.err = errorMessage(err)
		return err
	}
	l.state = StateReady
	l.data = data
	return nil
}

// errorMessage prefers the backend's message over transport noise.
func errorMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Something went wrong"
}

// State returns the current tri-state.
func (l *Loader[T]) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Err returns the error string shown by the page, empty unless failed.
func (l *Loader[T]) Err() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Param returns the route parameter of the last load.
func (l *Loader[T]) Param() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.param
}

// Data returns the loaded payload; meaningful only in StateReady.
func (l *Loader[T]) Data() T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.data
}
