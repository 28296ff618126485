// Package viewstate holds presentation state shared by the terminal UI and
// the CLI: list contents with request generations and optimistic edits,
// query parameters, debounced search, document drafts, the modal shell and
// the refresh bus.
package viewstate

import (
	"context"
	"sync"

	"sklad/internal/domain/entities"
	"sklad/internal/usecase"
	"sklad/internal/usecase/interfaces"

	"github.com/pkg/errors"
)

// RenderState is what a list view should draw.
type RenderState int

const (
	StateLoading RenderState = iota
	StateEmpty
	StatePopulated
	StateFailed
)

func (s RenderState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Generation identifies one issued load. Only the latest generation may
// update the list.
type Generation uint64

// Snapshot is the list content before an optimistic change.
type Snapshot[T any] struct {
	items []T
	total int
}

// List is the rows of one resource view.
type List[T any] struct {
	mu       sync.Mutex
	items    []T
	total    int
	state    RenderState
	err      error
	gen      Generation
	rev      uint64
	notifier interfaces.INotifier
}

// NewList returns a list in the loading state. Failures of optimistic
// requests are reported to n when it is not nil.
func NewList[T any](n interfaces.INotifier) *List[T] {
	return &List[T]{state: StateLoading, notifier: n}
}

// BeginLoad issues a new generation and marks the list loading.
func (l *List[T]) BeginLoad() Generation {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	l.state = StateLoading
	l.err = nil
	return l.gen
}

// CompleteLoad stores the result of the load started as gen. Results of
// superseded loads are dropped and false is returned.
func (l *List[T]) CompleteLoad(gen Generation, page entities.Page[T], err error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return false
	}
	if err != nil {
		l.state = StateFailed
		l.err = err
		return true
	}
	l.items = append([]T(nil), page.Items...)
	l.total = page.Total
	l.rev++
	l.err = nil
	l.state = stateOf(len(l.items))
	return true
}

// Reload runs fetch as a new generation. The returned error is the fetch
// error, also kept for rendering.
func (l *List[T]) Reload(ctx context.Context, fetch func(ctx context.Context) (entities.Page[T], error)) error {
	gen := l.BeginLoad()
	page, err := fetch(ctx)
	l.CompleteLoad(gen, page, err)
	return err
}

// Apply changes the rows immediately and returns what to roll back to.
func (l *List[T]) Apply(transform func(items []T) []T) Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	snap := Snapshot[T]{items: append([]T(nil), l.items...), total: l.total}
	before := len(l.items)
	l.items = transform(append([]T(nil), l.items...))
	l.total += len(l.items) - before
	if l.total < len(l.items) {
		l.total = len(l.items)
	}
	l.rev++
	l.state = stateOf(len(l.items))
	return snap
}

// Rollback restores the rows exactly as they were when snap was taken.
func (l *List[T]) Rollback(snap Snapshot[T]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = snap.items
	l.total = snap.total
	l.rev++
	l.state = stateOf(len(l.items))
}

// Optimistic applies transform, sends request and rolls back when it fails.
// The failure is reported to the list notifier and returned; an operator
// declining a confirmation only rolls back.
func (l *List[T]) Optimistic(ctx context.Context, transform func(items []T) []T, request func(ctx context.Context) error) error {
	snap := l.Apply(transform)
	if err := request(ctx); err != nil {
		l.Rollback(snap)
		if l.notifier != nil && !errors.Is(err, usecase.ErrCancelled) {
			l.notifier.Failure(err.Error())
		}
		return err
	}
	return nil
}

// Replace swaps the first row matching match for row, e.g. with the server
// copy after a successful mutation.
func (l *List[T]) Replace(match func(T) bool, row T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if match(l.items[i]) {
			l.items[i] = row
			l.rev++
			return true
		}
	}
	return false
}

func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]T(nil), l.items...)
}

func (l *List[T]) Total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}

func (l *List[T]) State() RenderState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *List[T]) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Revision changes on every content change; renderers use it to skip
// redrawing identical rows.
func (l *List[T]) Revision() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rev
}

func stateOf(n int) RenderState {
	if n == 0 {
		return StateEmpty
	}
	return StatePopulated
}

// Without returns a transform removing rows that match.
func Without[T any](match func(T) bool) func([]T) []T {
	return func(items []T) []T {
		out := items[:0]
		for _, it := range items {
			if !match(it) {
				out = append(out, it)
			}
		}
		return out
	}
}

// Updating returns a transform applying fn to rows that match.
func Updating[T any](match func(T) bool, fn func(T) T) func([]T) []T {
	return func(items []T) []T {
		for i := range items {
			if match(items[i]) {
				items[i] = fn(items[i])
			}
		}
		return items
	}
}
