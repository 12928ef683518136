// Package listview holds the state behind the list screens: the active
// collection fetched from the API, a free-text search and an optional
// category filter applied together on every change.
package listview

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// CategoryAll disables the category filter, as does an empty category.
const CategoryAll = "all"

var (
	// ErrDeleteNotConfirmed is returned when Delete is called without the
	// user's confirmation.
	ErrDeleteNotConfirmed = errors.New("la eliminación requiere confirmación")
	// ErrClosed is returned by operations on a closed view. Results fetched
	// after Close are discarded.
	ErrClosed = errors.New("la vista fue cerrada")
)

// Source is the data side of a view.
type Source[T any] struct {
	Fetch  func(ctx context.Context) ([]T, error)
	Delete func(ctx context.Context, id int64) error
}

// Schema describes how a view matches and labels its records.
type Schema[T any] struct {
	// Fields returns the values the search term is matched against.
	Fields func(T) []string
	// Category returns the value compared with the category filter; nil
	// means the view has no category filter.
	Category func(T) string

	NoRecords  string
	NoMatches  string
	CreatePath string
}

// EmptyState is shown instead of the list when nothing is visible.
type EmptyState struct {
	Message    string `json:"message"`
	CreatePath string `json:"createPath"`
}

// View is safe for concurrent use.
type View[T any] struct {
	src    Source[T]
	schema Schema[T]

	mu       sync.Mutex
	source   []T
	items    []T
	search   string
	category string
	closed   bool
}

func New[T any](src Source[T], schema Schema[T]) *View[T] {
	return &View[T]{src: src, schema: schema, source: []T{}, items: []T{}}
}

// Load fetches the collection and replaces the source set wholesale.
// The current search and category are re-applied to the new set.
func (v *View[T]) Load(ctx context.Context) error {
	if v.isClosed() {
		return ErrClosed
	}
	list, err := v.src.Fetch(ctx)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return ErrClosed
	}
	if list == nil {
		list = []T{}
	}
	v.source = list
	v.recompute()
	return nil
}

// Refresh re-fetches the collection.
func (v *View[T]) Refresh(ctx context.Context) error { return v.Load(ctx) }

// SetSearch changes the search term. An empty or blank term matches all.
func (v *View[T]) SetSearch(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.search = term
	v.recompute()
}

// SetCategory changes the category filter. CategoryAll or "" disables it.
// Views without categories ignore the call.
func (v *View[T]) SetCategory(category string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.schema.Category == nil {
		return
	}
	v.category = category
	v.recompute()
}

// Search and Category report the active filters.
func (v *View[T]) Search() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.search
}

func (v *View[T]) Category() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.category == "" {
		return CategoryAll
	}
	return v.category
}

// Items returns the visible records. The slice is a copy.
func (v *View[T]) Items() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

// Total is the size of the loaded source set.
func (v *View[T]) Total() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.source)
}

// Empty returns the empty state when no record is visible, nil otherwise.
// The message tells "nothing registered" apart from "nothing matches".
func (v *View[T]) Empty() *EmptyState {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.items) > 0 {
		return nil
	}
	msg := v.schema.NoRecords
	if v.filtering() {
		msg = v.schema.NoMatches
	}
	return &EmptyState{Message: msg, CreatePath: v.schema.CreatePath}
}

// Delete removes the record after confirmation and then re-fetches the
// collection. Nothing is removed locally before the API agrees.
func (v *View[T]) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	if v.isClosed() {
		return ErrClosed
	}
	if err := v.src.Delete(ctx, id); err != nil {
		return err
	}
	return v.Load(ctx)
}

// Close disposes the view. Pending loads finish but their results are dropped.
func (v *View[T]) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
}

func (v *View[T]) isClosed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}

func (v *View[T]) filtering() bool {
	return strings.TrimSpace(v.search) != "" || (v.schema.Category != nil && categoryActive(v.category))
}

// recompute must be called with mu held.
func (v *View[T]) recompute() {
	v.items = Apply(v.source, v.search, v.category, v.schema.Fields, v.schema.Category)
}

// Apply filters items by search term and category. It is pure: the same
// inputs always give the same output and items is never modified.
//
// A blank term disables the search; otherwise the term, surrounding spaces
// included, matches when any of fields(item) contains it, ignoring case.
// The category matches when category(item) equals it, ignoring case.
func Apply[T any](items []T, search, category string, fields func(T) []string, categoryOf func(T) string) []T {
	term := ""
	if strings.TrimSpace(search) != "" {
		term = strings.ToLower(search)
	}
	useCategory := categoryOf != nil && categoryActive(category)

	out := make([]T, 0, len(items))
	for _, it := range items {
		if term != "" && !matches(fields(it), term) {
			continue
		}
		if useCategory && !strings.EqualFold(categoryOf(it), category) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func categoryActive(c string) bool {
	c = strings.TrimSpace(c)
	return c != "" && !strings.EqualFold(c, CategoryAll)
}

func matches(fields []string, term string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
