// Package form implements the create/edit screens: each form loads its
// initial values (and any selection lists), validates on submit and then
// creates or updates through the resource services.
package form

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"exploraneiva/internal/session"
)

// State is the lifecycle of a form.
type State string

const (
	StateIdle       State = "idle"
	StateLoading    State = "loading"
	StateReady      State = "ready"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
)

// ErrNotReady is returned by Submit before a successful Load, while a
// submit is in flight, or after the form already succeeded.
var ErrNotReady = errors.New("el formulario no está listo")

// ValidationError lists the failing fields and their messages.
// It is returned before any network call.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "Revise los campos: " + strings.Join(names, ", ")
}

// controller holds the state shared by every form. The zero value is idle.
type controller[V any] struct {
	mu     sync.Mutex
	state  State
	loaded bool
	values V
	err    error
}

func (c *controller[V]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current()
}

// current must be called with mu held.
func (c *controller[V]) current() State {
	if c.state == "" {
		return StateIdle
	}
	return c.state
}

// Values returns the current form values: the initial ones after Load, the
// last submitted ones afterwards.
func (c *controller[V]) Values() V {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values
}

// Err is the error of the last failed Load or Submit.
func (c *controller[V]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *controller[V]) load(ctx context.Context, fetch func(context.Context) (V, error)) error {
	c.mu.Lock()
	if st := c.current(); st != StateIdle && st != StateFailed {
		c.mu.Unlock()
		return ErrNotReady
	}
	c.state = StateLoading
	c.mu.Unlock()

	values, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state, c.err = StateFailed, err
		return err
	}
	c.state, c.err, c.loaded, c.values = StateReady, nil, true, values
	return nil
}

func (c *controller[V]) submit(ctx context.Context, values V, validate func(V) error, save func(context.Context, V) error) error {
	c.mu.Lock()
	if !c.loaded || (c.state != StateReady && c.state != StateFailed) {
		c.mu.Unlock()
		return ErrNotReady
	}
	c.values = values
	if err := validate(values); err != nil {
		c.state, c.err = StateReady, err
		c.mu.Unlock()
		return err
	}
	c.state, c.err = StateSubmitting, nil
	c.mu.Unlock()

	err := save(ctx, values)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state, c.err = StateFailed, err
		return err
	}
	c.state = StateSuccess
	return nil
}

// withSession attaches sess to ctx so API calls carry the user's token.
func withSession(ctx context.Context, sess session.Session) context.Context {
	if !sess.Valid() {
		return ctx
	}
	return session.NewContext(ctx, sess)
}
