// Package session carries the authenticated back-office user through every
// form submission and API call.
package session

import (
	"context"
	"errors"
)

// ErrNoSession is returned when an operation needs a user and none is attached.
var ErrNoSession = errors.New("sesión no iniciada")

// Session identifies the user acting on the back-office.
// APIToken, when present, is forwarded to the remote API as a bearer token.
type Session struct {
	UserID   int64
	Username string
	Email    string
	APIToken string
}

// Valid reports whether the session names a real user.
func (s Session) Valid() bool { return s.UserID > 0 }

type ctxKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext extracts the session stored by NewContext.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}

// Require is FromContext for callers that cannot proceed anonymously.
func Require(ctx context.Context) (Session, error) {
	s, ok := FromContext(ctx)
	if !ok || !s.Valid() {
		return Session{}, ErrNoSession
	}
	return s, nil
}
