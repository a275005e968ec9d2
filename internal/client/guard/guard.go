// Package guard blocks protected client views until an authenticated session
// is present. It only inspects the session store; it never makes a network
// call, so a stale token is caught by the server, not here.
package guard

import (
	"context"
	"errors"

	"github.com/vidstream/account-system/internal/client/session"
)

// ErrLoginRequired is returned when a protected view is entered without a
// session. The requested location has been recorded in the store by then, so
// the login flow can return the user there after success.
var ErrLoginRequired = errors.New("login required")

// View is a client-side view the guard can wrap.
type View func(ctx context.Context) error

// Guard gates views on the presence of a session.
type Guard struct {
	store *session.Store
}

func New(store *session.Store) *Guard {
	return &Guard{store: store}
}

// Protect wraps view so it only runs when the store holds a user. Otherwise
// the requested location is recorded and ErrLoginRequired is returned.
func (g *Guard) Protect(location string, view View) View {
	return func(ctx context.Context) error {
		if g.store.User() == nil {
			_ = g.store.SetReturnTo(location)
			return ErrLoginRequired
		}
		return view(ctx)
	}
}
