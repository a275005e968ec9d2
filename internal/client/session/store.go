// Package session holds the client-side auth state: the current user and
// token, persisted to a namespaced JSON file so a session survives restarts.
//
// The store is an explicit, injected state container rather than package
// globals. User and token are only ever set or cleared together, through
// SetAuth and Logout.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vidstream/account-system/internal/core/domain"
)

// storageName is the persistence namespace, one file per store.
const storageName = "auth-storage.json"

// State is the persisted session snapshot.
type State struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
	// From is the location a route guard recorded before redirecting to
	// login, so the flow can return there after success.
	From string `json:"from,omitempty"`
}

// Authenticated reports whether the snapshot holds a session.
func (s State) Authenticated() bool {
	return s.User != nil && s.Token != ""
}

// Store is a persisted, subscription-capable session container. All methods
// are safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	path  string
	state State
	subs  []func(State)
}

// DefaultPath returns the per-user location of the session file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "vidstream", storageName), nil
}

// Open loads the store at path, starting empty when no file exists yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	if err := json.Unmarshal(data, &s.state); err != nil {
		// A corrupt file is treated as no session rather than an error;
		// the next SetAuth overwrites it.
		s.state = State{}
	}
	return s, nil
}

// SetAuth atomically sets the current user and token and persists the state.
func (s *Store) SetAuth(user *domain.User, token string) error {
	if user == nil || token == "" {
		return errors.New("session: user and token must both be present")
	}

	s.mu.Lock()
	s.state.User = user.Public()
	s.state.Token = token
	s.state.From = ""
	err := s.persistLocked()
	snapshot := s.state
	subs := append([]func(State){}, s.subs...)
	s.mu.Unlock()

	notify(subs, snapshot)
	return err
}

// Logout atomically clears the user and token and persists the cleared state.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.state = State{}
	err := s.persistLocked()
	snapshot := s.state
	subs := append([]func(State){}, s.subs...)
	s.mu.Unlock()

	notify(subs, snapshot)
	return err
}

// SetReturnTo records the location a guard intercepted, preserved until the
// next successful SetAuth.
func (s *Store) SetReturnTo(location string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.From = location
	return s.persistLocked()
}

// ReturnTo returns the recorded location, or empty when none is pending.
func (s *Store) ReturnTo() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.From
}

// User returns a copy of the current user, or nil when anonymous. Mutating
// the result never touches the stored session; only SetAuth and Logout do.
func (s *Store) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.User.Public()
}

// Token returns the current token, or empty when anonymous.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

// Snapshot returns a copy of the full state, with its own copy of the user.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.state
	snapshot.User = s.state.User.Public()
	return snapshot
}

// Subscribe registers fn to be called after every SetAuth and Logout.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) persistLocked() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func notify(subs []func(State), state State) {
	for _, fn := range subs {
		fn(state)
	}
}
