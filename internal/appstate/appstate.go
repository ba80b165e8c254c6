// Package appstate holds the signed-in session and the theme preference,
// persisted as YAML between CLI invocations.
package appstate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pawmart/pawmart/internal/identity"
	domain "github.com/pawmart/pawmart/pkg/types"
)

// ErrNotSignedIn is returned by RequireUser when no live session exists.
var ErrNotSignedIn = errors.New("not signed in: run `pawmart auth login` first")

type fileState struct {
	Theme   domain.Theme      `yaml:"theme"`
	Session *identity.Session `yaml:"session,omitempty"`
}

// Store is the application state. It is safe for concurrent use.
type Store struct {
	path    string
	nowFunc func() time.Time

	mu    sync.RWMutex
	state fileState
}

// Load reads the state file at path. A missing file yields an empty state
// with the light theme.
func Load(path string) (*Store, error) {
	s := &Store{
		path:    path,
		nowFunc: time.Now,
		state:   fileState{Theme: domain.ThemeLight},
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	if err := yaml.Unmarshal(data, &s.state); err != nil {
		return nil, fmt.Errorf("parsing state file: %w", err)
	}
	if !s.state.Theme.Valid() {
		s.state.Theme = domain.ThemeLight
	}
	return s, nil
}

// SetNowFunc overrides the clock used for session expiry checks.
func (s *Store) SetNowFunc(f func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowFunc = f
}

// Path returns the state file location.
func (s *Store) Path() string {
	return s.path
}

// Theme returns the persisted theme.
func (s *Store) Theme() domain.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Theme
}

// SetTheme stores and persists the theme.
func (s *Store) SetTheme(t domain.Theme) error {
	if !t.Valid() {
		return fmt.Errorf("unknown theme %q (want light or dark)", t)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state
	next.Theme = t
	return s.commitLocked(next)
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *Store) ToggleTheme() (domain.Theme, error) {
	next := domain.ThemeDark
	if s.Theme() == domain.ThemeDark {
		next = domain.ThemeLight
	}
	if err := s.SetTheme(next); err != nil {
		return s.Theme(), err
	}
	return next, nil
}

// Session returns the stored session, which may be expired, or nil.
func (s *Store) Session() *identity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Session == nil {
		return nil
	}
	cp := *s.state.Session
	return &cp
}

// SetSession stores and persists a freshly signed-in session.
func (s *Store) SetSession(sess *identity.Session) error {
	if sess == nil {
		return errors.New("nil session")
	}
	cp := *sess
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state
	next.Session = &cp
	return s.commitLocked(next)
}

// UpdateProfile replaces the profile of the current session.
func (s *Store) UpdateProfile(p domain.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Session == nil {
		return ErrNotSignedIn
	}
	sess := *s.state.Session
	sess.Profile = p
	next := s.state
	next.Session = &sess
	return s.commitLocked(next)
}

// SignOut forgets the session. The theme is kept.
func (s *Store) SignOut() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state
	next.Session = nil
	return s.commitLocked(next)
}

// RequireUser returns the live session or ErrNotSignedIn.
func (s *Store) RequireUser() (*identity.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.state.Session.Live(s.nowFunc()) {
		return nil, ErrNotSignedIn
	}
	cp := *s.state.Session
	return &cp, nil
}

// Token implements client.TokenSource: the ID token of a live session, or
// "" for anonymous requests.
func (s *Store) Token(context.Context) (string, error) {
	sess, err := s.RequireUser()
	if err != nil {
		return "", nil
	}
	return sess.IDToken, nil
}

// commitLocked persists next and only then makes it the in-memory state, so
// a failed write leaves both unchanged.
func (s *Store) commitLocked(next fileState) error {
	if err := s.save(next); err != nil {
		return err
	}
	s.state = next
	return nil
}

// save writes st atomically via a temp file and rename.
func (s *Store) save(st fileState) error {
	data, err := yaml.Marshal(&st)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.yaml")
	if err != nil {
		return fmt.Errorf("creating temp state file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing state: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("setting state file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}
