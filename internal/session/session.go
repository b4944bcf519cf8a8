// Package session owns the authentication lifecycle: the bearer token, the
// signed-in profile, and keeping the API client and the persistent credential
// store in agreement with both.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/grocey/grocey-cli/internal/api"
	"github.com/grocey/grocey-cli/internal/model"
	"github.com/grocey/grocey-cli/internal/store"
)

// Profile is the local view of the signed-in user. Names are split into
// first/last and the dashboard counters are lifted out of metadata, defaulted
// to zero when the server omits them.
type Profile struct {
	ID            int64
	FirstName     string
	LastName      string
	Email         string
	Icon          string
	ListsCount    int
	PantriesCount int
}

// Store holds process-wide authentication state. All methods are safe for
// concurrent use, but only one sign-in/sign-out flow should run at a time:
// the last completed flow wins.
type Store struct {
	api   *api.API
	creds *store.CredentialStore
	log   *slog.Logger

	mu          sync.Mutex
	token       string
	profile     *Profile
	loading     bool
	lastErr     string
	initialized bool
}

func New(a *api.API, creds *store.CredentialStore, log *slog.Logger) *Store {
	return &Store{api: a, creds: creds, log: log}
}

// Init restores the session from persistent storage. It runs its body once;
// later calls return immediately. A persisted token that fails the profile
// fetch is kept: the request may have failed for transient reasons, and the
// server will reject the token on first use if it is stale.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return nil
	}
	s.initialized = true
	s.mu.Unlock()

	token, err := s.creds.Token()
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if token == "" {
		return nil
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	s.api.Client.SetToken(token)

	if err := s.FetchProfile(ctx); err != nil {
		// Startup must not fail because the profile endpoint is down;
		// continue unauthenticated-looking and let the next call surface it.
		s.log.Warn("profile fetch during startup failed", "error", err)
	}
	return nil
}

// SetToken updates the in-memory token, the API client header, and the
// persistent store together. An empty token signs out.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	s.token = token
	if token == "" {
		s.profile = nil
	}
	s.mu.Unlock()

	s.api.Client.SetToken(token)

	if token == "" {
		if err := s.creds.ClearToken(); err != nil {
			return fmt.Errorf("clear persisted token: %w", err)
		}
		return nil
	}
	if err := s.creds.SetToken(token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

// FetchProfile loads the signed-in user from the API and maps it into the
// local Profile shape. No-op without a token. The error is recorded on the
// store as well as returned, so UI surfaces can read it later.
func (s *Store) FetchProfile(ctx context.Context) error {
	if s.Token() == "" {
		return nil
	}

	s.setLoading(true)
	defer s.setLoading(false)

	user, err := s.api.Users.Profile(ctx)
	if err != nil {
		s.recordErr(err)
		return err
	}

	s.mu.Lock()
	s.profile = mapProfile(user)
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

// SaveChanges submits a partial profile edit and re-applies the server
// response as the source of truth. Failures propagate to the caller.
func (s *Store) SaveChanges(ctx context.Context, update api.ProfileUpdate) (*Profile, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	user, err := s.api.Users.UpdateProfile(ctx, update)
	if err != nil {
		s.recordErr(err)
		return nil, err
	}

	s.mu.Lock()
	s.profile = mapProfile(user)
	s.lastErr = ""
	p := *s.profile
	s.mu.Unlock()
	return &p, nil
}

// Logout ends the session. The remote call is best-effort: a failure is
// logged and deliberately swallowed, because local state must clear no matter
// what the server says. This is an intentional exception to the
// propagate-all-errors policy; do not copy the pattern elsewhere.
func (s *Store) Logout(ctx context.Context) error {
	if s.Token() != "" {
		if err := s.api.Users.Logout(ctx); err != nil {
			s.log.Warn("remote logout failed, clearing local session anyway", "error", err)
		}
	}

	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()

	return s.SetToken("")
}

// Token returns the current bearer token, or "" when signed out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Authenticated reports whether a token is present. Token presence is the
// sole authentication predicate; validity is the server's call.
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// Profile returns a copy of the cached profile, or nil before the first
// successful fetch.
func (s *Store) Profile() *Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// Loading reports whether a profile request is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the message of the last failed profile operation, or "".
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Initialized reports whether Init has run.
func (s *Store) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Store) recordErr(err error) {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
}

func mapProfile(u *model.User) *Profile {
	p := &Profile{
		ID:        u.ID,
		FirstName: u.Name,
		LastName:  u.Surname,
		Email:     u.Email,
		Icon:      u.Metadata.Icon,
	}
	p.ListsCount = intFromMeta(u.Metadata.Extra, "listsCount")
	p.PantriesCount = intFromMeta(u.Metadata.Extra, "pantriesCount")
	return p
}

// intFromMeta digs an integer counter out of the open metadata map; absent or
// malformed values default to zero.
func intFromMeta(extra map[string]any, key string) int {
	v, ok := extra[key]
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}
