package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vitrine/pkg/domain"
)

// Authenticator exchanges credentials for a user and a bearer token.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (domain.User, string, error)
}

// ProfileUpdate carries optional profile field edits. Nil fields are
// left unchanged.
type ProfileUpdate struct {
	Name        *string
	Email       *string
	PhoneNumber *string
	Address     *string
	Avatar      *string
}

// Store owns the authenticated user and token. It is constructed once at
// startup and handed to whatever needs it; all mutations go through it
// and are mirrored to the Storage backend in full.
type Store struct {
	storage Storage
	auth    Authenticator

	mu      sync.RWMutex
	user    *domain.User
	token   string
	loading bool
}

// NewStore builds a signed-out store. It reports loading=true until
// Restore has run, so callers can defer their login decision.
func NewStore(storage Storage, auth Authenticator) *Store {
	return &Store{storage: storage, auth: auth, loading: true}
}

// Restore loads a persisted session. The session becomes signed-in only
// when both keys are present and the stored token has not expired; any
// other outcome (missing keys, corrupt user JSON, expired token) leaves
// the store signed out. Restore always finishes with loading=false.
func (s *Store) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	storedUser, err := s.storage.Get(KeyUser)
	if err == ErrKeyNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	storedToken, err := s.storage.Get(KeyToken)
	if err == ErrKeyNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal([]byte(storedUser), &user); err != nil {
		slog.Warn("discarding corrupt persisted user", "err", err)
		return nil
	}
	if tokenExpired(storedToken, time.Now()) {
		slog.Info("persisted token expired, starting signed out")
		return nil
	}

	s.user = &user
	s.token = storedToken
	return nil
}

// SignIn posts credentials and, on success, stores the session both in
// memory and in persistent storage. On failure the prior state is left
// untouched.
func (s *Store) SignIn(ctx context.Context, email, password string) error {
	user, token, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persist(user, token); err != nil {
		return err
	}
	s.user = &user
	s.token = token
	return nil
}

// SignOut clears the persisted keys and the in-memory user. Calling it
// on a signed-out store is a no-op.
func (s *Store) SignOut() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Clear(); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	s.user = nil
	s.token = ""
	return nil
}

// UpdateProfile merges the given fields into the in-memory user and
// rewrites the persisted copy. It deliberately performs no network call:
// the upstream app never synced profile edits to the server, and no
// endpoint contract exists for it.
func (s *Store) UpdateProfile(update ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return fmt.Errorf("update profile: not signed in")
	}

	merged := *s.user
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Email != nil {
		merged.Email = *update.Email
	}
	if update.PhoneNumber != nil {
		merged.PhoneNumber = *update.PhoneNumber
	}
	if update.Address != nil {
		merged.Address = *update.Address
	}
	if update.Avatar != nil {
		merged.Avatar = *update.Avatar
	}

	if err := s.persist(merged, s.token); err != nil {
		return err
	}
	s.user = &merged
	return nil
}

// User returns a copy of the current user and whether one is signed in.
func (s *Store) User() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// Token returns the current bearer token, empty when signed out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Signed reports whether a user is signed in.
func (s *Store) Signed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Loading reports whether Restore has not completed yet.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// persist writes both session keys. Caller holds the lock.
func (s *Store) persist(user domain.User, token string) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.storage.Set(KeyUser, string(data)); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	if err := s.storage.Set(KeyToken, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

// tokenExpired screens the stored token's exp claim without verifying
// the signature; the client holds no verification key. Tokens that do
// not parse as JWTs are treated as opaque and accepted.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
