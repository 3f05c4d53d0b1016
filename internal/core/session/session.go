package session

import (
	"encoding/json"
	"errors"
	"log"

	"pension-admin/internal/adapters/localstore"
	"pension-admin/internal/core/domain"
	"pension-admin/internal/pkg/jwt"
)

// Store holds the current authenticated identity. It is constructed once
// and injected into whatever needs it; there is no package-level instance.
//
// Every mutation writes through to the local store before the in-memory
// copy changes, so a fresh process reading the same storage reconstructs
// the same session.
type Store struct {
	storage         *localstore.Store
	navigateToLogin func()
	user            *domain.User
}

// New creates a session store over the given persistent storage. The
// navigateToLogin hook is invoked by Logout, mirroring the dashboard's
// redirect to the login page.
func New(storage *localstore.Store, navigateToLogin func()) *Store {
	return &Store{storage: storage, navigateToLogin: navigateToLogin}
}

// Initialize reconstructs the in-memory identity from persisted storage.
// Malformed stored data is treated as an absent identity, never an error.
func (s *Store) Initialize() {
	raw, err := s.storage.Get(localstore.KeyUser)
	if err != nil {
		s.user = nil
		return
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Printf("ignoring malformed stored user: %v", err)
		s.user = nil
		return
	}
	s.user = &user
}

// SetIdentity replaces the current identity. Passing nil clears it. The
// authenticated flag is never tracked separately; it is simply whether an
// identity is present.
func (s *Store) SetIdentity(user *domain.User) error {
	if user == nil {
		if err := s.storage.Remove(localstore.KeyUser); err != nil {
			return err
		}
		s.user = nil
		return nil
	}

	encoded, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.storage.Set(localstore.KeyUser, string(encoded)); err != nil {
		return err
	}

	copied := *user
	s.user = &copied
	return nil
}

// Current returns the authenticated user, or nil.
func (s *Store) Current() *domain.User {
	return s.user
}

// IsAuthenticated reports whether an identity is present.
func (s *Store) IsAuthenticated() bool {
	return s.user != nil
}

// HasRole reports whether the current user holds the given role.
func (s *Store) HasRole(role domain.Role) bool {
	return s.user != nil && s.user.Role == role
}

// Credential returns the stored bearer token, if any.
func (s *Store) Credential() (string, bool) {
	token, err := s.storage.Get(localstore.KeyAuthToken)
	if err != nil {
		if !errors.Is(err, localstore.ErrKeyNotFound) {
			log.Printf("failed to read credential: %v", err)
		}
		return "", false
	}
	return token, true
}

// CredentialExpired reports whether the stored token carries an expiry in
// the past. This is a local hint only; the backend remains the authority.
func (s *Store) CredentialExpired() bool {
	token, ok := s.Credential()
	if !ok {
		return false
	}
	return jwt.IsExpired(token)
}

// Logout clears the persisted credential and identity together, fires the
// login navigation hook, then drops the in-memory identity.
func (s *Store) Logout() error {
	if err := s.storage.Clear(); err != nil {
		return err
	}
	if s.navigateToLogin != nil {
		s.navigateToLogin()
	}
	s.user = nil
	return nil
}
