// Package session holds the gateway-side auth state. It replaces the
// SPA's local storage with an explicit, thread-safe store so that every
// reader and writer of the auth keys is visible in the wiring.
package session

import (
	"strconv"
	"sync"
)

const (
	keyIsAuthenticated = "isAuthenticated"
	keyUserID          = "userId"
	keyUserEmail       = "userEmail"
	keyAccessToken     = "accessToken"
	keyUserRole        = "userRole"
)

// Store is an in-memory key/value session. The zero value is not ready;
// use New.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates an empty session store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// SignIn stores the authenticated identity in one step.
func (s *Store) SignIn(userID int, email, token, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[keyIsAuthenticated] = "true"
	s.values[keyUserID] = strconv.Itoa(userID)
	s.values[keyUserEmail] = email
	s.values[keyAccessToken] = token
	s.values[keyUserRole] = role
}

// SignOut removes every auth key.
func (s *Store) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, keyIsAuthenticated)
	delete(s.values, keyUserID)
	delete(s.values, keyUserEmail)
	delete(s.values, keyAccessToken)
	delete(s.values, keyUserRole)
}

// ClearAuth drops the authenticated flag and the token but keeps the
// user's id and email. This is what a rejected bearer token triggers.
func (s *Store) ClearAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, keyIsAuthenticated)
	delete(s.values, keyAccessToken)
}

// IsAuthenticated reports whether the session carries a signed-in user.
func (s *Store) IsAuthenticated() bool {
	return s.get(keyIsAuthenticated) == "true"
}

// UserID returns the signed-in user's id, zero when absent.
func (s *Store) UserID() int {
	v, err := strconv.Atoi(s.get(keyUserID))
	if err != nil {
		return 0
	}
	return v
}

// UserEmail returns the signed-in user's email.
func (s *Store) UserEmail() string { return s.get(keyUserEmail) }

// AccessToken returns the stored bearer token, empty when absent.
func (s *Store) AccessToken() string { return s.get(keyAccessToken) }

// UserRole returns the stored role, empty when absent.
func (s *Store) UserRole() string { return s.get(keyUserRole) }

func (s *Store) get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}
