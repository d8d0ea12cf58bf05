// Package auth gates publishing behind a signed-in identity. The only
// implementation is a mock that accepts any non-empty credentials; real
// validation is out of scope and the interface shape does not imply it.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mayasahsra/write-verse-online/internal/storage"
)

// ErrInvalidCredentials is returned when the username or password is blank.
var ErrInvalidCredentials = errors.New("username and password are required")

type Authenticator interface {
	Login(username, password string) error
	Logout() error
	// Current returns the signed-in username, or "" when logged out.
	Current() string
}

type session struct {
	Username string `json:"username"`
}

// MockAuthenticator persists the identity in local storage so separate
// invocations share one session.
type MockAuthenticator struct {
	storage *storage.Storage
}

func NewMock(st *storage.Storage) *MockAuthenticator {
	return &MockAuthenticator{storage: st}
}

func (a *MockAuthenticator) Login(username, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return ErrInvalidCredentials
	}
	if err := a.storage.SetValue(storage.SessionKey, session{Username: username}); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

func (a *MockAuthenticator) Logout() error {
	return a.storage.DeleteValue(storage.SessionKey)
}

func (a *MockAuthenticator) Current() string {
	var s session
	found, err := a.storage.GetValue(storage.SessionKey, &s)
	if err != nil || !found {
		return ""
	}
	return s.Username
}
