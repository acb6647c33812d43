// Package auth gates the admin surface.
//
// StaticAuthenticator checks a single configured username/password pair. It is
// a placeholder and NOT a security boundary; replace it with a real credential
// store behind the same Authenticator interface.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const RoleAdmin = "admin"

// Principal is an authenticated caller.
type Principal struct {
	Username string
	Role     string
}

// Authenticator verifies a username/password pair.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (Principal, error)
}

// StaticAuthenticator accepts exactly one credential pair.
type StaticAuthenticator struct {
	username string
	hash     []byte
}

// NewStaticAuthenticator hashes password once; the plain value is not kept.
func NewStaticAuthenticator(username, password string) (*StaticAuthenticator, error) {
	if username == "" || password == "" {
		return nil, errors.New("admin username and password must be set")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &StaticAuthenticator{username: username, hash: hash}, nil
}

func (a *StaticAuthenticator) Authenticate(_ context.Context, username, password string) (Principal, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(a.hash, []byte(password))
	if !userOK || passErr != nil {
		return Principal{}, ErrInvalidCredentials
	}
	return Principal{Username: a.username, Role: RoleAdmin}, nil
}
