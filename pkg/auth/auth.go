// Package auth is the external auth identity collaborator: admin accounts get
// a login identity provisioned here, and the back-office session (current
// user, sign-out) is issued against it.
package auth

import "errors"

// Identity is a provisioned login identity.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// UserChanges carries the fields of an identity update. Empty fields are left
// unchanged.
type UserChanges struct {
	Email    string
	Password string
}

// ErrInvalidCredentials is returned on a failed sign-in. The message does not
// reveal whether the email exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrIdentityNotFound is returned when no identity matches the given id.
var ErrIdentityNotFound = errors.New("identity not found")

// IdentityProvider manages login identities for admin accounts.
type IdentityProvider interface {
	// CreateUser provisions an identity and returns its id.
	CreateUser(email, password string) (string, error)
	UpdateUserByID(id string, changes UserChanges) error
	DeleteUser(id string) error
	// ListUsers returns all identities. Used only as a fallback lookup by
	// email when an admin record carries no identity reference.
	ListUsers() ([]Identity, error)
}

// SessionProvider exposes the opaque session surface consumed by the UI
// chrome: who is signed in, and sign-out.
type SessionProvider interface {
	SignIn(email, password string) (string, error)
	CurrentUser(token string) (*Identity, error)
	SignOut(token string) error
}
