// Package auth verifies account credentials and issues the bearer tokens
// that the Connect interceptors check.
package auth

import (
	"context"

	"github.com/ArtysFactory/proofy/internal/models"
)

// Authenticator registers and verifies accounts.
type Authenticator interface {
	// Register creates an account. Emails are compared case-insensitively.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate returns the account for valid credentials and
	// ErrInvalidCredentials otherwise, without revealing which part was wrong.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential reports whether credential may be used on Register.
	ValidateCredential(credential string) error
}
