// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/ArtysFactory/proofy/internal/models"
)

var (
	// ErrNotFound is wrapped by every lookup that matches no row.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a unique value (email, file hash) is
	// already taken.
	ErrDuplicate = errors.New("already exists")
)

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// WorkStore persists registered works.
type WorkStore interface {
	// CreateWork persists a new work. ID, PublicID, CreatedAt and
	// AnchorStatus are populated by the store when empty.
	CreateWork(ctx context.Context, work *models.Work) error

	GetWork(ctx context.Context, id string) (*models.Work, error)
	GetWorkByPublicID(ctx context.Context, publicID string) (*models.Work, error)
	GetWorkByFileHash(ctx context.Context, fileHash string) (*models.Work, error)

	// ListWorksByOwner returns the owner's works, newest first.
	ListWorksByOwner(ctx context.Context, ownerID string) ([]*models.Work, error)

	// UpdateAnchor records the anchoring outcome for a work. It is the
	// only mutation allowed after creation.
	UpdateAnchor(ctx context.Context, id string, status models.AnchorStatus, txHash string) error
}

// Store defines every storage operation the services need.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	UserStore
	WorkStore

	// Close releases any resources held by the store.
	Close() error
}
