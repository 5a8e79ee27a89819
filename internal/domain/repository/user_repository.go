// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"passport/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByDocument retrieves a single user by their unique document.
	FindByDocument(ctx context.Context, document string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Save persists a new user entity to the storage and fills in the
	// store-assigned ID and creation timestamp.
	Save(ctx context.Context, user *entity.User) error

	// UpdateLastLogin stamps the user's most recent successful login.
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
}
