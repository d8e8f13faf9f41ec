// Package users provides persistence for registered accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// Repository describes the user storage operations the services rely on.
type Repository interface {
	// Create persists a new user and fills in the database-assigned
	// creation timestamp.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user registered under email, or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// EmailExists reports whether a user is already registered under email.
	EmailExists(ctx context.Context, email string) (bool, error)
}
