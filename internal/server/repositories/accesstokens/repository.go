// Package accesstokens provides persistence for opaque bearer tokens used by
// both authentication surfaces. A token authenticates for exactly as long as
// its row exists; deleting the row revokes it.
package accesstokens

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// Repository describes the token storage operations the services rely on.
type Repository interface {
	// Create inserts a new token row.
	Create(ctx context.Context, token *models.AccessToken) error

	// Find returns the token row with the exact token value, or
	// common.ErrorNotFound.
	Find(ctx context.Context, token string) (*models.AccessToken, error)

	// Delete removes the token row with the exact token value. Returns
	// common.ErrorNotFound when no such row exists.
	Delete(ctx context.Context, token string) error
}
