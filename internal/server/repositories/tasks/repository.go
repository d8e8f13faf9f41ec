// Package tasks provides persistence for to-do items.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// Repository describes the task storage operations the services rely on.
// All listings come back in insertion order.
type Repository interface {
	// List returns every task regardless of owner (public v1 surface).
	List(ctx context.Context) ([]*models.Task, error)

	// ListByUser returns the tasks owned by userID (authenticated v2 surface).
	ListByUser(ctx context.Context, userID string) ([]*models.Task, error)

	// Create persists a new task and fills in the database-assigned
	// creation timestamp.
	Create(ctx context.Context, task *models.Task) (*models.Task, error)

	// Get returns the task with the given id, or common.ErrorNotFound.
	Get(ctx context.Context, id string) (*models.Task, error)

	// UpdateName renames the task and returns the updated row, or
	// common.ErrorNotFound.
	UpdateName(ctx context.Context, id, name string) (*models.Task, error)

	// SetCompleted sets the completion flag to exactly the supplied value
	// and returns the updated row, or common.ErrorNotFound.
	SetCompleted(ctx context.Context, id string, completed bool) (*models.Task, error)

	// Delete hard-deletes the task. Returns common.ErrorNotFound when the
	// row is already gone.
	Delete(ctx context.Context, id string) error
}
