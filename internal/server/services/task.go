package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskkeeper/internal/validation"
	"github.com/google/uuid"
)

// Scope restricts listing and creation to one owner's tasks. A nil *Scope
// means the global, unowned view used by the public v1 surface.
type Scope struct {
	OwnerID string
}

// TaskService implements CRUD over tasks. Lookups by id are always global;
// the transport layer runs the authorization policy on the fetched task
// before any mutation.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTaskService constructs a TaskService using repositories and server config.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager, _ *config.Config) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// List returns tasks in insertion order: all of them for a nil scope, the
// owner's tasks otherwise.
func (s *TaskService) List(ctx context.Context, scope *Scope) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	if scope == nil {
		tasks, err := repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("error listing tasks: %v", err)
		}
		return tasks, nil
	}
	tasks, err := repo.ListByUser(ctx, scope.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %v", err)
	}
	return tasks, nil
}

// Create validates the name and persists a new, uncompleted task, owned by
// the scope's user when one is given.
func (s *TaskService) Create(ctx context.Context, scope *Scope, name string) (*models.Task, error) {
	v := validation.New()
	v.Require("name", name)
	if err := v.Err(); err != nil {
		return nil, err
	}

	task := &models.Task{ID: uuid.NewString(), Name: name}
	if scope != nil {
		task.UserID = sql.NullString{String: scope.OwnerID, Valid: true}
	}

	created, err := s.repomanager.Tasks(s.db).Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %v", err)
	}
	return created, nil
}

// Get fetches a task by its global id. Malformed and unknown ids are the
// same ErrorNotFound to the caller.
func (s *TaskService) Get(ctx context.Context, id string) (*models.Task, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.repomanager.Tasks(s.db).Get(ctx, id)
}

// UpdateName validates and applies a new name, returning the updated task.
func (s *TaskService) UpdateName(ctx context.Context, id, name string) (*models.Task, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	v := validation.New()
	v.Require("name", name)
	if err := v.Err(); err != nil {
		return nil, err
	}

	return s.repomanager.Tasks(s.db).UpdateName(ctx, id, name)
}

// SetCompleted sets the completion flag to exactly the supplied value, so
// repeating a call with the same value is idempotent. A missing value is a
// validation failure, not a toggle.
func (s *TaskService) SetCompleted(ctx context.Context, id string, completed *bool) (*models.Task, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	if completed == nil {
		return nil, validation.Errors{"is_completed": {"The is completed field is required."}}
	}

	return s.repomanager.Tasks(s.db).SetCompleted(ctx, id, *completed)
}

// Delete hard-deletes the task; deleting an already-deleted id fails with
// ErrorNotFound just like the first delete of an unknown id.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return s.repomanager.Tasks(s.db).Delete(ctx, id)
}

// validateID rejects values that cannot be a stored task id before they
// reach the database, mapping them to the same not-found failure an unknown
// id would produce.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}
	return nil
}
