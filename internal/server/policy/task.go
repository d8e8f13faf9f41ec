// Package policy holds the per-resource authorization rules. Each decision is
// an explicit function of (action, principal, resource) returning allow or
// deny; there is no registry or dynamic dispatch.
package policy

import (
	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// TaskAction enumerates the operations gated on a task.
type TaskAction string

const (
	TaskViewAny TaskAction = "viewAny"
	TaskCreate  TaskAction = "create"
	TaskView    TaskAction = "view"
	TaskUpdate  TaskAction = "update"
	TaskDelete  TaskAction = "delete"
)

// AuthorizeTask decides whether principal may perform action on task.
// Listing and creation require only an authenticated principal; view, update
// and delete additionally require ownership. task may be nil for viewAny and
// create.
//
// Returns common.ErrorUnauthenticated when no principal is present and
// common.ErrorForbidden when the principal is not allowed to act.
func AuthorizeTask(action TaskAction, principal *models.User, task *models.Task) error {
	if principal == nil {
		return common.ErrorUnauthenticated
	}

	switch action {
	case TaskViewAny, TaskCreate:
		return nil
	case TaskView, TaskUpdate, TaskDelete:
		if task == nil || !task.OwnedBy(principal.ID) {
			return common.ErrorForbidden
		}
		return nil
	default:
		return common.ErrorForbidden
	}
}
