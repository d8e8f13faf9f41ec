package rest

import (
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// taskResource is the public task shape; ownership never leaks out.
type taskResource struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsCompleted bool   `json:"is_completed"`
}

type taskBody struct {
	Data taskResource `json:"data"`
}

type taskListBody struct {
	Data []taskResource `json:"data"`
}

func presentTask(t *models.Task) taskBody {
	return taskBody{Data: taskResource{ID: t.ID, Name: t.Name, IsCompleted: t.IsCompleted}}
}

func presentTasks(tasks []*models.Task) taskListBody {
	out := taskListBody{Data: make([]taskResource, 0, len(tasks))}
	for _, t := range tasks {
		out.Data = append(out.Data, taskResource{ID: t.ID, Name: t.Name, IsCompleted: t.IsCompleted})
	}
	return out
}

type userResource struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func presentUser(u *models.User) userResource {
	return userResource{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}
