package rest

import (
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/policy"
	"github.com/dmitrijs2005/taskkeeper/internal/server/services"
)

type taskRequest struct {
	Name string `json:"name"`
}

type completeRequest struct {
	IsCompleted *bool `json:"is_completed"`
}

// --- v1: the public surface. No principal, global scope, no policy. ---

func (s *Server) v1ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.List(r.Context(), nil)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, presentTasks(tasks))
}

func (s *Server) v1CreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	decodeBody(r, &req)

	task, err := s.tasks.Create(r.Context(), nil, req.Name)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, presentTask(task))
}

func (s *Server) v1GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.tasks.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, presentTask(task))
}

func (s *Server) v1UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	decodeBody(r, &req)

	task, err := s.tasks.UpdateName(r.Context(), r.PathValue("id"), req.Name)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, presentTask(task))
}

func (s *Server) v1CompleteTask(w http.ResponseWriter, r *http.Request) {
	var req completeRequest
	decodeBody(r, &req)

	task, err := s.tasks.SetCompleted(r.Context(), r.PathValue("id"), req.IsCompleted)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, presentTask(task))
}

func (s *Server) v1DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := s.tasks.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- v2: bearer guard plus per-record policy, owner-scoped. ---

// fetchAuthorized loads the task by its global id and runs the policy on it,
// so a mutation never happens before the ownership decision.
func (s *Server) fetchAuthorized(r *http.Request, action policy.TaskAction) (*models.Task, error) {
	task, err := s.tasks.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		return nil, err
	}
	if err := policy.AuthorizeTask(action, principal(r.Context()), task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *Server) v2ListTasks(w http.ResponseWriter, r *http.Request) {
	user := principal(r.Context())
	if err := policy.AuthorizeTask(policy.TaskViewAny, user, nil); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	tasks, err := s.tasks.List(r.Context(), &services.Scope{OwnerID: user.ID})
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, presentTasks(tasks))
}

func (s *Server) v2CreateTask(w http.ResponseWriter, r *http.Request) {
	user := principal(r.Context())
	if err := policy.AuthorizeTask(policy.TaskCreate, user, nil); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	var req taskRequest
	decodeBody(r, &req)

	task, err := s.tasks.Create(r.Context(), &services.Scope{OwnerID: user.ID}, req.Name)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, presentTask(task))
}

func (s *Server) v2GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.fetchAuthorized(r, policy.TaskView)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, presentTask(task))
}

func (s *Server) v2UpdateTask(w http.ResponseWriter, r *http.Request) {
	if _, err := s.fetchAuthorized(r, policy.TaskUpdate); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	var req taskRequest
	decodeBody(r, &req)

	task, err := s.tasks.UpdateName(r.Context(), r.PathValue("id"), req.Name)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, presentTask(task))
}

func (s *Server) v2CompleteTask(w http.ResponseWriter, r *http.Request) {
	if _, err := s.fetchAuthorized(r, policy.TaskUpdate); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	var req completeRequest
	decodeBody(r, &req)

	task, err := s.tasks.SetCompleted(r.Context(), r.PathValue("id"), req.IsCompleted)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, presentTask(task))
}

func (s *Server) v2DeleteTask(w http.ResponseWriter, r *http.Request) {
	if _, err := s.fetchAuthorized(r, policy.TaskDelete); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	if err := s.tasks.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
