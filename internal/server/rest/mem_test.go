package rest

// In-memory repositories backing the HTTP tests, so the full stack from
// router to service runs against real data without a database.

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/accesstokens"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
)

type memState struct {
	mu     sync.Mutex
	users  map[string]*models.User        // by id
	tokens map[string]*models.AccessToken // by token value
	tasks  []*models.Task                 // insertion order
}

func newMemState() *memState {
	return &memState{
		users:  map[string]*models.User{},
		tokens: map[string]*models.AccessToken{},
	}
}

type memRepoManager struct {
	state *memState
}

func (m *memRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *memRepoManager) Users(dbx.DBTX) users.Repository             { return &memUsers{m.state} }
func (m *memRepoManager) AccessTokens(dbx.DBTX) accesstokens.Repository {
	return &memTokens{m.state}
}
func (m *memRepoManager) Tasks(dbx.DBTX) tasks.Repository { return &memTasks{m.state} }

type memUsers struct{ s *memState }

func (r *memUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u.CreatedAt = time.Now()
	r.s.users[u.ID] = u
	return u, nil
}

func (r *memUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (r *memUsers) EmailExists(ctx context.Context, email string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type memTokens struct{ s *memState }

func (r *memTokens) Create(ctx context.Context, token *models.AccessToken) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	token.CreatedAt = time.Now()
	r.s.tokens[token.Token] = token
	return nil
}

func (r *memTokens) Find(ctx context.Context, token string) (*models.AccessToken, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	at, ok := r.s.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return at, nil
}

func (r *memTokens) Delete(ctx context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tokens[token]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.tokens, token)
	return nil
}

type memTasks struct{ s *memState }

func (r *memTasks) List(ctx context.Context) ([]*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*models.Task, len(r.s.tasks))
	copy(out, r.s.tasks)
	return out, nil
}

func (r *memTasks) ListByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*models.Task
	for _, t := range r.s.tasks {
		if t.UserID.Valid && t.UserID.String == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTasks) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	task.CreatedAt = time.Now()
	r.s.tasks = append(r.s.tasks, task)
	return task, nil
}

func (r *memTasks) Get(ctx context.Context, id string) (*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memTasks) UpdateName(ctx context.Context, id, name string) (*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.tasks {
		if t.ID == id {
			t.Name = name
			return t, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memTasks) SetCompleted(ctx context.Context, id string, completed bool) (*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.tasks {
		if t.ID == id {
			t.IsCompleted = completed
			return t, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memTasks) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, t := range r.s.tasks {
		if t.ID == id {
			r.s.tasks = append(r.s.tasks[:i], r.s.tasks[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}
