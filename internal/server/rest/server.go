// Package rest exposes the HTTP surface: the public v1 task API, the
// token-guarded v2 task API, and the cookie-session endpoints a browser
// SPA uses. Both guarded surfaces resolve their principal through the
// same AuthService; only the way the token travels differs.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/services"
	"github.com/gorilla/sessions"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address string
	logger  logging.Logger
	auth    *services.AuthService
	tasks   *services.TaskService
	store   *sessions.CookieStore
}

func NewServer(cfg *config.Config, l logging.Logger, auth *services.AuthService, tasks *services.TaskService) *Server {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Server{
		address: cfg.EndpointAddrHTTP,
		logger:  l.With("module", "rest_server"),
		auth:    auth,
		tasks:   tasks,
		store:   store,
	}
}

// Handler builds the route table. v1 is public, v2 requires a bearer token,
// /api/spa/* rides the session cookie.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", s.register)
	mux.HandleFunc("POST /api/auth/login", s.login)
	mux.Handle("POST /api/auth/logout", s.withBearerUser(http.HandlerFunc(s.logout)))
	mux.Handle("GET /api/user", s.withBearerUser(http.HandlerFunc(s.currentUser)))

	mux.HandleFunc("POST /api/spa/login", s.spaLogin)
	mux.Handle("POST /api/spa/logout", s.withSessionUser(http.HandlerFunc(s.spaLogout)))
	mux.Handle("GET /api/spa/user", s.withSessionUser(http.HandlerFunc(s.currentUser)))

	mux.HandleFunc("GET /api/v1/tasks", s.v1ListTasks)
	mux.HandleFunc("POST /api/v1/tasks", s.v1CreateTask)
	mux.HandleFunc("GET /api/v1/tasks/{id}", s.v1GetTask)
	mux.HandleFunc("PUT /api/v1/tasks/{id}", s.v1UpdateTask)
	mux.HandleFunc("PATCH /api/v1/tasks/{id}/complete", s.v1CompleteTask)
	mux.HandleFunc("DELETE /api/v1/tasks/{id}", s.v1DeleteTask)

	guard := s.withBearerUser
	mux.Handle("GET /api/v2/tasks", guard(http.HandlerFunc(s.v2ListTasks)))
	mux.Handle("POST /api/v2/tasks", guard(http.HandlerFunc(s.v2CreateTask)))
	mux.Handle("GET /api/v2/tasks/{id}", guard(http.HandlerFunc(s.v2GetTask)))
	mux.Handle("PUT /api/v2/tasks/{id}", guard(http.HandlerFunc(s.v2UpdateTask)))
	mux.Handle("PATCH /api/v2/tasks/{id}/complete", guard(http.HandlerFunc(s.v2CompleteTask)))
	mux.Handle("DELETE /api/v2/tasks/{id}", guard(http.HandlerFunc(s.v2DeleteTask)))

	return s.logRequests(mux)
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
