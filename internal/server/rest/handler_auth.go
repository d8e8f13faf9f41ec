package rest

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/services"
)

type registerRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authBody struct {
	Token string       `json:"token"`
	User  userResource `json:"user"`
}

// decodeBody fills dst from the request body. A missing or malformed body is
// not an error here: the zero value flows into validation, which reports the
// missing fields.
func decodeBody(r *http.Request, dst any) {
	if r.Body == nil {
		return
	}
	_ = json.NewDecoder(r.Body).Decode(dst)
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	decodeBody(r, &req)

	user, token, err := s.auth.Register(r.Context(), services.RegisterInput{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "email", user.Email)
	writeJSON(w, http.StatusCreated, authBody{Token: token, User: presentUser(user)})
}

// login verifies credentials and mints a fresh bearer token. Earlier tokens
// of the same user keep working, so each device holds its own.
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	decodeBody(r, &req)

	user, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	token, err := s.auth.IssueToken(r.Context(), user.ID, common.TokenNameAuth)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, authBody{Token: token, User: presentUser(user)})
}

// logout revokes exactly the token the request authenticated with.
func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.RevokeToken(r.Context(), credential(r.Context())); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// currentUser serves both guarded surfaces; the guard already resolved the
// principal.
func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, presentUser(principal(r.Context())))
}

// spaLogin verifies credentials, opens a cookie session backed by a freshly
// minted token, and rotates the CSRF pair.
func (s *Server) spaLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	decodeBody(r, &req)

	user, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	token, err := s.auth.IssueToken(r.Context(), user.ID, common.TokenNameSession)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	if err := s.openSession(w, r, token); err != nil {
		s.writeError(r.Context(), w, common.ErrorInternal)
		return
	}
	if err := s.rotateCSRF(w); err != nil {
		s.writeError(r.Context(), w, common.ErrorInternal)
		return
	}

	writeJSON(w, http.StatusOK, presentUser(user))
}

// spaLogout revokes the session's backing token and expires the cookie, so
// replaying the old cookie fails the guard, not just the browser state.
func (s *Server) spaLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.RevokeToken(r.Context(), credential(r.Context())); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	if err := s.closeSession(w, r); err != nil {
		s.writeError(r.Context(), w, common.ErrorInternal)
		return
	}
	if err := s.rotateCSRF(w); err != nil {
		s.writeError(r.Context(), w, common.ErrorInternal)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
