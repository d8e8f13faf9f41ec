package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/validation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type messageBody struct {
	Message string `json:"message"`
}

// writeError maps service-layer failures to their HTTP shape: aggregated
// validation errors become a 422 with per-field messages, sentinels map to
// their status, anything unexpected is logged and hidden behind a 500.
func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]validation.Errors{"errors": verrs})
		return
	}

	switch {
	case errors.Is(err, common.ErrorUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, messageBody{Message: "Unauthenticated."})
	case errors.Is(err, common.ErrorForbidden):
		writeJSON(w, http.StatusForbidden, messageBody{Message: "This action is unauthorized."})
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, messageBody{Message: "Not found."})
	case errors.Is(err, errCSRFMismatch):
		writeJSON(w, http.StatusForbidden, messageBody{Message: "CSRF token mismatch."})
	default:
		s.logger.Error(ctx, "request failed", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, messageBody{Message: "Server error."})
	}
}
