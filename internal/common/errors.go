// Package common defines shared constants and sentinel errors used across
// TaskKeeper layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Auth errors: no valid credential resolved for the request.
	ErrorUnauthenticated = errors.New("unauthenticated")

	// Authorization errors: authenticated but not allowed to act.
	ErrorForbidden = errors.New("forbidden")
)
