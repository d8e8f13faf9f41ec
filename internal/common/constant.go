package common

const (
	// TokenNameAuth labels access tokens issued to API clients on
	// register/login over the bearer-token surface.
	TokenNameAuth = "auth_token"

	// TokenNameSession labels access tokens backing browser sessions on the
	// cookie surface. The token value lives inside the encrypted session
	// cookie and is revoked on logout.
	TokenNameSession = "session_token"
)
