package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

const (
	sessionName = "taskkeeper_session"

	// sessionTokenField is the session value holding the server-side token
	// the cookie authenticates with.
	sessionTokenField = "token"

	csrfCookieName = "XSRF-TOKEN"
	csrfHeaderName = "X-XSRF-TOKEN"

	csrfByteLen = 32
)

var errCSRFMismatch = errors.New("csrf token mismatch")

// openSession writes the token value into the encrypted session cookie.
func (s *Server) openSession(w http.ResponseWriter, r *http.Request, token string) error {
	sess, _ := s.store.Get(r, sessionName)
	sess.Values[sessionTokenField] = token
	return sess.Save(r, w)
}

// closeSession expires the session cookie. The token it carried is revoked
// separately, so copies of the cookie stop authenticating too.
func (s *Server) closeSession(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.store.Get(r, sessionName)
	delete(sess.Values, sessionTokenField)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// sessionToken extracts the token value from the session cookie, or "" when
// there is no usable session.
func (s *Server) sessionToken(r *http.Request) string {
	sess, err := s.store.Get(r, sessionName)
	if err != nil {
		return ""
	}
	token, _ := sess.Values[sessionTokenField].(string)
	return token
}

// rotateCSRF issues a fresh CSRF token cookie. The cookie is intentionally
// readable by scripts; the SPA echoes it back in the X-XSRF-TOKEN header,
// which a cross-site attacker cannot do.
func (s *Server) rotateCSRF(w http.ResponseWriter) error {
	value, err := common.MakeRandHexString(csrfByteLen)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// checkCSRF verifies the double-submit pair: header and cookie must both be
// present and equal.
func (s *Server) checkCSRF(r *http.Request) bool {
	header := r.Header.Get(csrfHeaderName)
	if header == "" {
		return false
	}
	cookie, err := r.Cookie(csrfCookieName)
	if err != nil {
		return false
	}
	return cookie.Value == header
}
