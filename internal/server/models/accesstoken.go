package models

import "time"

// AccessToken is an opaque bearer credential bound to one user. Token holds
// the random value presented by clients; deleting the row revokes it. A user
// may hold several tokens at once (one per device/session).
type AccessToken struct {
	ID        string
	UserID    string
	Name      string
	Token     string
	CreatedAt time.Time
}
