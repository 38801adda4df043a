package sessionrepo

import "time"

// Session is the cookie-backed server-side session. No endpoint reads values
// from it yet; the store exists so session-scoped state has a home when a
// future requirement needs one.
type Session struct {
	ID        string
	CreatedAt time.Time
	Values    map[string]string
}

type Repo interface {
	Upsert(sessionID string, session Session) error
	Get(sessionID string) (Session, error)
	Delete(sessionID string) error
}
