package models

import (
	"database/sql"
	"time"
)

// ProgressSession represents one anonymous-or-authenticated browser
// continuity. A session is created the first time a client without a token
// makes a request and is looked up by token from the client cookie
// thereafter.
//
// Invariant: once AccountID is set it is never cleared. Linking an anonymous
// session to an account is how practice history survives registration.
type ProgressSession struct {
	// ID is the internal unique identifier of the session row.
	ID int64 `json:"-"`

	// Token is the opaque, unique session token held by the client cookie.
	Token string `json:"token"`

	// AccountID is the owning account, NULL while the session is anonymous.
	AccountID sql.NullInt64 `json:"-"`

	// CreatedAt is the timestamp when the session row was created.
	CreatedAt time.Time `json:"created_at"`

	// LastActiveAt is touched on every request that presents this token.
	LastActiveAt time.Time `json:"last_active_at"`
}

// TableName returns the name of the database table
// associated with the ProgressSession model.
func (s ProgressSession) TableName() string {
	return "progress_sessions"
}
