package models

// IdentityKind distinguishes the two scopes a progress identifier can have.
type IdentityKind string

const (
	// IdentityAccount scopes statistics and learned flags to an account,
	// spanning every session ever linked to it.
	IdentityAccount IdentityKind = "account"

	// IdentitySession scopes statistics and learned flags to a single
	// browser session.
	IdentitySession IdentityKind = "session"
)

// Identity is the resolved progress identifier used as the key for all
// practice statistics and learned-status lookups. It is a tagged union:
// exactly one of AccountID or SessionToken is meaningful, selected by Kind.
//
// Modelling the session-vs-account duality as a single value keeps the
// stats and assembler code free of scattered "if authenticated" branches.
type Identity struct {
	Kind IdentityKind `json:"kind"`

	// AccountID is set when Kind == IdentityAccount.
	AccountID int64 `json:"account_id,omitempty"`

	// SessionToken is set when Kind == IdentitySession.
	SessionToken string `json:"session_token,omitempty"`
}

// AccountIdentity returns an account-scoped identity.
func AccountIdentity(accountID int64) Identity {
	return Identity{Kind: IdentityAccount, AccountID: accountID}
}

// SessionIdentity returns a session-scoped identity.
func SessionIdentity(token string) Identity {
	return Identity{Kind: IdentitySession, SessionToken: token}
}

// sentinelSessionToken is returned when identity resolution happens outside
// of a request context (e.g. a batch job), where statistics are meaningless.
const sentinelSessionToken = "out-of-request"

// SentinelIdentity returns the fixed identity used outside of a request
// context. It never matches any persisted practice record.
func SentinelIdentity() Identity {
	return SessionIdentity(sentinelSessionToken)
}

// IsSentinel reports whether the identity is the out-of-request sentinel.
func (i Identity) IsSentinel() bool {
	return i.Kind == IdentitySession && i.SessionToken == sentinelSessionToken
}
