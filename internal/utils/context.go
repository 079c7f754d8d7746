// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// session token minting, and other common operations.
package utils

import (
	"context"

	"github.com/mtorres/palabras/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AccountIDCtxKey is the key used to store the authenticated account
// identifier in the context. Used together with GetAccountIDFromContext for
// type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AccountIDCtxKey, int64(42))
var AccountIDCtxKey = contextKey("accountID")

// SessionTokenCtxKey is the key used to store the resolved progress-session
// token in the context. It is populated once per request by the session
// middleware.
var SessionTokenCtxKey = contextKey("sessionToken")

// IdentityCtxKey is the key used to store the resolved progress identity in
// the context. It is populated once per request by the session middleware.
var IdentityCtxKey = contextKey("identity")

// GetAccountIDFromContext retrieves the authenticated account identifier
// from the context.
//
// Returns the account ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing (anonymous request) or has an
//     unexpected type
func GetAccountIDFromContext(ctx context.Context) (int64, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(int64)
	return accountID, ok
}

// GetSessionTokenFromContext retrieves the resolved progress-session token
// from the context.
func GetSessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(SessionTokenCtxKey).(string)
	return token, ok
}

// GetIdentityFromContext retrieves the resolved progress identity from the
// context. Callers outside of a request should fall back to
// models.SentinelIdentity when ok is false.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return id, ok
}
