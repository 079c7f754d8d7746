package utils

import "github.com/google/uuid"

// TokenGenerator mints opaque progress-session tokens. Tokens are UUIDs, so
// the collision probability between independently minted tokens is
// negligible.
type TokenGenerator struct {
}

func NewTokenGenerator() *TokenGenerator {
	return &TokenGenerator{}
}

// Generate returns a new opaque session token. UUIDv7 is preferred for its
// sortable timestamp prefix; on failure a random UUIDv4 is used instead.
func (g *TokenGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
