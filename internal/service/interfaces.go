package service

import (
	"context"

	"github.com/mtorres/palabras/models"
)

type AuthService interface {
	// Register creates an account for the lowercased email with a bcrypt
	// credential hash.
	Register(ctx context.Context, email, password string) (models.Account, error)

	// Login verifies credentials and updates last_login_at.
	Login(ctx context.Context, email, password string) (models.Account, error)

	// CreateToken issues a signed JWT for the account.
	CreateToken(ctx context.Context, accountID int64) (models.Token, error)

	// ParseToken validates a raw JWT string, normalising every validation
	// failure to ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type IdentityService interface {
	// Resolve maps the client-held session token and the authenticated
	// account (0 when anonymous) to a progress identity. Returns the
	// identity and the session token the client should persist, which is
	// newly minted when token was empty.
	Resolve(ctx context.Context, token string, accountID int64) (models.Identity, string, error)
}

type SentenceService interface {
	// Generate assembles up to count practice sentences for the
	// (theme, wordType) key, annotated with the identity's learned status.
	// An empty result is a legitimate "nothing to practice" outcome.
	Generate(ctx context.Context, theme, wordType string, id models.Identity, count int) ([]models.Sentence, error)
}

type PracticeService interface {
	// RecordPractice writes the ledger row for (sessionToken, wordID).
	// Recording an already-practiced word is a no-op.
	RecordPractice(ctx context.Context, sessionToken string, wordID int64, theme, wordType string) error

	// ToggleLearned flips the learned flag. found is false when the word
	// has never been practiced in this session.
	ToggleLearned(ctx context.Context, sessionToken string, wordID int64) (found bool, learned bool, err error)

	// Stats aggregates the identity's practice history: account-wide for
	// account identities, session-local otherwise.
	Stats(ctx context.Context, id models.Identity) (models.PracticeStats, error)
}

type IntakeService interface {
	// ProcessBulk runs the full intake pipeline on raw textarea input for
	// the account: parse, validate, classify, persist. The result carries
	// per-stage counts and user-facing error strings even on partial
	// success.
	ProcessBulk(ctx context.Context, accountID int64, rawText string) (models.BulkResult, error)

	// ListWords returns the account's curated words, optionally narrowed.
	ListWords(ctx context.Context, accountID int64, filter models.CuratedWordFilter) ([]models.CuratedWord, error)

	// UpdateWord applies a partial update to an owned word.
	UpdateWord(ctx context.Context, update models.CuratedWordUpdate) (models.CuratedWord, error)

	// DeleteWord removes an owned word and its dependent rows.
	DeleteWord(ctx context.Context, accountID, wordID int64) error

	// RandomWord picks a random owned word by learned state, for the study
	// and revise flows.
	RandomWord(ctx context.Context, accountID int64, learned bool) (models.CuratedWord, error)
}
