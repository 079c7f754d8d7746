package store

import (
	"context"
	"time"

	"github.com/mtorres/palabras/models"
)

// AccountRepository persists registered user accounts.
type AccountRepository interface {
	// CreateAccount inserts a new account and returns it with
	// server-assigned fields populated. Returns [ErrEmailAlreadyExists]
	// when the email is already registered.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// FindAccountByEmail looks up an account by its lowercased email.
	// Returns [ErrNoAccountWasFound] when no row matches.
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)

	// TouchLastLogin updates last_login_at to the current time.
	TouchLastLogin(ctx context.Context, accountID int64) error
}

// SessionRepository persists progress sessions and their account linkage.
type SessionRepository interface {
	// CreateSession inserts a new session row. Returns
	// [ErrSessionTokenAlreadyExists] when the token lost a creation race;
	// callers should re-fetch and proceed.
	CreateSession(ctx context.Context, session models.ProgressSession) (models.ProgressSession, error)

	// FindSessionByToken looks a session up by its opaque token.
	// Returns [ErrSessionNotFound] when no row matches.
	FindSessionByToken(ctx context.Context, token string) (models.ProgressSession, error)

	// LinkSessionToAccount sets account_id on the session, but only when it
	// is currently NULL. Once linked, a session is never reassigned.
	LinkSessionToAccount(ctx context.Context, token string, accountID int64) error

	// TouchSession updates last_active_at to the current time.
	TouchSession(ctx context.Context, token string) error

	// SessionTokensForAccount returns the tokens of every session ever
	// linked to the account. Used for account-wide stats aggregation.
	SessionTokensForAccount(ctx context.Context, accountID int64) ([]string, error)

	// PruneIdleAnonymousSessions deletes anonymous sessions idle since
	// before the cutoff that have no practice history. Returns the number
	// of rows removed.
	PruneIdleAnonymousSessions(ctx context.Context, idleSince time.Time) (int64, error)
}

// VocabularyRepository reads the seeded reference data.
type VocabularyRepository interface {
	// WordsByThemeAndType returns every vocabulary word matching the key.
	// An empty result is not an error.
	WordsByThemeAndType(ctx context.Context, theme, wordType string) ([]models.VocabularyWord, error)

	// TemplatesByThemeAndType returns every sentence template matching the
	// key. An empty result is not an error.
	TemplatesByThemeAndType(ctx context.Context, theme, wordType string) ([]models.SentenceTemplate, error)
}

// PracticeRepository persists the practice ledger.
type PracticeRepository interface {
	// InsertPractice writes one practice record. Returns
	// [ErrAlreadyPracticed] when the (session_token, word_id) pair already
	// exists; the existing row is left untouched.
	InsertPractice(ctx context.Context, record models.PracticeRecord) error

	// FindPractice returns the record for (sessionToken, wordID), or
	// [ErrPracticeNotFound].
	FindPractice(ctx context.Context, sessionToken string, wordID int64) (models.PracticeRecord, error)

	// SetLearned overwrites the learned flag on an existing record.
	SetLearned(ctx context.Context, sessionToken string, wordID int64, learned bool) error

	// LearnedWordIDs reports which of wordIDs are marked learned in any of
	// the given session tokens.
	LearnedWordIDs(ctx context.Context, sessionTokens []string, wordIDs []int64) (map[int64]bool, error)

	// StatsForTokens aggregates practiced/learned counts and the by-theme
	// breakdown over the given session tokens. Only observed themes appear
	// in the breakdown.
	StatsForTokens(ctx context.Context, sessionTokens []string) (models.PracticeStats, error)
}

// CuratedWordRepository persists user-curated vocabulary.
type CuratedWordRepository interface {
	// ExistsForAccount reports whether the account already owns the word
	// (case-insensitive Spanish text).
	ExistsForAccount(ctx context.Context, accountID int64, spanish string) (bool, error)

	// InsertBatch inserts the classified words in a single transaction.
	// Words that became duplicates since validation are skipped and
	// counted. On commit failure the whole batch is rolled back and an
	// error wrapping [ErrCommittingTransaction] is returned.
	InsertBatch(ctx context.Context, accountID int64, words []models.ClassifiedWord) (created []models.CuratedWord, duplicates int, err error)

	// ListByAccount returns the account's curated words, newest first,
	// narrowed by the optional filter.
	ListByAccount(ctx context.Context, accountID int64, filter models.CuratedWordFilter) ([]models.CuratedWord, error)

	// UpdateWord applies a partial update to an owned word and returns the
	// updated row. Returns [ErrCuratedWordNotFound] when the word does not
	// exist or belongs to another account.
	UpdateWord(ctx context.Context, update models.CuratedWordUpdate) (models.CuratedWord, error)

	// DeleteWord removes an owned word together with its generated examples
	// and practice attempts. Returns [ErrCuratedWordNotFound] when the word
	// does not exist or belongs to another account.
	DeleteWord(ctx context.Context, accountID, wordID int64) error

	// RandomWord picks one random owned word with the given learned state,
	// or returns [ErrCuratedWordNotFound] when none exists.
	RandomWord(ctx context.Context, accountID int64, learned bool) (models.CuratedWord, error)
}
