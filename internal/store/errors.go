package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// account fails because an account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoAccountWasFound is returned when a query expected to match at
	// least one account record produces an empty result set.
	ErrNoAccountWasFound = errors.New("no account was found")

	// ErrSessionNotFound is returned when no progress session exists for a
	// presented token (e.g. the database was reset but the cookie persisted).
	ErrSessionNotFound = errors.New("progress session was not found")

	// ErrSessionTokenAlreadyExists is returned when an INSERT of a progress
	// session loses a same-token race. Callers should re-fetch the existing
	// row and proceed.
	ErrSessionTokenAlreadyExists = errors.New("session token already exists")

	// ErrAlreadyPracticed is returned when a practice INSERT hits the
	// (session_token, word_id) uniqueness constraint. The word is already
	// recorded; callers treat this as a no-op, not a failure.
	ErrAlreadyPracticed = errors.New("word already practiced in this session")

	// ErrPracticeNotFound is returned when a toggle or lookup targets a
	// (session_token, word_id) pair with no practice record. A word must be
	// practiced before it can be marked learned.
	ErrPracticeNotFound = errors.New("practice record was not found")

	// ErrCuratedWordAlreadyExists is returned when inserting a curated word
	// that already exists for the account (case-insensitive Spanish text).
	ErrCuratedWordAlreadyExists = errors.New("curated word already exists")

	// ErrCuratedWordNotFound is returned when an update or delete targets a
	// curated word that does not exist or is not owned by the caller.
	ErrCuratedWordNotFound = errors.New("curated word was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back at this
	// point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
