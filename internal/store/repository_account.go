package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/mtorres/palabras/internal/logger"
	"github.com/mtorres/palabras/models"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It handles account creation and lookup against the
// "accounts" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account record and returns the fully
// populated [models.Account] with server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAccount, account.Email, account.PasswordHash)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrEmailAlreadyExists
		default:
			return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&account.ID, &account.Email, &account.PasswordHash, &account.CreatedAt, &account.LastLoginAt); err != nil {
		// the unique violation may surface at scan time instead of row.Err
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Account{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: scanning error")
		return models.Account{}, err
	}

	return account, nil
}

// FindAccountByEmail retrieves the account whose email matches the provided
// (lowercased) value.
//
// Error handling:
//   - sql.ErrNoRows → [ErrNoAccountWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	var foundAccount models.Account
	row := r.db.QueryRowContext(ctx, findAccountByEmail, email)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccountByEmail").Msg("error: row is nil")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&foundAccount.ID, &foundAccount.Email, &foundAccount.PasswordHash, &foundAccount.CreatedAt, &foundAccount.LastLoginAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountWasFound
		}
		log.Err(err).Str("func", "*accountRepository.FindAccountByEmail").Msg("error: scanning error")
		return models.Account{}, err
	}

	return foundAccount, nil
}

// TouchLastLogin updates last_login_at on the account to the current time.
func (r *accountRepository) TouchLastLogin(ctx context.Context, accountID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, touchAccountLastLogin, accountID); err != nil {
		log.Err(err).Str("func", "*accountRepository.TouchLastLogin").Msg("error updating last login")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
