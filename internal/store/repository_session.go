package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/mtorres/palabras/internal/logger"
	"github.com/mtorres/palabras/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository]. It manages the "progress_sessions" table that carries
// the anonymous-to-account linkage for practice history.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new progress session and returns the fully
// populated [models.ProgressSession].
//
// Two requests from the same new client may race to create a row for the
// same token; the token uniqueness constraint resolves the race. The loser
// receives [ErrSessionTokenAlreadyExists] and should re-fetch the winner's
// row instead of failing the request.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.ProgressSession) (models.ProgressSession, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSession, session.Token, session.AccountID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.ProgressSession{}, ErrSessionTokenAlreadyExists
		default:
			return models.ProgressSession{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&session.ID, &session.Token, &session.AccountID, &session.CreatedAt, &session.LastActiveAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.ProgressSession{}, ErrSessionTokenAlreadyExists
		}
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: scanning error")
		return models.ProgressSession{}, err
	}

	return session, nil
}

// FindSessionByToken retrieves the session row for the presented token, or
// [ErrSessionNotFound] when the token is unknown (e.g. the database was
// reset while the client cookie persisted).
func (r *sessionRepository) FindSessionByToken(ctx context.Context, token string) (models.ProgressSession, error) {
	log := logger.FromContext(ctx)

	var session models.ProgressSession
	row := r.db.QueryRowContext(ctx, findSessionByToken, token)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindSessionByToken").Msg("error: row is nil")
		return models.ProgressSession{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&session.ID, &session.Token, &session.AccountID, &session.CreatedAt, &session.LastActiveAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ProgressSession{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*sessionRepository.FindSessionByToken").Msg("error: scanning error")
		return models.ProgressSession{}, err
	}

	return session, nil
}

// LinkSessionToAccount sets account_id on the session identified by token,
// but only while it is NULL. A session already linked to another account is
// left untouched; affecting zero rows is not an error because a concurrent
// request may have performed the identical link first.
func (r *sessionRepository) LinkSessionToAccount(ctx context.Context, token string, accountID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, linkSessionToAccount, token, accountID); err != nil {
		log.Err(err).Str("func", "*sessionRepository.LinkSessionToAccount").Msg("error linking session to account")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// TouchSession updates last_active_at on the session to the current time.
func (r *sessionRepository) TouchSession(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, touchSession, token); err != nil {
		log.Err(err).Str("func", "*sessionRepository.TouchSession").Msg("error touching session")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// SessionTokensForAccount returns the token of every session ever linked to
// the account. The result feeds the cross-session aggregation that makes
// account-scoped statistics span devices.
func (r *sessionRepository) SessionTokensForAccount(ctx context.Context, accountID int64) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, sessionTokensForAccount, accountID)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.SessionTokensForAccount").Msg("error querying session tokens")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			log.Err(err).Str("func", "*sessionRepository.SessionTokensForAccount").Msg("error scanning token")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tokens, nil
}

// PruneIdleAnonymousSessions removes anonymous sessions idle since before
// the cutoff that never recorded any practice. Linked sessions and sessions
// with history are never pruned.
func (r *sessionRepository) PruneIdleAnonymousSessions(ctx context.Context, idleSince time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, pruneIdleAnonymousSessions, idleSince)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.PruneIdleAnonymousSessions").Msg("error pruning sessions")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	pruned, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return pruned, nil
}
