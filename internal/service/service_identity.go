package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mtorres/palabras/internal/logger"
	"github.com/mtorres/palabras/internal/store"
	"github.com/mtorres/palabras/internal/utils"
	"github.com/mtorres/palabras/models"
)

// identityService resolves the (session token, authenticated account) pair
// presented by a request into a single progress identity.
//
// Each call performs at most one session insert and at most one update.
// Concurrent requests for the same brand-new token are resolved by the token
// uniqueness constraint, never by locking.
type identityService struct {
	sessionRepository store.SessionRepository
	tokenGenerator    *utils.TokenGenerator
	logger            *logger.Logger
}

func NewIdentityService(sessionRepository store.SessionRepository, tokenGenerator *utils.TokenGenerator, logger *logger.Logger) IdentityService {
	return &identityService{
		sessionRepository: sessionRepository,
		tokenGenerator:    tokenGenerator,
		logger:            logger,
	}
}

// Resolve implements IdentityService.
//
// Rules, in order:
//   - Empty token: mint one, create the session row (owned by the account
//     when authenticated), return it for cookie persistence.
//   - Known token: touch last_active_at. When authenticated and the session
//     is still anonymous, link it (link-on-login). A session already linked
//     to a different account is never reassigned.
//   - Unknown token (e.g. database reset behind a live cookie): recreate the
//     row under the same token.
//   - The returned identity is account-scoped whenever the caller is
//     authenticated, session-scoped otherwise.
func (s *identityService) Resolve(ctx context.Context, token string, accountID int64) (models.Identity, string, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		token = s.tokenGenerator.Generate()
	}

	session, err := s.sessionRepository.FindSessionByToken(ctx, token)
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		session, err = s.createSession(ctx, token, accountID)
		if err != nil {
			return models.Identity{}, "", err
		}
	case err != nil:
		log.Err(err).Msg("session lookup failed")
		return models.Identity{}, "", fmt.Errorf("session lookup failed: %w", err)
	default:
		if err := s.sessionRepository.TouchSession(ctx, token); err != nil {
			log.Err(err).Str("token", token).Msg("failed to touch session")
		}
		if accountID > 0 && !session.AccountID.Valid {
			// link-on-login; the guard in the UPDATE keeps linked sessions
			// untouched even under concurrent logins
			if err := s.sessionRepository.LinkSessionToAccount(ctx, token, accountID); err != nil {
				log.Err(err).Str("token", token).Int64("account_id", accountID).Msg("failed to link session to account")
				return models.Identity{}, "", fmt.Errorf("failed to link session to account: %w", err)
			}
		}
	}

	if accountID > 0 {
		return models.AccountIdentity(accountID), token, nil
	}

	return models.SessionIdentity(session.Token), token, nil
}

// createSession inserts the session row, treating a lost token race as
// "already exists, proceed" by re-fetching the winner's row.
func (s *identityService) createSession(ctx context.Context, token string, accountID int64) (models.ProgressSession, error) {
	log := logger.FromContext(ctx)

	session := models.ProgressSession{Token: token}
	if accountID > 0 {
		session.AccountID = sql.NullInt64{Int64: accountID, Valid: true}
	}

	created, err := s.sessionRepository.CreateSession(ctx, session)
	if errors.Is(err, store.ErrSessionTokenAlreadyExists) {
		return s.sessionRepository.FindSessionByToken(ctx, token)
	}
	if err != nil {
		log.Err(err).Str("token", token).Msg("session creation failed")
		return models.ProgressSession{}, fmt.Errorf("session creation failed: %w", err)
	}

	return created, nil
}
