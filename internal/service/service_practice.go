package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtorres/palabras/internal/logger"
	"github.com/mtorres/palabras/internal/store"
	"github.com/mtorres/palabras/models"
)

// practiceService maintains the practice ledger and aggregates statistics.
type practiceService struct {
	practiceRepository store.PracticeRepository
	sessionRepository  store.SessionRepository
	logger             *logger.Logger
}

func NewPracticeService(practiceRepository store.PracticeRepository, sessionRepository store.SessionRepository, logger *logger.Logger) PracticeService {
	return &practiceService{
		practiceRepository: practiceRepository,
		sessionRepository:  sessionRepository,
		logger:             logger,
	}
}

// RecordPractice implements PracticeService. The ledger's uniqueness
// constraint makes repeats a no-op; the existing row keeps its learned flag
// and practiced_at timestamp.
func (s *practiceService) RecordPractice(ctx context.Context, sessionToken string, wordID int64, theme, wordType string) error {
	log := logger.FromContext(ctx)

	err := s.practiceRepository.InsertPractice(ctx, models.PracticeRecord{
		SessionToken: sessionToken,
		WordID:       wordID,
		Theme:        theme,
		WordType:     wordType,
	})
	if errors.Is(err, store.ErrAlreadyPracticed) {
		return nil
	}
	if err != nil {
		log.Err(err).Str("token", sessionToken).Int64("word_id", wordID).Msg("practice recording failed")
		return fmt.Errorf("practice recording failed: %w", err)
	}

	return nil
}

// ToggleLearned implements PracticeService. found is false when no practice
// record exists for the pair, which callers surface as "practice the word
// first".
func (s *practiceService) ToggleLearned(ctx context.Context, sessionToken string, wordID int64) (bool, bool, error) {
	log := logger.FromContext(ctx)

	record, err := s.practiceRepository.FindPractice(ctx, sessionToken, wordID)
	if errors.Is(err, store.ErrPracticeNotFound) {
		return false, false, nil
	}
	if err != nil {
		log.Err(err).Str("token", sessionToken).Int64("word_id", wordID).Msg("practice lookup failed")
		return false, false, fmt.Errorf("practice lookup failed: %w", err)
	}

	newState := !record.Learned
	if err := s.practiceRepository.SetLearned(ctx, sessionToken, wordID, newState); err != nil {
		if errors.Is(err, store.ErrPracticeNotFound) {
			// the record vanished between find and update
			return false, false, nil
		}
		log.Err(err).Str("token", sessionToken).Int64("word_id", wordID).Msg("learned toggle failed")
		return false, false, fmt.Errorf("learned toggle failed: %w", err)
	}

	return true, newState, nil
}

// Stats implements PracticeService. Account identities aggregate across
// every session ever linked to the account; session identities only their
// own rows. The sentinel identity matches nothing and yields zero stats.
func (s *practiceService) Stats(ctx context.Context, id models.Identity) (models.PracticeStats, error) {
	log := logger.FromContext(ctx)

	var tokens []string
	switch id.Kind {
	case models.IdentityAccount:
		accountTokens, err := s.sessionRepository.SessionTokensForAccount(ctx, id.AccountID)
		if err != nil {
			log.Err(err).Int64("account_id", id.AccountID).Msg("session token lookup failed")
			return models.PracticeStats{}, fmt.Errorf("session token lookup failed: %w", err)
		}
		tokens = accountTokens
	case models.IdentitySession:
		tokens = []string{id.SessionToken}
	}

	stats, err := s.practiceRepository.StatsForTokens(ctx, tokens)
	if err != nil {
		log.Err(err).Msg("stats aggregation failed")
		return models.PracticeStats{}, fmt.Errorf("stats aggregation failed: %w", err)
	}

	return stats, nil
}
