package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtorres/palabras/internal/config"
	"github.com/mtorres/palabras/internal/llm"
	"github.com/mtorres/palabras/internal/logger"
	"github.com/mtorres/palabras/internal/store"
	"github.com/mtorres/palabras/models"
)

const defaultMaxBatchSize = 50

// intakeService runs the curated word intake pipeline and manages the
// resulting vocabulary.
//
// Pipeline per call: parse → deterministic validation → semantic validation
// (one batched classifier call, fail open on total failure) → classification
// (one batched call, validating parse) → transactional persist with
// per-record duplicate re-check.
type intakeService struct {
	curatedRepository store.CuratedWordRepository
	classifier        llm.Classifier
	maxBatchSize      int
	logger            *logger.Logger
}

func NewIntakeService(curatedRepository store.CuratedWordRepository, classifier llm.Classifier, cfg config.Classifier, logger *logger.Logger) IntakeService {
	maxBatch := cfg.MaxBatchSize
	if maxBatch <= 0 {
		maxBatch = defaultMaxBatchSize
	}

	return &intakeService{
		curatedRepository: curatedRepository,
		classifier:        classifier,
		maxBatchSize:      maxBatch,
		logger:            logger,
	}
}

// ProcessBulk implements IntakeService.
//
// The returned BulkResult always carries the per-stage counts and user-facing
// error strings accumulated so far; only a classifier total failure or a
// storage failure also returns a non-nil error.
func (s *intakeService) ProcessBulk(ctx context.Context, accountID int64, rawText string) (models.BulkResult, error) {
	log := logger.FromContext(ctx)

	candidates := ParseBulkInput(rawText)
	if len(candidates) == 0 {
		return models.BulkResult{}, ErrEmptyInput
	}

	var result models.BulkResult

	candidates, dropped := truncateBatch(candidates, s.maxBatchSize)
	if dropped > 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Limited to %d words. %d extra words not processed.", s.maxBatchSize, dropped))
	}
	result.Processed = len(candidates)

	valid := s.validateDeterministic(ctx, accountID, candidates, &result)
	if len(valid) == 0 {
		return result, ErrNoWordsAccepted
	}

	valid = s.validateSemantic(ctx, valid, &result)
	if len(valid) == 0 {
		return result, ErrNoWordsAccepted
	}

	classified, err := s.classifier.ClassifyWords(ctx, valid)
	if err != nil {
		log.Err(err).Int("words", len(valid)).Msg("classification failed")
		result.Errors = append(result.Errors, llm.UserMessage(err))
		return result, fmt.Errorf("classification failed: %w", err)
	}
	if len(classified) == 0 {
		result.Errors = append(result.Errors, "AI couldn't translate the words. They may not be valid Spanish.")
		return result, ErrNoWordsAccepted
	}

	created, duplicates, err := s.curatedRepository.InsertBatch(ctx, accountID, classified)
	if err != nil {
		log.Err(err).Int("words", len(classified)).Msg("curated word persistence failed")
		result.Failed = len(classified)
		result.Errors = append(result.Errors, "Failed to save words. Please try again.")
		return result, fmt.Errorf("curated word persistence failed: %w", err)
	}

	result.Created = len(created)
	result.Duplicates += duplicates
	result.Words = created

	return result, nil
}

// validateDeterministic applies the cheap local checks plus the per-account
// duplicate check, updating the result counts in place. Words the duplicate
// check cannot run for (storage error) are let through; the insert-time
// re-check still protects uniqueness.
func (s *intakeService) validateDeterministic(ctx context.Context, accountID int64, candidates []string, result *models.BulkResult) []string {
	log := logger.FromContext(ctx)

	var valid []string
	for _, word := range candidates {
		ok, reason := validateCandidate(word)
		if !ok {
			result.Rejected++
			result.Errors = append(result.Errors, fmt.Sprintf("'%s': %s", word, reason))
			continue
		}

		exists, err := s.curatedRepository.ExistsForAccount(ctx, accountID, word)
		if err != nil {
			log.Err(err).Str("word", word).Msg("duplicate pre-check failed")
		}
		if exists {
			result.Duplicates++
			result.Errors = append(result.Errors, fmt.Sprintf("'%s': Word already exists in your vocabulary", word))
			continue
		}

		valid = append(valid, word)
	}

	return valid
}

// validateSemantic sends the surviving candidates to the classifier for a
// per-word verdict. A total call failure fails open: every word passes, and
// the downstream classification and duplicate re-check still gate
// persistence.
func (s *intakeService) validateSemantic(ctx context.Context, words []string, result *models.BulkResult) []string {
	log := logger.FromContext(ctx)

	verdicts, err := s.classifier.ValidateWords(ctx, words)
	if err != nil {
		log.Err(err).Int("words", len(words)).Msg("semantic validation failed, failing open")
		return words
	}

	var valid []string
	for i, verdict := range verdicts {
		if !verdict.Valid {
			result.Rejected++
			reason := verdict.Reason
			if reason == "" {
				reason = "Rejected by validation"
			}
			result.Errors = append(result.Errors, fmt.Sprintf("'%s': %s", words[i], reason))
			continue
		}
		valid = append(valid, words[i])
	}

	return valid
}

// ListWords implements IntakeService.
func (s *intakeService) ListWords(ctx context.Context, accountID int64, filter models.CuratedWordFilter) ([]models.CuratedWord, error) {
	words, err := s.curatedRepository.ListByAccount(ctx, accountID, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("account_id", accountID).Msg("curated word listing failed")
		return nil, fmt.Errorf("curated word listing failed: %w", err)
	}
	return words, nil
}

// UpdateWord implements IntakeService. Out-of-set categories are rejected
// here rather than healed: a human edit is deliberate, unlike classifier
// output.
func (s *intakeService) UpdateWord(ctx context.Context, update models.CuratedWordUpdate) (models.CuratedWord, error) {
	log := logger.FromContext(ctx)

	if update.WordType != nil && !models.IsValidWordType(*update.WordType) {
		return models.CuratedWord{}, ErrInvalidDataProvided
	}
	if update.Themes != nil {
		if len(*update.Themes) == 0 || len(*update.Themes) > 3 {
			return models.CuratedWord{}, ErrInvalidDataProvided
		}
		for _, theme := range *update.Themes {
			if !models.IsValidTheme(theme) {
				return models.CuratedWord{}, ErrInvalidDataProvided
			}
		}
	}
	if update.English != nil && (*update.English == "" || len(*update.English) > 200) {
		return models.CuratedWord{}, ErrInvalidDataProvided
	}

	word, err := s.curatedRepository.UpdateWord(ctx, update)
	if err != nil {
		if !errors.Is(err, store.ErrCuratedWordNotFound) {
			log.Err(err).Int64("word_id", update.ID).Msg("curated word update failed")
		}
		return models.CuratedWord{}, fmt.Errorf("curated word update failed: %w", err)
	}

	return word, nil
}

// DeleteWord implements IntakeService.
func (s *intakeService) DeleteWord(ctx context.Context, accountID, wordID int64) error {
	if err := s.curatedRepository.DeleteWord(ctx, accountID, wordID); err != nil {
		if !errors.Is(err, store.ErrCuratedWordNotFound) {
			logger.FromContext(ctx).Err(err).Int64("word_id", wordID).Msg("curated word deletion failed")
		}
		return fmt.Errorf("curated word deletion failed: %w", err)
	}
	return nil
}

// RandomWord implements IntakeService.
func (s *intakeService) RandomWord(ctx context.Context, accountID int64, learned bool) (models.CuratedWord, error) {
	word, err := s.curatedRepository.RandomWord(ctx, accountID, learned)
	if err != nil {
		if !errors.Is(err, store.ErrCuratedWordNotFound) {
			logger.FromContext(ctx).Err(err).Int64("account_id", accountID).Msg("random word pick failed")
		}
		return models.CuratedWord{}, fmt.Errorf("random word pick failed: %w", err)
	}
	return word, nil
}
