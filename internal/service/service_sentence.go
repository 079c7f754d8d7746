package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/mtorres/palabras/internal/logger"
	"github.com/mtorres/palabras/internal/store"
	"github.com/mtorres/palabras/models"
)

// markHighlight wraps the substituted word so the frontend can style it.
const markHighlight = "<mark>%s</mark>"

// sampleFunc returns k distinct indices drawn uniformly from [0, n).
// Injectable so tests can pin the selection.
type sampleFunc func(n, k int) []int

func randomSample(n, k int) []int {
	return rand.Perm(n)[:k]
}

// sentenceService assembles practice sentences from the seeded vocabulary
// and template tables.
type sentenceService struct {
	vocabularyRepository store.VocabularyRepository
	practiceRepository   store.PracticeRepository
	sessionRepository    store.SessionRepository
	sample               sampleFunc
	logger               *logger.Logger
}

func NewSentenceService(vocabularyRepository store.VocabularyRepository, practiceRepository store.PracticeRepository, sessionRepository store.SessionRepository, logger *logger.Logger) SentenceService {
	return &sentenceService{
		vocabularyRepository: vocabularyRepository,
		practiceRepository:   practiceRepository,
		sessionRepository:    sessionRepository,
		sample:               randomSample,
		logger:               logger,
	}
}

// Generate implements SentenceService.
//
// Sampling draws min(count, available) distinct words and templates without
// replacement; word i is paired with template i modulo the sampled template
// count, so every word gets a sentence even when template variety is scarce.
// Output order follows the sampled word order.
func (s *sentenceService) Generate(ctx context.Context, theme, wordType string, id models.Identity, count int) ([]models.Sentence, error) {
	log := logger.FromContext(ctx)

	words, err := s.vocabularyRepository.WordsByThemeAndType(ctx, theme, wordType)
	if err != nil {
		log.Err(err).Str("theme", theme).Str("word_type", wordType).Msg("vocabulary lookup failed")
		return nil, fmt.Errorf("vocabulary lookup failed: %w", err)
	}

	templates, err := s.vocabularyRepository.TemplatesByThemeAndType(ctx, theme, wordType)
	if err != nil {
		log.Err(err).Str("theme", theme).Str("word_type", wordType).Msg("template lookup failed")
		return nil, fmt.Errorf("template lookup failed: %w", err)
	}

	// nothing to practice, not an error
	if len(words) == 0 || len(templates) == 0 {
		return nil, nil
	}

	wordCount := min(count, len(words))
	templateCount := min(count, len(templates))

	sampledWords := make([]models.VocabularyWord, 0, wordCount)
	for _, i := range s.sample(len(words), wordCount) {
		sampledWords = append(sampledWords, words[i])
	}
	sampledTemplates := make([]models.SentenceTemplate, 0, templateCount)
	for _, i := range s.sample(len(templates), templateCount) {
		sampledTemplates = append(sampledTemplates, templates[i])
	}

	learned, err := s.learnedStatus(ctx, id, sampledWords)
	if err != nil {
		return nil, err
	}

	sentences := make([]models.Sentence, 0, len(sampledWords))
	for i, word := range sampledWords {
		template := sampledTemplates[i%len(sampledTemplates)]
		sentences = append(sentences, models.Sentence{
			Spanish:   substitute(template.SpanishPattern, word.Spanish),
			English:   substitute(template.EnglishPattern, word.English),
			WordID:    word.ID,
			IsLearned: learned[word.ID],
		})
	}

	return sentences, nil
}

// learnedStatus resolves the learned flag for the sampled words. Account
// identities consult every session ever linked to the account; session
// identities only their own rows.
func (s *sentenceService) learnedStatus(ctx context.Context, id models.Identity, words []models.VocabularyWord) (map[int64]bool, error) {
	log := logger.FromContext(ctx)

	var tokens []string
	switch id.Kind {
	case models.IdentityAccount:
		accountTokens, err := s.sessionRepository.SessionTokensForAccount(ctx, id.AccountID)
		if err != nil {
			log.Err(err).Int64("account_id", id.AccountID).Msg("session token lookup failed")
			return nil, fmt.Errorf("session token lookup failed: %w", err)
		}
		tokens = accountTokens
	case models.IdentitySession:
		tokens = []string{id.SessionToken}
	}

	wordIDs := make([]int64, 0, len(words))
	for _, word := range words {
		wordIDs = append(wordIDs, word.ID)
	}

	learned, err := s.practiceRepository.LearnedWordIDs(ctx, tokens, wordIDs)
	if err != nil {
		log.Err(err).Msg("learned status lookup failed")
		return nil, fmt.Errorf("learned status lookup failed: %w", err)
	}

	return learned, nil
}

func substitute(pattern, word string) string {
	return strings.Replace(pattern, models.PlaceholderToken, fmt.Sprintf(markHighlight, word), 1)
}
