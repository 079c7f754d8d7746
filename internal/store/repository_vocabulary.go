package store

import (
	"context"
	"fmt"

	"github.com/mtorres/palabras/internal/logger"
	"github.com/mtorres/palabras/models"
)

// vocabularyRepository reads the seeded vocabulary and sentence template
// reference data. Both tables are read-only at runtime.
type vocabularyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVocabularyRepository constructs a [VocabularyRepository] backed by the
// provided database connection and logger.
func NewVocabularyRepository(db *DB, logger *logger.Logger) VocabularyRepository {
	logger.Debug().Msg("creating vocabulary repository")
	return &vocabularyRepository{
		db:     db,
		logger: logger,
	}
}

// WordsByThemeAndType returns every vocabulary word for the (theme, word
// type) key. An empty slice is a valid result.
func (r *vocabularyRepository) WordsByThemeAndType(ctx context.Context, theme, wordType string) ([]models.VocabularyWord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, wordsByThemeAndType, theme, wordType)
	if err != nil {
		log.Err(err).Str("func", "*vocabularyRepository.WordsByThemeAndType").Msg("error querying vocabulary words")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var words []models.VocabularyWord
	for rows.Next() {
		var word models.VocabularyWord
		if err := rows.Scan(&word.ID, &word.Theme, &word.WordType, &word.Spanish, &word.English); err != nil {
			log.Err(err).Str("func", "*vocabularyRepository.WordsByThemeAndType").Msg("error scanning vocabulary word")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return words, nil
}

// TemplatesByThemeAndType returns every sentence template for the (theme,
// word type) key. An empty slice is a valid result.
func (r *vocabularyRepository) TemplatesByThemeAndType(ctx context.Context, theme, wordType string) ([]models.SentenceTemplate, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, templatesByThemeAndType, theme, wordType)
	if err != nil {
		log.Err(err).Str("func", "*vocabularyRepository.TemplatesByThemeAndType").Msg("error querying sentence templates")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var templates []models.SentenceTemplate
	for rows.Next() {
		var template models.SentenceTemplate
		if err := rows.Scan(&template.ID, &template.Theme, &template.WordType, &template.SpanishPattern, &template.EnglishPattern); err != nil {
			log.Err(err).Str("func", "*vocabularyRepository.TemplatesByThemeAndType").Msg("error scanning sentence template")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		templates = append(templates, template)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return templates, nil
}
