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

// practiceRepository is the PostgreSQL-backed implementation of
// [PracticeRepository]. The practice ledger is append-mostly: rows are
// inserted once per (session_token, word_id) pair and only the learned flag
// is ever updated afterwards.
type practiceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPracticeRepository constructs a [PracticeRepository] backed by the
// provided database connection and logger.
func NewPracticeRepository(db *DB, logger *logger.Logger) PracticeRepository {
	logger.Debug().Msg("creating practice repository")
	return &practiceRepository{
		db:     db,
		logger: logger,
	}
}

// InsertPractice writes one practice record. The (session_token, word_id)
// uniqueness constraint makes repeat inserts idempotent: a unique violation
// is reported as [ErrAlreadyPracticed] and the original row keeps its
// practiced_at and learned values.
func (r *practiceRepository) InsertPractice(ctx context.Context, record models.PracticeRecord) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, insertPractice, record.SessionToken, record.WordID, record.Theme, record.WordType); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrAlreadyPracticed
		}
		log.Err(err).Str("func", "*practiceRepository.InsertPractice").Msg("error inserting practice record")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// FindPractice returns the record for (sessionToken, wordID), or
// [ErrPracticeNotFound] when the pair has never been practiced.
func (r *practiceRepository) FindPractice(ctx context.Context, sessionToken string, wordID int64) (models.PracticeRecord, error) {
	log := logger.FromContext(ctx)

	var record models.PracticeRecord
	row := r.db.QueryRowContext(ctx, findPractice, sessionToken, wordID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*practiceRepository.FindPractice").Msg("error: row is nil")
		return models.PracticeRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&record.ID, &record.SessionToken, &record.WordID, &record.Theme, &record.WordType, &record.Learned, &record.PracticedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PracticeRecord{}, ErrPracticeNotFound
		}
		log.Err(err).Str("func", "*practiceRepository.FindPractice").Msg("error: scanning error")
		return models.PracticeRecord{}, err
	}

	return record, nil
}

// SetLearned overwrites the learned flag on an existing record. Affecting
// zero rows means the record vanished between find and update; that is
// reported as [ErrPracticeNotFound].
func (r *practiceRepository) SetLearned(ctx context.Context, sessionToken string, wordID int64, learned bool) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setPracticeLearned, sessionToken, wordID, learned)
	if err != nil {
		log.Err(err).Str("func", "*practiceRepository.SetLearned").Msg("error updating learned flag")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrPracticeNotFound
	}

	return nil
}

// LearnedWordIDs reports which of wordIDs carry a learned mark in any of the
// given session tokens. IDs absent from the result map are not learned.
func (r *practiceRepository) LearnedWordIDs(ctx context.Context, sessionTokens []string, wordIDs []int64) (map[int64]bool, error) {
	log := logger.FromContext(ctx)

	learned := make(map[int64]bool, len(wordIDs))
	if len(sessionTokens) == 0 || len(wordIDs) == 0 {
		return learned, nil
	}

	rows, err := r.db.QueryContext(ctx, learnedWordIDs, sessionTokens, wordIDs)
	if err != nil {
		log.Err(err).Str("func", "*practiceRepository.LearnedWordIDs").Msg("error querying learned word IDs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var wordID int64
		if err := rows.Scan(&wordID); err != nil {
			log.Err(err).Str("func", "*practiceRepository.LearnedWordIDs").Msg("error scanning word ID")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		learned[wordID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return learned, nil
}

// StatsForTokens aggregates practiced and learned totals plus the by-theme
// breakdown over the given session tokens. An empty token list yields zero
// stats without touching the database.
func (r *practiceRepository) StatsForTokens(ctx context.Context, sessionTokens []string) (models.PracticeStats, error) {
	log := logger.FromContext(ctx)

	stats := models.PracticeStats{ByTheme: make(map[string]int)}
	if len(sessionTokens) == 0 {
		return stats, nil
	}

	row := r.db.QueryRowContext(ctx, practiceTotals, sessionTokens)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*practiceRepository.StatsForTokens").Msg("error: row is nil")
		return models.PracticeStats{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if err := row.Scan(&stats.TotalPracticed, &stats.TotalLearned); err != nil {
		log.Err(err).Str("func", "*practiceRepository.StatsForTokens").Msg("error scanning totals")
		return models.PracticeStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	rows, err := r.db.QueryContext(ctx, practiceByTheme, sessionTokens)
	if err != nil {
		log.Err(err).Str("func", "*practiceRepository.StatsForTokens").Msg("error querying by-theme counts")
		return models.PracticeStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			theme string
			count int
		)
		if err := rows.Scan(&theme, &count); err != nil {
			log.Err(err).Str("func", "*practiceRepository.StatsForTokens").Msg("error scanning theme count")
			return models.PracticeStats{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		stats.ByTheme[theme] = count
	}
	if err := rows.Err(); err != nil {
		return models.PracticeStats{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return stats, nil
}
