package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/mtorres/palabras/internal/logger"
	"github.com/mtorres/palabras/models"
)

// curatedWordRepository is the PostgreSQL-backed implementation of
// [CuratedWordRepository]. Listing and partial updates are built dynamically
// with squirrel; batch inserts run in a single transaction so a half-written
// batch never becomes visible.
type curatedWordRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewCuratedWordRepository constructs a [CuratedWordRepository] backed by the
// provided database connection and logger.
func NewCuratedWordRepository(db *DB, logger *logger.Logger) CuratedWordRepository {
	logger.Debug().Msg("creating curated word repository")
	return &curatedWordRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ExistsForAccount reports whether the account already owns the word. The
// comparison is case-insensitive on the Spanish text.
func (r *curatedWordRepository) ExistsForAccount(ctx context.Context, accountID int64, spanish string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	row := r.db.QueryRowContext(ctx, curatedWordExists, accountID, spanish)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*curatedWordRepository.ExistsForAccount").Msg("error: row is nil")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&exists); err != nil {
		log.Err(err).Str("func", "*curatedWordRepository.ExistsForAccount").Msg("error: scanning error")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return exists, nil
}

// InsertBatch inserts the classified words in one transaction. Each insert
// uses ON CONFLICT DO NOTHING against the (account_id, LOWER(spanish))
// uniqueness constraint, so a duplicate that appeared since validation
// returns zero rows and is skipped and counted without aborting the
// transaction. Any other error rolls the whole batch back.
func (r *curatedWordRepository) InsertBatch(ctx context.Context, accountID int64, words []models.ClassifiedWord) ([]models.CuratedWord, int, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*curatedWordRepository.InsertBatch").Msg("error beginning transaction")
		return nil, 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var (
		created    []models.CuratedWord
		duplicates int
	)
	for _, word := range words {
		inserted, err := r.insertOne(ctx, tx, accountID, word)
		if err != nil {
			if errors.Is(err, ErrCuratedWordAlreadyExists) {
				duplicates++
				continue
			}
			log.Err(err).Str("func", "*curatedWordRepository.InsertBatch").Str("spanish", word.Spanish).Msg("error inserting curated word")
			return nil, 0, err
		}
		created = append(created, inserted)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*curatedWordRepository.InsertBatch").Msg("error committing transaction")
		return nil, 0, fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return created, duplicates, nil
}

// insertOne inserts a single word within the batch transaction. The conflict
// clause in the query makes a duplicate come back as zero rows, which is
// reported as [ErrCuratedWordAlreadyExists]; the transaction stays usable for
// the rest of the batch.
func (r *curatedWordRepository) insertOne(ctx context.Context, tx *sql.Tx, accountID int64, word models.ClassifiedWord) (models.CuratedWord, error) {
	inserted := models.CuratedWord{}

	var themesColumn string
	row := tx.QueryRowContext(ctx, insertCuratedWord,
		accountID, word.Spanish, word.English, word.WordType,
		models.CuratedWord{Themes: word.Themes}.ThemesColumn(),
	)
	if err := row.Err(); err != nil {
		return models.CuratedWord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	err := row.Scan(&inserted.ID, &inserted.AccountID, &inserted.Spanish, &inserted.English,
		&inserted.WordType, &themesColumn, &inserted.Learned, &inserted.CreatedAt, &inserted.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CuratedWord{}, ErrCuratedWordAlreadyExists
		}
		return models.CuratedWord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	inserted.Themes = models.SplitThemes(themesColumn)
	return inserted, nil
}

// ListByAccount returns the account's curated words, newest first, narrowed
// by the optional filter. Search matches a substring of either the Spanish
// or the English text, case-insensitive.
func (r *curatedWordRepository) ListByAccount(ctx context.Context, accountID int64, filter models.CuratedWordFilter) ([]models.CuratedWord, error) {
	log := logger.FromContext(ctx)

	query := r.builder.
		Select("curated_word_id", "account_id", "spanish", "english", "word_type", "themes", "is_learned", "created_at", "updated_at").
		From("curated_words").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("created_at DESC", "curated_word_id DESC")

	if filter.WordType != "" {
		query = query.Where(sq.Eq{"word_type": filter.WordType})
	}
	if filter.Theme != "" {
		// themes is a comma-joined column; match the theme as a whole element
		query = query.Where("','||themes||',' LIKE ?", "%,"+filter.Theme+",%")
	}
	if filter.Learned != nil {
		query = query.Where(sq.Eq{"is_learned": *filter.Learned})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(sq.Or{
			sq.ILike{"spanish": pattern},
			sq.ILike{"english": pattern},
		})
	}

	sqlText, args, err := query.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*curatedWordRepository.ListByAccount").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		log.Err(err).Str("func", "*curatedWordRepository.ListByAccount").Msg("error querying curated words")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var words []models.CuratedWord
	for rows.Next() {
		var (
			word         models.CuratedWord
			themesColumn string
		)
		err := rows.Scan(&word.ID, &word.AccountID, &word.Spanish, &word.English,
			&word.WordType, &themesColumn, &word.Learned, &word.CreatedAt, &word.UpdatedAt)
		if err != nil {
			log.Err(err).Str("func", "*curatedWordRepository.ListByAccount").Msg("error scanning curated word")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		word.Themes = models.SplitThemes(themesColumn)
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return words, nil
}

// UpdateWord applies a partial update to an owned word and returns the
// updated row. Only non-nil fields of the update are written; updated_at is
// always refreshed.
func (r *curatedWordRepository) UpdateWord(ctx context.Context, update models.CuratedWordUpdate) (models.CuratedWord, error) {
	log := logger.FromContext(ctx)

	query := r.builder.
		Update("curated_words").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"curated_word_id": update.ID, "account_id": update.AccountID}).
		Suffix("RETURNING curated_word_id, account_id, spanish, english, word_type, themes, is_learned, created_at, updated_at")

	if update.English != nil {
		query = query.Set("english", *update.English)
	}
	if update.WordType != nil {
		query = query.Set("word_type", *update.WordType)
	}
	if update.Themes != nil {
		query = query.Set("themes", models.CuratedWord{Themes: *update.Themes}.ThemesColumn())
	}
	if update.Learned != nil {
		query = query.Set("is_learned", *update.Learned)
	}

	sqlText, args, err := query.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*curatedWordRepository.UpdateWord").Msg("error building query")
		return models.CuratedWord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		word         models.CuratedWord
		themesColumn string
	)
	row := r.db.QueryRowContext(ctx, sqlText, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*curatedWordRepository.UpdateWord").Msg("error: row is nil")
		return models.CuratedWord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	err = row.Scan(&word.ID, &word.AccountID, &word.Spanish, &word.English,
		&word.WordType, &themesColumn, &word.Learned, &word.CreatedAt, &word.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CuratedWord{}, ErrCuratedWordNotFound
		}
		log.Err(err).Str("func", "*curatedWordRepository.UpdateWord").Msg("error: scanning error")
		return models.CuratedWord{}, err
	}

	word.Themes = models.SplitThemes(themesColumn)
	return word, nil
}

// DeleteWord removes an owned word together with its generated examples and
// practice attempts, all in one transaction. The child tables are cleared
// explicitly so the delete never depends on cascade rules.
func (r *curatedWordRepository) DeleteWord(ctx context.Context, accountID, wordID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*curatedWordRepository.DeleteWord").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteCuratedExamples, wordID); err != nil {
		log.Err(err).Str("func", "*curatedWordRepository.DeleteWord").Msg("error deleting examples")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteCuratedAttempts, wordID); err != nil {
		log.Err(err).Str("func", "*curatedWordRepository.DeleteWord").Msg("error deleting practice attempts")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	result, err := tx.ExecContext(ctx, deleteCuratedWord, wordID, accountID)
	if err != nil {
		log.Err(err).Str("func", "*curatedWordRepository.DeleteWord").Msg("error deleting curated word")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrCuratedWordNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*curatedWordRepository.DeleteWord").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}

// RandomWord picks one random owned word with the given learned state.
func (r *curatedWordRepository) RandomWord(ctx context.Context, accountID int64, learned bool) (models.CuratedWord, error) {
	log := logger.FromContext(ctx)

	var (
		word         models.CuratedWord
		themesColumn string
	)
	row := r.db.QueryRowContext(ctx, randomCuratedWord, accountID, learned)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*curatedWordRepository.RandomWord").Msg("error: row is nil")
		return models.CuratedWord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	err := row.Scan(&word.ID, &word.AccountID, &word.Spanish, &word.English,
		&word.WordType, &themesColumn, &word.Learned, &word.CreatedAt, &word.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CuratedWord{}, ErrCuratedWordNotFound
		}
		log.Err(err).Str("func", "*curatedWordRepository.RandomWord").Msg("error: scanning error")
		return models.CuratedWord{}, err
	}

	word.Themes = models.SplitThemes(themesColumn)
	return word, nil
}
