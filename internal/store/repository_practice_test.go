package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/mtorres/palabras/internal/logger"
	"github.com/mtorres/palabras/models"
)

// sliceArgConverter lets the sqlmock driver accept slice arguments the way
// the pgx stdlib driver does, so queries using `= ANY($1)` can be exercised.
type sliceArgConverter struct{}

func (sliceArgConverter) ConvertValue(v any) (driver.Value, error) {
	switch v.(type) {
	case []string, []int64:
		return v, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(v)
}

func newTestPracticeRepo(t *testing.T) (*practiceRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New(sqlmock.ValueConverterOption(sliceArgConverter{}))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &practiceRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestInsertPractice_Success(t *testing.T) {
	repo, mock, db := newTestPracticeRepo(t)
	defer db.Close()

	ctx := context.Background()
	record := models.PracticeRecord{
		SessionToken: "token-1",
		WordID:       7,
		Theme:        "cooking",
		WordType:     "noun",
	}

	mock.ExpectExec("INSERT INTO practice_records").
		WithArgs("token-1", int64(7), "cooking", "noun").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.InsertPractice(ctx, record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInsertPractice_AlreadyPracticed(t *testing.T) {
	repo, mock, db := newTestPracticeRepo(t)
	defer db.Close()

	ctx := context.Background()
	record := models.PracticeRecord{SessionToken: "token-1", WordID: 7}

	mock.ExpectExec("INSERT INTO practice_records").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.InsertPractice(ctx, record)
	if !errors.Is(err, ErrAlreadyPracticed) {
		t.Fatalf("expected ErrAlreadyPracticed, got %v", err)
	}
}

func TestFindPractice_NotFound(t *testing.T) {
	repo, mock, db := newTestPracticeRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"practice_id", "session_token", "word_id", "theme", "word_type", "learned", "practiced_at"})

	mock.ExpectQuery("SELECT practice_id").
		WithArgs("token-1", int64(9999)).
		WillReturnRows(rows)

	_, err := repo.FindPractice(ctx, "token-1", 9999)
	if !errors.Is(err, ErrPracticeNotFound) {
		t.Fatalf("expected ErrPracticeNotFound, got %v", err)
	}
}

func TestSetLearned_Toggle(t *testing.T) {
	repo, mock, db := newTestPracticeRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE practice_records").
		WithArgs("token-1", int64(7), true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetLearned(ctx, "token-1", 7, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetLearned_NoRow(t *testing.T) {
	repo, mock, db := newTestPracticeRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE practice_records").
		WithArgs("token-1", int64(7), false).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetLearned(ctx, "token-1", 7, false)
	if !errors.Is(err, ErrPracticeNotFound) {
		t.Fatalf("expected ErrPracticeNotFound, got %v", err)
	}
}

func TestLearnedWordIDs_EmptyInputsSkipQuery(t *testing.T) {
	repo, mock, db := newTestPracticeRepo(t)
	defer db.Close()

	ctx := context.Background()

	learned, err := repo.LearnedWordIDs(ctx, nil, []int64{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(learned) != 0 {
		t.Errorf("expected empty map, got %v", learned)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no query should have been issued: %v", err)
	}
}

func TestLearnedWordIDs(t *testing.T) {
	repo, mock, db := newTestPracticeRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"word_id"}).
		AddRow(int64(3)).
		AddRow(int64(5))

	mock.ExpectQuery("SELECT word_id").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(rows)

	learned, err := repo.LearnedWordIDs(ctx, []string{"token-1"}, []int64{3, 4, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !learned[3] || !learned[5] {
		t.Errorf("expected words 3 and 5 learned, got %v", learned)
	}
	if learned[4] {
		t.Error("word 4 should not be learned")
	}
}

func TestStatsForTokens(t *testing.T) {
	repo, mock, db := newTestPracticeRepo(t)
	defer db.Close()

	ctx := context.Background()

	totals := sqlmock.NewRows([]string{"count", "learned"}).AddRow(12, 4)
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(totals)

	byTheme := sqlmock.NewRows([]string{"theme", "count"}).
		AddRow("cooking", 8).
		AddRow("sports", 4)
	mock.ExpectQuery("SELECT theme").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(byTheme)

	stats, err := repo.StatsForTokens(ctx, []string{"token-1", "token-2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalPracticed != 12 || stats.TotalLearned != 4 {
		t.Errorf("unexpected totals: %+v", stats)
	}
	if stats.ByTheme["cooking"] != 8 || stats.ByTheme["sports"] != 4 {
		t.Errorf("unexpected theme breakdown: %v", stats.ByTheme)
	}
}

func TestStatsForTokens_NoSessions(t *testing.T) {
	repo, mock, db := newTestPracticeRepo(t)
	defer db.Close()

	ctx := context.Background()

	stats, err := repo.StatsForTokens(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalPracticed != 0 || stats.TotalLearned != 0 || len(stats.ByTheme) != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no query should have been issued: %v", err)
	}
}
