package service

import (
	"context"
	"testing"

	"github.com/mtorres/palabras/internal/config"
	"github.com/mtorres/palabras/internal/llm"
	"github.com/mtorres/palabras/internal/logger"
	"github.com/mtorres/palabras/internal/mock"
	"github.com/mtorres/palabras/internal/store"
	"github.com/mtorres/palabras/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestIntakeService(t *testing.T) (IntakeService, *mock.MockCuratedWordRepository, *mock.MockClassifier) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mock.NewMockCuratedWordRepository(ctrl)
	classifier := mock.NewMockClassifier(ctrl)
	svc := NewIntakeService(repo, classifier, config.Classifier{MaxBatchSize: 50}, logger.NewLogger("test"))

	return svc, repo, classifier
}

func acceptAll(words []string) []models.WordVerdict {
	verdicts := make([]models.WordVerdict, len(words))
	for i, w := range words {
		verdicts[i] = models.WordVerdict{Word: w, Valid: true}
	}
	return verdicts
}

func classify(words []string) []models.ClassifiedWord {
	classified := make([]models.ClassifiedWord, len(words))
	for i, w := range words {
		classified[i] = models.ClassifiedWord{
			Spanish:  w,
			English:  "translation of " + w,
			WordType: "noun",
			Themes:   []string{"other"},
		}
	}
	return classified
}

func TestProcessBulk_HappyPath(t *testing.T) {
	svc, repo, classifier := newTestIntakeService(t)
	ctx := context.Background()

	repo.EXPECT().ExistsForAccount(ctx, int64(1), "Frío").Return(false, nil)
	repo.EXPECT().ExistsForAccount(ctx, int64(1), "Sol").Return(false, nil)

	classifier.EXPECT().ValidateWords(ctx, []string{"Frío", "Sol"}).Return(acceptAll([]string{"Frío", "Sol"}), nil)
	classifier.EXPECT().ClassifyWords(ctx, []string{"Frío", "Sol"}).Return(classify([]string{"Frío", "Sol"}), nil)

	created := []models.CuratedWord{
		{ID: 10, Spanish: "Frío"},
		{ID: 11, Spanish: "Sol"},
	}
	repo.EXPECT().InsertBatch(ctx, int64(1), classify([]string{"Frío", "Sol"})).Return(created, 0, nil)

	result, err := svc.ProcessBulk(ctx, 1, "Frío\nSol")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 2, result.Created)
	assert.Zero(t, result.Duplicates)
	assert.Zero(t, result.Rejected)
	assert.Zero(t, result.Failed)
	assert.Len(t, result.Words, 2)
	assert.Empty(t, result.Errors)
}

func TestProcessBulk_DedupesInputBeforeProcessing(t *testing.T) {
	svc, repo, classifier := newTestIntakeService(t)
	ctx := context.Background()

	// "Frío\nSol\nFrío, sol" parses to exactly two candidates
	repo.EXPECT().ExistsForAccount(ctx, int64(1), "Frío").Return(false, nil)
	repo.EXPECT().ExistsForAccount(ctx, int64(1), "Sol").Return(false, nil)
	classifier.EXPECT().ValidateWords(ctx, []string{"Frío", "Sol"}).Return(acceptAll([]string{"Frío", "Sol"}), nil)
	classifier.EXPECT().ClassifyWords(ctx, []string{"Frío", "Sol"}).Return(classify([]string{"Frío", "Sol"}), nil)
	repo.EXPECT().InsertBatch(ctx, int64(1), gomock.Any()).Return(nil, 0, nil)

	result, err := svc.ProcessBulk(ctx, 1, "Frío\nSol\nFrío, sol")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
}

func TestProcessBulk_DeterministicRejectionSkipsClassifier(t *testing.T) {
	svc, repo, classifier := newTestIntakeService(t)
	ctx := context.Background()

	// only the valid word survives to the duplicate check and classifier
	repo.EXPECT().ExistsForAccount(ctx, int64(1), "cocinar").Return(false, nil)
	classifier.EXPECT().ValidateWords(ctx, []string{"cocinar"}).Return(acceptAll([]string{"cocinar"}), nil)
	classifier.EXPECT().ClassifyWords(ctx, []string{"cocinar"}).Return(classify([]string{"cocinar"}), nil)
	repo.EXPECT().InsertBatch(ctx, int64(1), gomock.Any()).Return(classifyToCurated([]string{"cocinar"}), 0, nil)

	result, err := svc.ProcessBulk(ctx, 1, "cocinar\nword123")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Rejected)
	assert.Equal(t, 1, result.Created)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "word123")
}

func classifyToCurated(words []string) []models.CuratedWord {
	curated := make([]models.CuratedWord, len(words))
	for i, w := range words {
		curated[i] = models.CuratedWord{ID: int64(i + 1), Spanish: w}
	}
	return curated
}

func TestProcessBulk_AllRejectedReturnsEarly(t *testing.T) {
	svc, _, _ := newTestIntakeService(t)

	// every word fails deterministic validation: no classifier calls at all
	result, err := svc.ProcessBulk(context.Background(), 1, "word123\nhello\nzxcvbn")
	assert.ErrorIs(t, err, ErrNoWordsAccepted)
	assert.Equal(t, 3, result.Rejected)
	assert.Len(t, result.Errors, 3)
}

func TestProcessBulk_EmptyInput(t *testing.T) {
	svc, _, _ := newTestIntakeService(t)

	_, err := svc.ProcessBulk(context.Background(), 1, "   \n  ")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestProcessBulk_KnownDuplicateCountedNotSent(t *testing.T) {
	svc, repo, classifier := newTestIntakeService(t)
	ctx := context.Background()

	repo.EXPECT().ExistsForAccount(ctx, int64(1), "cocinar").Return(true, nil)
	repo.EXPECT().ExistsForAccount(ctx, int64(1), "ciudad").Return(false, nil)
	classifier.EXPECT().ValidateWords(ctx, []string{"ciudad"}).Return(acceptAll([]string{"ciudad"}), nil)
	classifier.EXPECT().ClassifyWords(ctx, []string{"ciudad"}).Return(classify([]string{"ciudad"}), nil)
	repo.EXPECT().InsertBatch(ctx, int64(1), gomock.Any()).Return(classifyToCurated([]string{"ciudad"}), 0, nil)

	result, err := svc.ProcessBulk(ctx, 1, "cocinar\nciudad")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Duplicates)
	assert.Equal(t, 1, result.Created)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "already exists")
}

func TestProcessBulk_SemanticValidationFailsOpen(t *testing.T) {
	svc, repo, classifier := newTestIntakeService(t)
	ctx := context.Background()

	repo.EXPECT().ExistsForAccount(ctx, int64(1), "cocinar").Return(false, nil)
	classifier.EXPECT().ValidateWords(ctx, []string{"cocinar"}).Return(nil, llm.ErrTimeout)
	// despite the validation failure, classification still proceeds
	classifier.EXPECT().ClassifyWords(ctx, []string{"cocinar"}).Return(classify([]string{"cocinar"}), nil)
	repo.EXPECT().InsertBatch(ctx, int64(1), gomock.Any()).Return(classifyToCurated([]string{"cocinar"}), 0, nil)

	result, err := svc.ProcessBulk(ctx, 1, "cocinar")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
}

func TestProcessBulk_SemanticRejection(t *testing.T) {
	svc, repo, classifier := newTestIntakeService(t)
	ctx := context.Background()

	repo.EXPECT().ExistsForAccount(ctx, int64(1), "cocinar").Return(false, nil)
	repo.EXPECT().ExistsForAccount(ctx, int64(1), "ciudad").Return(false, nil)
	classifier.EXPECT().ValidateWords(ctx, []string{"cocinar", "ciudad"}).Return([]models.WordVerdict{
		{Word: "cocinar", Valid: true},
		{Word: "ciudad", Valid: false, Reason: "not suitable"},
	}, nil)
	classifier.EXPECT().ClassifyWords(ctx, []string{"cocinar"}).Return(classify([]string{"cocinar"}), nil)
	repo.EXPECT().InsertBatch(ctx, int64(1), gomock.Any()).Return(classifyToCurated([]string{"cocinar"}), 0, nil)

	result, err := svc.ProcessBulk(ctx, 1, "cocinar\nciudad")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Rejected)
	assert.Equal(t, 1, result.Created)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "not suitable")
}

func TestProcessBulk_ClassificationTotalFailure(t *testing.T) {
	svc, repo, classifier := newTestIntakeService(t)
	ctx := context.Background()

	repo.EXPECT().ExistsForAccount(ctx, int64(1), "cocinar").Return(false, nil)
	classifier.EXPECT().ValidateWords(ctx, []string{"cocinar"}).Return(acceptAll([]string{"cocinar"}), nil)
	classifier.EXPECT().ClassifyWords(ctx, []string{"cocinar"}).Return(nil, llm.ErrRateLimited)

	result, err := svc.ProcessBulk(ctx, 1, "cocinar")
	assert.ErrorIs(t, err, llm.ErrRateLimited)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "rate limit")
}

func TestProcessBulk_CommitFailureFailsWholeBatch(t *testing.T) {
	svc, repo, classifier := newTestIntakeService(t)
	ctx := context.Background()

	repo.EXPECT().ExistsForAccount(ctx, int64(1), "cocinar").Return(false, nil)
	classifier.EXPECT().ValidateWords(ctx, []string{"cocinar"}).Return(acceptAll([]string{"cocinar"}), nil)
	classifier.EXPECT().ClassifyWords(ctx, []string{"cocinar"}).Return(classify([]string{"cocinar"}), nil)
	repo.EXPECT().InsertBatch(ctx, int64(1), gomock.Any()).Return(nil, 0, store.ErrCommittingTransaction)

	result, err := svc.ProcessBulk(ctx, 1, "cocinar")
	assert.ErrorIs(t, err, store.ErrCommittingTransaction)
	assert.Zero(t, result.Created)
	assert.Equal(t, 1, result.Failed)
}

func TestProcessBulk_TruncatesOversizedBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCuratedWordRepository(ctrl)
	classifier := mock.NewMockClassifier(ctrl)
	svc := NewIntakeService(repo, classifier, config.Classifier{MaxBatchSize: 2}, logger.NewLogger("test"))
	ctx := context.Background()

	repo.EXPECT().ExistsForAccount(ctx, int64(1), gomock.Any()).Return(false, nil).Times(2)
	classifier.EXPECT().ValidateWords(ctx, []string{"cocinar", "ciudad"}).Return(acceptAll([]string{"cocinar", "ciudad"}), nil)
	classifier.EXPECT().ClassifyWords(ctx, []string{"cocinar", "ciudad"}).Return(classify([]string{"cocinar", "ciudad"}), nil)
	repo.EXPECT().InsertBatch(ctx, int64(1), gomock.Any()).Return(classifyToCurated([]string{"cocinar", "ciudad"}), 0, nil)

	result, err := svc.ProcessBulk(ctx, 1, "cocinar\nciudad\nhablar\ncomer")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "Limited to 2 words")
}

func TestUpdateWord_RejectsInvalidCategories(t *testing.T) {
	svc, _, _ := newTestIntakeService(t)

	badType := "sustantivo"
	_, err := svc.UpdateWord(context.Background(), models.CuratedWordUpdate{ID: 1, AccountID: 1, WordType: &badType})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	badThemes := []string{"weather", "astro"}
	_, err = svc.UpdateWord(context.Background(), models.CuratedWordUpdate{ID: 1, AccountID: 1, Themes: &badThemes})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	empty := ""
	_, err = svc.UpdateWord(context.Background(), models.CuratedWordUpdate{ID: 1, AccountID: 1, English: &empty})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUpdateWord_NotOwned(t *testing.T) {
	svc, repo, _ := newTestIntakeService(t)
	ctx := context.Background()

	learned := true
	repo.EXPECT().UpdateWord(ctx, gomock.Any()).Return(models.CuratedWord{}, store.ErrCuratedWordNotFound)

	_, err := svc.UpdateWord(ctx, models.CuratedWordUpdate{ID: 999, AccountID: 2, Learned: &learned})
	assert.ErrorIs(t, err, store.ErrCuratedWordNotFound)
}

func TestDeleteWord_PropagatesNotFound(t *testing.T) {
	svc, repo, _ := newTestIntakeService(t)
	ctx := context.Background()

	repo.EXPECT().DeleteWord(ctx, int64(1), int64(999)).Return(store.ErrCuratedWordNotFound)

	err := svc.DeleteWord(ctx, 1, 999)
	assert.ErrorIs(t, err, store.ErrCuratedWordNotFound)
}

func TestRandomWord(t *testing.T) {
	svc, repo, _ := newTestIntakeService(t)
	ctx := context.Background()

	repo.EXPECT().RandomWord(ctx, int64(1), false).Return(models.CuratedWord{ID: 3, Spanish: "sol"}, nil)

	word, err := svc.RandomWord(ctx, 1, false)
	require.NoError(t, err)
	assert.Equal(t, "sol", word.Spanish)

	repo.EXPECT().RandomWord(ctx, int64(1), true).Return(models.CuratedWord{}, store.ErrCuratedWordNotFound)
	_, err = svc.RandomWord(ctx, 1, true)
	assert.ErrorIs(t, err, store.ErrCuratedWordNotFound)
}
