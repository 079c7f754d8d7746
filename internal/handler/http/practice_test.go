package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mtorres/palabras/internal/service"
	"github.com/mtorres/palabras/internal/utils"
	"github.com/mtorres/palabras/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withSession(req *http.Request, token string) *http.Request {
	ctx := context.WithValue(req.Context(), utils.SessionTokenCtxKey, token)
	ctx = context.WithValue(ctx, utils.IdentityCtxKey, models.SessionIdentity(token))
	return req.WithContext(ctx)
}

func TestPractice_GeneratesAndRecords(t *testing.T) {
	recorded := make(map[int64]bool)
	sentence := &mockSentenceService{
		generateFn: func(_ context.Context, theme, wordType string, id models.Identity, count int) ([]models.Sentence, error) {
			assert.Equal(t, "work", theme)
			assert.Equal(t, "verb", wordType)
			assert.Equal(t, 3, count)
			assert.Equal(t, models.SessionIdentity("tok"), id)
			return []models.Sentence{
				{Spanish: "Voy a <mark>trabajar</mark>.", WordID: 1},
				{Spanish: "Quiero <mark>descansar</mark>.", WordID: 2},
			}, nil
		},
	}
	practice := &mockPracticeService{
		recordPracticeFn: func(_ context.Context, sessionToken string, wordID int64, theme, wordType string) error {
			assert.Equal(t, "tok", sessionToken)
			recorded[wordID] = true
			return nil
		},
		statsFn: func(_ context.Context, _ models.Identity) (models.PracticeStats, error) {
			return models.PracticeStats{TotalPracticed: 2, ByTheme: map[string]int{"work": 2}}, nil
		},
	}
	h := newTestHandler(t, &service.Services{SentenceService: sentence, PracticeService: practice})

	req := httptest.NewRequest(http.MethodGet, "/api/practice?theme=work&word_type=verb&count=3", nil)
	rec := httptest.NewRecorder()

	h.practice(rec, withSession(req, "tok"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[int64]bool{1: true, 2: true}, recorded)

	var response models.PracticeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response.Sentences, 2)
	assert.Equal(t, 2, response.Stats.ByTheme["work"])

	// fixed theme tiles are always present
	for _, theme := range []string{"cooking", "work", "sports", "restaurant"} {
		_, ok := response.Stats.ByTheme[theme]
		assert.True(t, ok, theme)
	}
}

func TestPractice_EmptyPoolReturnsEmptyList(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/practice?theme=work&word_type=verb", nil)
	rec := httptest.NewRecorder()

	h.practice(rec, withSession(req, "tok"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sentences":[]`)
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 5, parseCount(""))
	assert.Equal(t, 5, parseCount("abc"))
	assert.Equal(t, 1, parseCount("0"))
	assert.Equal(t, 1, parseCount("-3"))
	assert.Equal(t, 20, parseCount("100"))
	assert.Equal(t, 7, parseCount("7"))
}

func TestMarkLearned_Success(t *testing.T) {
	practice := &mockPracticeService{
		toggleLearnedFn: func(_ context.Context, sessionToken string, wordID int64) (bool, bool, error) {
			assert.Equal(t, "tok", sessionToken)
			assert.Equal(t, int64(7), wordID)
			return true, true, nil
		},
	}
	h := newTestHandler(t, &service.Services{PracticeService: practice})

	req := httptest.NewRequest(http.MethodPost, "/api/mark-learned", strings.NewReader(`{"word_id":7}`))
	rec := httptest.NewRecorder()

	h.markLearned(rec, withSession(req, "tok"))

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.MarkLearnedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.True(t, response.MarkedLearned)
}

func TestMarkLearned_MissingWordID(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodPost, "/api/mark-learned", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.markLearned(rec, withSession(req, "tok"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkLearned_NotPracticed(t *testing.T) {
	practice := &mockPracticeService{
		toggleLearnedFn: func(_ context.Context, _ string, _ int64) (bool, bool, error) {
			return false, false, nil
		},
	}
	h := newTestHandler(t, &service.Services{PracticeService: practice})

	req := httptest.NewRequest(http.MethodPost, "/api/mark-learned", strings.NewReader(`{"word_id":9999}`))
	rec := httptest.NewRecorder()

	h.markLearned(rec, withSession(req, "tok"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetStats_AccountIdentity(t *testing.T) {
	practice := &mockPracticeService{
		statsFn: func(_ context.Context, id models.Identity) (models.PracticeStats, error) {
			assert.Equal(t, models.AccountIdentity(42), id)
			return models.PracticeStats{TotalPracticed: 9, ByTheme: map[string]int{}}, nil
		},
	}
	h := newTestHandler(t, &service.Services{PracticeService: practice})

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	ctx := context.WithValue(req.Context(), utils.IdentityCtxKey, models.AccountIdentity(42))
	rec := httptest.NewRecorder()

	h.getStats(rec, req.WithContext(ctx))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_practiced":9`)
}

func TestZeroFillThemes(t *testing.T) {
	stats := zeroFillThemes(models.PracticeStats{})
	assert.Equal(t, map[string]int{"cooking": 0, "work": 0, "sports": 0, "restaurant": 0}, stats.ByTheme)

	stats = zeroFillThemes(models.PracticeStats{ByTheme: map[string]int{"cooking": 3, "weather": 1}})
	assert.Equal(t, 3, stats.ByTheme["cooking"])
	assert.Equal(t, 1, stats.ByTheme["weather"])
	assert.Equal(t, 0, stats.ByTheme["restaurant"])
}
