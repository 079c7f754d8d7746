package http

import (
	"context"
	"testing"

	"github.com/mtorres/palabras/internal/logger"
	"github.com/mtorres/palabras/internal/service"
	"github.com/mtorres/palabras/models"
)

// Per-test service mocks. Each method delegates to its function field when
// set and otherwise returns a benign zero value, so tests only wire the
// methods they care about.

type mockAuthService struct {
	registerFn    func(ctx context.Context, email, password string) (models.Account, error)
	loginFn       func(ctx context.Context, email, password string) (models.Account, error)
	createTokenFn func(ctx context.Context, accountID int64) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, email, password string) (models.Account, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, email, password)
	}
	return models.Account{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.Account, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return models.Account{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, accountID int64) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, accountID)
	}
	return models.Token{SignedString: "signed-token", AccountID: accountID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

type mockIdentityService struct {
	resolveFn func(ctx context.Context, token string, accountID int64) (models.Identity, string, error)
}

func (m *mockIdentityService) Resolve(ctx context.Context, token string, accountID int64) (models.Identity, string, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, token, accountID)
	}
	if accountID != 0 {
		return models.AccountIdentity(accountID), token, nil
	}
	return models.SessionIdentity(token), token, nil
}

type mockSentenceService struct {
	generateFn func(ctx context.Context, theme, wordType string, id models.Identity, count int) ([]models.Sentence, error)
}

func (m *mockSentenceService) Generate(ctx context.Context, theme, wordType string, id models.Identity, count int) ([]models.Sentence, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, theme, wordType, id, count)
	}
	return nil, nil
}

type mockPracticeService struct {
	recordPracticeFn func(ctx context.Context, sessionToken string, wordID int64, theme, wordType string) error
	toggleLearnedFn  func(ctx context.Context, sessionToken string, wordID int64) (bool, bool, error)
	statsFn          func(ctx context.Context, id models.Identity) (models.PracticeStats, error)
}

func (m *mockPracticeService) RecordPractice(ctx context.Context, sessionToken string, wordID int64, theme, wordType string) error {
	if m.recordPracticeFn != nil {
		return m.recordPracticeFn(ctx, sessionToken, wordID, theme, wordType)
	}
	return nil
}

func (m *mockPracticeService) ToggleLearned(ctx context.Context, sessionToken string, wordID int64) (bool, bool, error) {
	if m.toggleLearnedFn != nil {
		return m.toggleLearnedFn(ctx, sessionToken, wordID)
	}
	return false, false, nil
}

func (m *mockPracticeService) Stats(ctx context.Context, id models.Identity) (models.PracticeStats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx, id)
	}
	return models.PracticeStats{ByTheme: map[string]int{}}, nil
}

type mockIntakeService struct {
	processBulkFn func(ctx context.Context, accountID int64, rawText string) (models.BulkResult, error)
	listWordsFn   func(ctx context.Context, accountID int64, filter models.CuratedWordFilter) ([]models.CuratedWord, error)
	updateWordFn  func(ctx context.Context, update models.CuratedWordUpdate) (models.CuratedWord, error)
	deleteWordFn  func(ctx context.Context, accountID, wordID int64) error
	randomWordFn  func(ctx context.Context, accountID int64, learned bool) (models.CuratedWord, error)
}

func (m *mockIntakeService) ProcessBulk(ctx context.Context, accountID int64, rawText string) (models.BulkResult, error) {
	if m.processBulkFn != nil {
		return m.processBulkFn(ctx, accountID, rawText)
	}
	return models.BulkResult{}, nil
}

func (m *mockIntakeService) ListWords(ctx context.Context, accountID int64, filter models.CuratedWordFilter) ([]models.CuratedWord, error) {
	if m.listWordsFn != nil {
		return m.listWordsFn(ctx, accountID, filter)
	}
	return nil, nil
}

func (m *mockIntakeService) UpdateWord(ctx context.Context, update models.CuratedWordUpdate) (models.CuratedWord, error) {
	if m.updateWordFn != nil {
		return m.updateWordFn(ctx, update)
	}
	return models.CuratedWord{}, nil
}

func (m *mockIntakeService) DeleteWord(ctx context.Context, accountID, wordID int64) error {
	if m.deleteWordFn != nil {
		return m.deleteWordFn(ctx, accountID, wordID)
	}
	return nil
}

func (m *mockIntakeService) RandomWord(ctx context.Context, accountID int64, learned bool) (models.CuratedWord, error) {
	if m.randomWordFn != nil {
		return m.randomWordFn(ctx, accountID, learned)
	}
	return models.CuratedWord{}, nil
}

// newTestHandler builds a Handler over the given mocks, substituting benign
// defaults for any nil service.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()

	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.IdentityService == nil {
		services.IdentityService = &mockIdentityService{}
	}
	if services.SentenceService == nil {
		services.SentenceService = &mockSentenceService{}
	}
	if services.PracticeService == nil {
		services.PracticeService = &mockPracticeService{}
	}
	if services.IntakeService == nil {
		services.IntakeService = &mockIntakeService{}
	}

	return NewHandler(services, logger.Nop())
}
