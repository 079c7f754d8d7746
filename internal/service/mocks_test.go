package service

import (
	"context"
	"time"

	"github.com/mtorres/palabras/models"
)

// Hand-rolled mocks for the store interfaces shared across service tests.
// Each method delegates to an optional function field, so tests configure
// only the calls they care about.

type mockAccountRepository struct {
	createAccountFn      func(ctx context.Context, account models.Account) (models.Account, error)
	findAccountByEmailFn func(ctx context.Context, email string) (models.Account, error)
	touchLastLoginFn     func(ctx context.Context, accountID int64) error
}

func (m *mockAccountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	if m.createAccountFn != nil {
		return m.createAccountFn(ctx, account)
	}
	return account, nil
}

func (m *mockAccountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	if m.findAccountByEmailFn != nil {
		return m.findAccountByEmailFn(ctx, email)
	}
	return models.Account{}, nil
}

func (m *mockAccountRepository) TouchLastLogin(ctx context.Context, accountID int64) error {
	if m.touchLastLoginFn != nil {
		return m.touchLastLoginFn(ctx, accountID)
	}
	return nil
}

type mockSessionRepository struct {
	createSessionFn         func(ctx context.Context, session models.ProgressSession) (models.ProgressSession, error)
	findSessionByTokenFn    func(ctx context.Context, token string) (models.ProgressSession, error)
	linkSessionToAccountFn  func(ctx context.Context, token string, accountID int64) error
	touchSessionFn          func(ctx context.Context, token string) error
	sessionTokensFn         func(ctx context.Context, accountID int64) ([]string, error)
	pruneIdleSessionsFn     func(ctx context.Context, idleSince time.Time) (int64, error)
}

func (m *mockSessionRepository) CreateSession(ctx context.Context, session models.ProgressSession) (models.ProgressSession, error) {
	if m.createSessionFn != nil {
		return m.createSessionFn(ctx, session)
	}
	return session, nil
}

func (m *mockSessionRepository) FindSessionByToken(ctx context.Context, token string) (models.ProgressSession, error) {
	if m.findSessionByTokenFn != nil {
		return m.findSessionByTokenFn(ctx, token)
	}
	return models.ProgressSession{Token: token}, nil
}

func (m *mockSessionRepository) LinkSessionToAccount(ctx context.Context, token string, accountID int64) error {
	if m.linkSessionToAccountFn != nil {
		return m.linkSessionToAccountFn(ctx, token, accountID)
	}
	return nil
}

func (m *mockSessionRepository) TouchSession(ctx context.Context, token string) error {
	if m.touchSessionFn != nil {
		return m.touchSessionFn(ctx, token)
	}
	return nil
}

func (m *mockSessionRepository) SessionTokensForAccount(ctx context.Context, accountID int64) ([]string, error) {
	if m.sessionTokensFn != nil {
		return m.sessionTokensFn(ctx, accountID)
	}
	return nil, nil
}

func (m *mockSessionRepository) PruneIdleAnonymousSessions(ctx context.Context, idleSince time.Time) (int64, error) {
	if m.pruneIdleSessionsFn != nil {
		return m.pruneIdleSessionsFn(ctx, idleSince)
	}
	return 0, nil
}

type mockVocabularyRepository struct {
	wordsFn     func(ctx context.Context, theme, wordType string) ([]models.VocabularyWord, error)
	templatesFn func(ctx context.Context, theme, wordType string) ([]models.SentenceTemplate, error)
}

func (m *mockVocabularyRepository) WordsByThemeAndType(ctx context.Context, theme, wordType string) ([]models.VocabularyWord, error) {
	if m.wordsFn != nil {
		return m.wordsFn(ctx, theme, wordType)
	}
	return nil, nil
}

func (m *mockVocabularyRepository) TemplatesByThemeAndType(ctx context.Context, theme, wordType string) ([]models.SentenceTemplate, error) {
	if m.templatesFn != nil {
		return m.templatesFn(ctx, theme, wordType)
	}
	return nil, nil
}

type mockPracticeRepository struct {
	insertPracticeFn func(ctx context.Context, record models.PracticeRecord) error
	findPracticeFn   func(ctx context.Context, sessionToken string, wordID int64) (models.PracticeRecord, error)
	setLearnedFn     func(ctx context.Context, sessionToken string, wordID int64, learned bool) error
	learnedWordIDsFn func(ctx context.Context, sessionTokens []string, wordIDs []int64) (map[int64]bool, error)
	statsForTokensFn func(ctx context.Context, sessionTokens []string) (models.PracticeStats, error)
}

func (m *mockPracticeRepository) InsertPractice(ctx context.Context, record models.PracticeRecord) error {
	if m.insertPracticeFn != nil {
		return m.insertPracticeFn(ctx, record)
	}
	return nil
}

func (m *mockPracticeRepository) FindPractice(ctx context.Context, sessionToken string, wordID int64) (models.PracticeRecord, error) {
	if m.findPracticeFn != nil {
		return m.findPracticeFn(ctx, sessionToken, wordID)
	}
	return models.PracticeRecord{}, nil
}

func (m *mockPracticeRepository) SetLearned(ctx context.Context, sessionToken string, wordID int64, learned bool) error {
	if m.setLearnedFn != nil {
		return m.setLearnedFn(ctx, sessionToken, wordID, learned)
	}
	return nil
}

func (m *mockPracticeRepository) LearnedWordIDs(ctx context.Context, sessionTokens []string, wordIDs []int64) (map[int64]bool, error) {
	if m.learnedWordIDsFn != nil {
		return m.learnedWordIDsFn(ctx, sessionTokens, wordIDs)
	}
	return map[int64]bool{}, nil
}

func (m *mockPracticeRepository) StatsForTokens(ctx context.Context, sessionTokens []string) (models.PracticeStats, error) {
	if m.statsForTokensFn != nil {
		return m.statsForTokensFn(ctx, sessionTokens)
	}
	return models.PracticeStats{ByTheme: map[string]int{}}, nil
}
