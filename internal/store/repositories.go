package store

import "github.com/mtorres/palabras/internal/logger"

// Repositories bundles every repository behind one value for wiring into the
// service layer.
type Repositories struct {
	AccountRepository     AccountRepository
	SessionRepository     SessionRepository
	VocabularyRepository  VocabularyRepository
	PracticeRepository    PracticeRepository
	CuratedWordRepository CuratedWordRepository
}

// NewRepositories constructs every repository on top of the shared database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		AccountRepository:     NewAccountRepository(db, logger),
		SessionRepository:     NewSessionRepository(db, logger),
		VocabularyRepository:  NewVocabularyRepository(db, logger),
		PracticeRepository:    NewPracticeRepository(db, logger),
		CuratedWordRepository: NewCuratedWordRepository(db, logger),
	}
}
