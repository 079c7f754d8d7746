package service

import (
	"github.com/mtorres/palabras/internal/config"
	"github.com/mtorres/palabras/internal/llm"
	"github.com/mtorres/palabras/internal/logger"
	"github.com/mtorres/palabras/internal/store"
	"github.com/mtorres/palabras/internal/utils"
)

type Services struct {
	AuthService     AuthService
	IdentityService IdentityService
	SentenceService SentenceService
	PracticeService PracticeService
	IntakeService   IntakeService
}

func NewServices(repos *store.Repositories, classifier llm.Classifier, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	practiceService := NewPracticeService(repos.PracticeRepository, repos.SessionRepository, logger)

	return &Services{
		AuthService:     NewAuthService(repos.AccountRepository, cfg.App, logger),
		IdentityService: NewIdentityService(repos.SessionRepository, utils.NewTokenGenerator(), logger),
		SentenceService: NewSentenceService(repos.VocabularyRepository, repos.PracticeRepository, repos.SessionRepository, logger),
		PracticeService: practiceService,
		IntakeService:   NewIntakeService(repos.CuratedWordRepository, classifier, cfg.Classifier, logger),
	}
}
