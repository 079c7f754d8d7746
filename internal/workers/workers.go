package workers

import (
	"github.com/mtorres/palabras/internal/config"
	"github.com/mtorres/palabras/internal/logger"
	"github.com/mtorres/palabras/internal/store"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(repos *store.Repositories, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newSessionPruneWorker(repos.SessionRepository, cfg, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
