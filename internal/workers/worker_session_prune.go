package workers

import (
	"context"
	"time"

	"github.com/mtorres/palabras/internal/config"
	"github.com/mtorres/palabras/internal/logger"
	"github.com/mtorres/palabras/internal/store"
)

const pruneTimeout = 30 * time.Second

// sessionPruneWorker periodically removes anonymous progress sessions that
// have been idle longer than the configured threshold and have no practice
// history. Sessions linked to an account are never pruned.
type sessionPruneWorker struct {
	sessions store.SessionRepository
	interval time.Duration
	maxIdle  time.Duration
	logger   *logger.Logger
}

func newSessionPruneWorker(sessions store.SessionRepository, cfg config.Workers, logger *logger.Logger) *sessionPruneWorker {
	return &sessionPruneWorker{
		sessions: sessions,
		interval: cfg.SessionPruneInterval,
		maxIdle:  cfg.SessionMaxIdle,
		logger:   logger,
	}
}

// Run starts the pruning loop in a background goroutine. A non-positive
// interval disables the worker.
func (w *sessionPruneWorker) Run() {
	if w.interval <= 0 {
		w.logger.Info().Msg("session prune worker disabled")
		return
	}

	w.logger.Info().
		Dur("interval", w.interval).
		Dur("max_idle", w.maxIdle).
		Msg("session prune worker started")

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for range ticker.C {
			w.pruneOnce()
		}
	}()
}

func (w *sessionPruneWorker) pruneOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), pruneTimeout)
	defer cancel()

	idleSince := time.Now().Add(-w.maxIdle)

	pruned, err := w.sessions.PruneIdleAnonymousSessions(ctx, idleSince)
	if err != nil {
		w.logger.Err(err).Msg("error pruning idle anonymous sessions")
		return
	}

	if pruned > 0 {
		w.logger.Info().Int64("pruned", pruned).Msg("idle anonymous sessions pruned")
	}
}
