package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mtorres/palabras/internal/logger"
	"github.com/mtorres/palabras/internal/utils"
	"github.com/mtorres/palabras/models"
)

const (
	defaultTheme    = "cooking"
	defaultWordType = "noun"

	defaultSentenceCount = 5
	maxSentenceCount     = 20
)

// legacyPracticeThemes are always present in the stats payload, zero-filled,
// so the practice page can render its fixed theme tiles without checking for
// missing keys.
var legacyPracticeThemes = []string{"cooking", "work", "sports", "restaurant"}

func (h *Handler) practice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	theme := r.FormValue("theme")
	if theme == "" {
		theme = defaultTheme
	}
	wordType := r.FormValue("word_type")
	if wordType == "" {
		wordType = defaultWordType
	}
	count := parseCount(r.FormValue("count"))

	id, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		id = models.SentinelIdentity()
	}

	sentences, err := h.services.SentenceService.Generate(ctx, theme, wordType, id, count)
	if err != nil {
		log.Err(err).Str("theme", theme).Str("word_type", wordType).Msg("error generating practice sentences")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}
	if sentences == nil {
		sentences = []models.Sentence{}
	}

	// every sentence shown counts as practiced for this session
	if sessionToken, ok := utils.GetSessionTokenFromContext(ctx); ok {
		for _, sentence := range sentences {
			if err := h.services.PracticeService.RecordPractice(ctx, sessionToken, sentence.WordID, theme, wordType); err != nil {
				log.Err(err).Int64("word_id", sentence.WordID).Msg("error recording practice")
			}
		}
	}

	stats, err := h.services.PracticeService.Stats(ctx, id)
	if err != nil {
		log.Err(err).Msg("error aggregating practice stats")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.PracticeResponse{
		Sentences: sentences,
		Stats:     zeroFillThemes(stats),
	}, http.StatusOK)
}

func (h *Handler) markLearned(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.MarkLearnedRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if request.WordID == nil || *request.WordID <= 0 {
		log.Err(ErrInvalidWordID).Send()
		http.Error(w, ErrInvalidWordID.Error(), http.StatusBadRequest)
		return
	}

	sessionToken, ok := utils.GetSessionTokenFromContext(ctx)
	if !ok {
		log.Error().Msg("no session token in context")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	found, learned, err := h.services.PracticeService.ToggleLearned(ctx, sessionToken, *request.WordID)
	if err != nil {
		log.Err(err).Int64("word_id", *request.WordID).Msg("error toggling learned flag")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}
	if !found {
		http.Error(w, "word was not practiced in this session", http.StatusNotFound)
		return
	}

	id, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		id = models.SentinelIdentity()
	}

	stats, err := h.services.PracticeService.Stats(ctx, id)
	if err != nil {
		log.Err(err).Msg("error aggregating practice stats")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MarkLearnedResponse{
		Success:       true,
		MarkedLearned: learned,
		Stats:         zeroFillThemes(stats),
	}, http.StatusOK)
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		id = models.SentinelIdentity()
	}

	stats, err := h.services.PracticeService.Stats(ctx, id)
	if err != nil {
		log.Err(err).Msg("error aggregating practice stats")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, zeroFillThemes(stats), http.StatusOK)
}

// parseCount clamps the requested sentence count to [1, maxSentenceCount],
// falling back to the default on missing or unparseable input.
func parseCount(raw string) int {
	if raw == "" {
		return defaultSentenceCount
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		return defaultSentenceCount
	}

	if count < 1 {
		return 1
	}
	if count > maxSentenceCount {
		return maxSentenceCount
	}
	return count
}

// zeroFillThemes guarantees the fixed practice themes are present in the
// by-theme map. The service layer reports observed data only.
func zeroFillThemes(stats models.PracticeStats) models.PracticeStats {
	if stats.ByTheme == nil {
		stats.ByTheme = make(map[string]int, len(legacyPracticeThemes))
	}
	for _, theme := range legacyPracticeThemes {
		if _, ok := stats.ByTheme[theme]; !ok {
			stats.ByTheme[theme] = 0
		}
	}
	return stats
}
