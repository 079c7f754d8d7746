package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mtorres/palabras/internal/logger"
	"github.com/mtorres/palabras/internal/service"
	"github.com/mtorres/palabras/internal/utils"
	"github.com/mtorres/palabras/models"
)

func (h *Handler) bulkWords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.BulkWordsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.IntakeService.ProcessBulk(ctx, accountID, request.RawText)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyInput):
			log.Err(err).Msg("empty bulk input")
			http.Error(w, "no words provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrNoWordsAccepted):
			log.Err(err).Msg("no words accepted")
			utils.WriteJSON(w, bulkResponse(result, false), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("bulk intake failed")
			utils.WriteJSON(w, bulkResponse(result, false), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, bulkResponse(result, true), http.StatusOK)
}

func (h *Handler) listWords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	filter := models.CuratedWordFilter{
		WordType: r.URL.Query().Get("word_type"),
		Theme:    r.URL.Query().Get("theme"),
		Search:   r.URL.Query().Get("search"),
	}
	if raw := r.URL.Query().Get("learned"); raw != "" {
		learned := raw == "true"
		filter.Learned = &learned
	}

	words, err := h.services.IntakeService.ListWords(ctx, accountID, filter)
	if err != nil {
		log.Err(err).Msg("error listing curated words")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}
	if words == nil {
		words = []models.CuratedWord{}
	}

	utils.WriteJSON(w, words, http.StatusOK)
}

func (h *Handler) updateWord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	wordID, err := wordIDFromURL(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var update models.CuratedWordUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	update.ID = wordID
	update.AccountID = accountID

	word, err := h.services.IntakeService.UpdateWord(ctx, update)
	if err != nil {
		log.Err(err).Int64("word_id", wordID).Msg("error updating curated word")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, word, http.StatusOK)
}

func (h *Handler) deleteWord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	wordID, err := wordIDFromURL(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.IntakeService.DeleteWord(ctx, accountID, wordID); err != nil {
		log.Err(err).Int64("word_id", wordID).Msg("error deleting curated word")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) randomWord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	learned := r.URL.Query().Get("learned") == "true"

	word, err := h.services.IntakeService.RandomWord(ctx, accountID, learned)
	if err != nil {
		log.Err(err).Msg("error picking random curated word")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, word, http.StatusOK)
}

func wordIDFromURL(r *http.Request) (int64, error) {
	wordID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || wordID <= 0 {
		return 0, ErrInvalidWordID
	}
	return wordID, nil
}

func bulkResponse(result models.BulkResult, success bool) models.BulkWordsResponse {
	words := result.Words
	if words == nil {
		words = []models.CuratedWord{}
	}
	errorList := result.Errors
	if errorList == nil {
		errorList = []string{}
	}

	return models.BulkWordsResponse{
		Success: success,
		Words:   words,
		Errors:  errorList,
		Stats: models.BulkStats{
			Processed:  result.Processed,
			Created:    result.Created,
			Duplicates: result.Duplicates,
			Failed:     result.Failed,
			Rejected:   result.Rejected,
		},
	}
}
