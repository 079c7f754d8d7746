package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mtorres/palabras/internal/logger"
	"github.com/mtorres/palabras/internal/service"
	"github.com/mtorres/palabras/internal/store"
	"github.com/mtorres/palabras/internal/utils"
	"github.com/mtorres/palabras/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, err := h.services.AuthService.Register(ctx, credentials.Email, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			http.Error(w, "email already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during account registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.issueTokenAndAdoptSession(w, r, account)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, err := h.services.AuthService.Login(ctx, credentials.Email, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoAccountWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no account was found/wrong password")
			http.Error(w, "invalid email/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", account.ID).Msg("account successfully logged in")

	h.issueTokenAndAdoptSession(w, r, account)
}

// issueTokenAndAdoptSession creates a bearer token for the account and links
// the caller's current anonymous session to it, so progress made before
// signing in follows the account.
func (h *Handler) issueTokenAndAdoptSession(w http.ResponseWriter, r *http.Request, account models.Account) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(ctx, account.ID)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if sessionToken, ok := utils.GetSessionTokenFromContext(ctx); ok && sessionToken != "" {
		if _, _, err := h.services.IdentityService.Resolve(ctx, sessionToken, account.ID); err != nil {
			// the account still gets its token; progress linking is best-effort
			log.Err(err).Msg("error linking session to account")
		}
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, account, http.StatusOK)
}
