package http

import (
	"context"
	"net/http"

	"github.com/mtorres/palabras/internal/logger"
	"github.com/mtorres/palabras/internal/utils"
)

// sessionCookieName is the HttpOnly cookie carrying the opaque progress
// session token.
const sessionCookieName = "palabras_session"

// session resolves the caller's progress identity exactly once per request.
//
// It reads the session cookie (if any) and an optional bearer token, asks
// [service.IdentityService.Resolve] for the identity, stows both the identity
// and the resolved session token in the request context, and refreshes the
// cookie so anonymous visitors keep their progress across visits.
//
// Resolution failures are logged and the request proceeds with the sentinel
// identity: practicing must not break because the session store hiccuped.
func (h *Handler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		var cookieToken string
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			cookieToken = cookie.Value
		}

		accountID := h.bearerAccountID(r)

		id, token, err := h.services.IdentityService.Resolve(ctx, cookieToken, accountID)
		if err != nil {
			log.Err(err).Msg("error resolving progress identity")
			next.ServeHTTP(w, r)
			return
		}

		if token != cookieToken {
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx = context.WithValue(ctx, utils.IdentityCtxKey, id)
		ctx = context.WithValue(ctx, utils.SessionTokenCtxKey, token)
		if accountID != 0 {
			ctx = context.WithValue(ctx, utils.AccountIDCtxKey, accountID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
