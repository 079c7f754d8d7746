package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mtorres/palabras/internal/service"
	"github.com/mtorres/palabras/internal/utils"
	"github.com/mtorres/palabras/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_MintsCookieForFirstVisit(t *testing.T) {
	identity := &mockIdentityService{
		resolveFn: func(_ context.Context, token string, accountID int64) (models.Identity, string, error) {
			assert.Empty(t, token)
			assert.Zero(t, accountID)
			return models.SessionIdentity("fresh-token"), "fresh-token", nil
		},
	}
	h := newTestHandler(t, &service.Services{IdentityService: identity})

	var gotIdentity models.Identity
	var gotToken string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIdentity, _ = utils.GetIdentityFromContext(r.Context())
		gotToken, _ = utils.GetSessionTokenFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	h.session(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/practice", nil))

	assert.Equal(t, models.SessionIdentity("fresh-token"), gotIdentity)
	assert.Equal(t, "fresh-token", gotToken)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Equal(t, "fresh-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSession_KeepsExistingCookie(t *testing.T) {
	identity := &mockIdentityService{
		resolveFn: func(_ context.Context, token string, _ int64) (models.Identity, string, error) {
			assert.Equal(t, "known-token", token)
			return models.SessionIdentity(token), token, nil
		},
	}
	h := newTestHandler(t, &service.Services{IdentityService: identity})

	req := httptest.NewRequest(http.MethodGet, "/api/practice", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "known-token"})
	rec := httptest.NewRecorder()

	h.session(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	// unchanged token: no Set-Cookie churn
	assert.Empty(t, rec.Result().Cookies())
}

func TestSession_BearerYieldsAccountIdentity(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "jwt-token", tokenString)
			return models.Token{AccountID: 42}, nil
		},
	}
	identity := &mockIdentityService{
		resolveFn: func(_ context.Context, token string, accountID int64) (models.Identity, string, error) {
			assert.Equal(t, int64(42), accountID)
			return models.AccountIdentity(accountID), token, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth, IdentityService: identity})

	var gotIdentity models.Identity
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotIdentity, _ = utils.GetIdentityFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/practice", nil)
	req.Header.Set("Authorization", "Bearer jwt-token")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "known-token"})

	h.session(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, models.AccountIdentity(42), gotIdentity)
}

func TestSession_ResolutionFailureProceedsAnonymously(t *testing.T) {
	identity := &mockIdentityService{
		resolveFn: func(_ context.Context, _ string, _ int64) (models.Identity, string, error) {
			return models.Identity{}, "", assert.AnError
		},
	}
	h := newTestHandler(t, &service.Services{IdentityService: identity})

	called := false
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		called = true
		_, ok := utils.GetIdentityFromContext(r.Context())
		assert.False(t, ok)
	})

	h.session(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/practice", nil))

	assert.True(t, called)
}
