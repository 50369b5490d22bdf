package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kumoart/config"
	domainerrors "kumoart/internal/domain/errors"
	"kumoart/internal/domain/service"
	"kumoart/internal/errors"
	"kumoart/internal/infra/auth/github"
)

// stubOAuth returns canned exchange results for callback tests.
type stubOAuth struct {
	exchange *service.TokenExchange
	err      error
}

func (s *stubOAuth) BuildAuthorizationURL(string) (string, error) {
	return "https://github.com/login/oauth/authorize?client_id=stub", nil
}

func (s *stubOAuth) ExchangeCode(context.Context, string) (*service.TokenExchange, error) {
	return s.exchange, s.err
}

func TestAuthHandler_Authorize(t *testing.T) {
	cfg := testConfig()
	cfg.GitHubOAuth = &config.GitHubOAuthConfig{ClientID: "test_client_id", ClientSecret: "secret"}
	h := NewAuthHandler(github.NewOAuthService(cfg), slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Authorize(c))
	assert.Equal(t, http.StatusFound, rec.Code)

	location := rec.Header().Get(echo.HeaderLocation)
	assert.Contains(t, location, "github.com/login/oauth/authorize")
	assert.Contains(t, location, "client_id=test_client_id")
}

func TestAuthHandler_Authorize_NotConfigured(t *testing.T) {
	h := NewAuthHandler(github.NewOAuthService(testConfig()), slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Authorize(c)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthNotConfigured))
}

func TestAuthHandler_Callback_MissingCode(t *testing.T) {
	h := NewAuthHandler(&stubOAuth{}, slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/callback", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Callback(c)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthCodeMissing))
}

func TestAuthHandler_Callback_Success(t *testing.T) {
	payload := []byte(`{"access_token":"gho_test","token_type":"bearer"}`)
	h := NewAuthHandler(&stubOAuth{exchange: &service.TokenExchange{Payload: payload}}, slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/callback?code=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Callback(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `postMessage("authorizing:github"`)
	assert.Contains(t, body, "authorization:github:success:")
	assert.Contains(t, body, "gho_test")

	// The token reply must target the announcing origin, never broadcast.
	assert.Contains(t, body, `"authorization:github:success:" + payload, e.origin`)
	assert.NotContains(t, body, `"authorization:github:success:" + payload, "*"`)
}

func TestAuthHandler_Callback_CodeRejected(t *testing.T) {
	payload := []byte(`{"error":"bad_verification_code"}`)
	h := NewAuthHandler(&stubOAuth{
		exchange: &service.TokenExchange{Payload: payload},
		err:      github.ErrCodeRejected,
	}, slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/callback?code=stale", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Callback(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, string(payload), rec.Body.String())
}

func TestAuthHandler_Callback_ExchangeFailed(t *testing.T) {
	h := NewAuthHandler(&stubOAuth{err: errors.New("upstream down")}, slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/callback?code=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Callback(c)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthExchangeFailed))
}
