package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	domainerrors "kumoart/internal/domain/errors"
	"kumoart/internal/domain/service"
	"kumoart/internal/errors"
	"kumoart/internal/infra/auth/github"
)

// authCallbackPage completes the CMS popup flow. The opener announces
// itself with an "authorizing:github" handshake; the popup then relays the
// token payload back to the announcing origin only and closes. The timeout
// closes abandoned popups.
const authCallbackPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Authorizing...</title></head>
<body>
<script>
(function() {
  var payload = %s;
  function receiveMessage(e) {
    window.opener.postMessage("authorization:github:success:" + payload, e.origin);
    window.removeEventListener("message", receiveMessage, false);
  }
  window.addEventListener("message", receiveMessage, false);
  window.opener.postMessage("authorizing:github", "*");
  setTimeout(function() { window.close(); }, 30000);
})();
</script>
<p>Authorizing, please wait...</p>
</body>
</html>`

// AuthHandler implements the GitHub OAuth helper routes used by the CMS
// admin popup.
type AuthHandler struct {
	oauth  service.OAuthService
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(oauth service.OAuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		oauth:  oauth,
		logger: logger,
	}
}

// Authorize redirects the popup to the provider authorization page.
func (h *AuthHandler) Authorize(c echo.Context) error {
	authURL, err := h.oauth.BuildAuthorizationURL(c.QueryParam("scope"))
	if err != nil {
		if errors.Is(err, github.ErrNotConfigured) {
			return errors.WithStack(domainerrors.ErrOAuthNotConfigured)
		}

		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, authURL)
}

// Callback exchanges the authorization code and hands the token payload to
// the CMS window via the postMessage handshake.
func (h *AuthHandler) Callback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return errors.WithStack(domainerrors.ErrOAuthCodeMissing)
	}

	exchange, err := h.oauth.ExchangeCode(c.Request().Context(), code)
	switch {
	case errors.Is(err, github.ErrNotConfigured):
		return errors.WithStack(domainerrors.ErrOAuthNotConfigured)
	case errors.Is(err, github.ErrCodeRejected):
		// Relay the provider's own error payload to the popup.
		return c.Blob(http.StatusBadRequest, echo.MIMEApplicationJSON, exchange.Payload)
	case err != nil:
		h.logger.Error("token exchange failed", slog.Any("error", err))

		return errors.WithStack(domainerrors.ErrOAuthExchangeFailed)
	}

	// The payload is embedded as a JS string literal; encoding it as a JSON
	// string keeps any provider content script-safe.
	literal, err := json.Marshal(string(exchange.Payload))
	if err != nil {
		return errors.WithStack(domainerrors.ErrOAuthExchangeFailed)
	}

	return c.HTML(http.StatusOK, fmt.Sprintf(authCallbackPage, literal))
}
