// Package github implements the OAuth helper used by the CMS admin popup.
// The service exchanges an authorization code for an access token and hands
// the raw payload back to the CMS window; it never stores tokens or
// sessions.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kumoart/config"
	"kumoart/internal/domain/service"
	"kumoart/internal/errors"
)

const (
	defaultAuthorizeURL = "https://github.com/login/oauth/authorize"
	defaultTokenURL     = "https://github.com/login/oauth/access_token"
	defaultScopes       = "repo,user"

	exchangeTimeout = 10 * time.Second
)

// Sentinel errors surfaced to the delivery layer.
var (
	// ErrNotConfigured is returned when no client id is configured.
	ErrNotConfigured = errors.New("github oauth is not configured")
	// ErrCodeRejected is returned when the provider rejects the code; the
	// provider payload is preserved in the exchange result.
	ErrCodeRejected = errors.New("authorization code rejected")
)

// OAuthService exchanges authorization codes against the GitHub token
// endpoint with a single best-effort request: no retry, no deduplication.
type OAuthService struct {
	clientID     string
	clientSecret string
	scopes       string

	authorizeURL string
	tokenURL     string
	httpClient   *http.Client
}

// NewOAuthService creates a new GitHub OAuth service.
func NewOAuthService(cfg *config.Config) service.OAuthService {
	svc := &OAuthService{
		scopes:       defaultScopes,
		authorizeURL: defaultAuthorizeURL,
		tokenURL:     defaultTokenURL,
		httpClient:   &http.Client{Timeout: exchangeTimeout},
	}

	if cfg.GitHubOAuth != nil {
		svc.clientID = cfg.GitHubOAuth.ClientID
		svc.clientSecret = cfg.GitHubOAuth.ClientSecret
		if strings.TrimSpace(cfg.GitHubOAuth.Scopes) != "" {
			svc.scopes = cfg.GitHubOAuth.Scopes
		}
	}

	return svc
}

// BuildAuthorizationURL constructs the GitHub authorization URL.
func (s *OAuthService) BuildAuthorizationURL(scope string) (string, error) {
	if s.clientID == "" {
		return "", ErrNotConfigured
	}

	if scope == "" {
		scope = s.scopes
	}

	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("scope", scope)

	return s.authorizeURL + "?" + params.Encode(), nil
}

// ExchangeCode posts the authorization code to the token endpoint and
// returns the raw provider payload.
func (s *OAuthService) ExchangeCode(ctx context.Context, code string) (*service.TokenExchange, error) {
	if s.clientID == "" || s.clientSecret == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(map[string]string{
		"client_id":     s.clientID,
		"client_secret": s.clientSecret,
		"code":          code,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal token request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build token request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "exchange token")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read token response")
	}

	exchange := &service.TokenExchange{Payload: payload}

	// GitHub reports rejections in the body with a 200 status, so the
	// payload has to be inspected.
	var probe struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return nil, errors.Wrap(err, "parse token response")
	}
	if probe.Error != "" {
		return exchange, ErrCodeRejected
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	return exchange, nil
}
