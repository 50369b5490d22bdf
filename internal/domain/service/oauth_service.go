package service

import "context"

// TokenExchange holds the raw token payload returned by the provider.
// The payload is passed through to the CMS window untouched; this service
// never stores tokens.
type TokenExchange struct {
	Payload []byte
}

// OAuthService handles the GitHub OAuth flow used by the CMS admin popup.
type OAuthService interface {
	// BuildAuthorizationURL builds the provider authorization URL for the
	// given scope. An empty scope uses the configured default.
	BuildAuthorizationURL(scope string) (string, error)

	// ExchangeCode exchanges an authorization code for an access token.
	// When the provider rejects the code the implementation returns a
	// sentinel error together with the provider payload so the caller can
	// relay it.
	ExchangeCode(ctx context.Context, code string) (*TokenExchange, error)
}
