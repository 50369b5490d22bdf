package middleware

import (
	"net/http"
	"time"

	deliverycontext "kumoart/internal/delivery/context"
	"kumoart/internal/i18n"

	"github.com/labstack/echo/v4"
)

// localeCookieMaxAge keeps the preference for a year.
const localeCookieMaxAge = 365 * 24 * time.Hour

// LocaleMiddleware resolves the UI locale for each request from the
// persisted preference cookie. An absent or invalid cookie resolves to the
// default locale; the cookie is only written on an explicit switch.
type LocaleMiddleware struct {
	bundle *i18n.Bundle
}

// NewLocaleMiddleware creates a new locale resolution middleware
func NewLocaleMiddleware(bundle *i18n.Bundle) *LocaleMiddleware {
	return &LocaleMiddleware{bundle: bundle}
}

// Process resolves and stores the request locale.
func (m *LocaleMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		locale := i18n.DefaultLocale
		if cookie, err := c.Cookie(i18n.CookieName); err == nil {
			if parsed, ok := i18n.ParseLocale(cookie.Value); ok {
				locale = parsed
			}
		}

		deliverycontext.SetLocale(c, locale)

		return next(c)
	}
}

// PersistLocale writes the preference cookie for an explicit locale switch.
func PersistLocale(c echo.Context, locale i18n.Locale) {
	c.SetCookie(&http.Cookie{
		Name:     i18n.CookieName,
		Value:    locale.String(),
		Path:     "/",
		MaxAge:   int(localeCookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
