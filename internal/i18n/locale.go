// Package i18n provides the bilingual UI string lookup.
package i18n

import "golang.org/x/text/language"

// Locale is a supported UI language code.
type Locale string

const (
	// LocaleID is Indonesian, the default locale.
	LocaleID Locale = "id"
	// LocaleEN is English.
	LocaleEN Locale = "en"

	// DefaultLocale is used when no valid preference is present.
	DefaultLocale = LocaleID

	// CookieName is the client-side key persisting the locale preference.
	CookieName = "kumoart-language"
)

// AllLocales lists the supported locales with the default first.
func AllLocales() []Locale {
	return []Locale{LocaleID, LocaleEN}
}

// ParseLocale validates a raw locale code. Anything other than the two
// supported codes is rejected so a tampered cookie falls back to the default.
func ParseLocale(raw string) (Locale, bool) {
	switch Locale(raw) {
	case LocaleID:
		return LocaleID, true
	case LocaleEN:
		return LocaleEN, true
	default:
		return DefaultLocale, false
	}
}

// Tag returns the BCP 47 language tag for the locale.
func (l Locale) Tag() language.Tag {
	if l == LocaleEN {
		return language.English
	}

	return language.Indonesian
}

// String implements fmt.Stringer.
func (l Locale) String() string {
	return string(l)
}
