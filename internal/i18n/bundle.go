package i18n

// Bundle resolves dot-namespaced translation keys for the supported locales.
type Bundle struct {
	messages map[Locale]map[string]string
}

// NewBundle returns a bundle preloaded with the full UI dictionary.
func NewBundle() *Bundle {
	return &Bundle{messages: translations}
}

// T resolves key against the given locale's dictionary. A missing key
// returns the key itself rather than failing; a typo in a template must
// never take a page down. There is no fallback-locale lookup.
func (b *Bundle) T(locale Locale, key string) string {
	dict, ok := b.messages[locale]
	if !ok {
		dict = b.messages[DefaultLocale]
	}

	if msg, ok := dict[key]; ok {
		return msg
	}

	return key
}

// Func returns a lookup closure bound to one locale, for template use.
func (b *Bundle) Func(locale Locale) func(key string) string {
	return func(key string) string {
		return b.T(locale, key)
	}
}

// Locales lists the supported locales, default first.
func (b *Bundle) Locales() []Locale {
	return []Locale{LocaleID, LocaleEN}
}
