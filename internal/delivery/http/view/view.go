// Package view builds and renders the HTML pages of the site. The same
// builders feed both the live server and the static exporter so exported
// pages match the served ones exactly.
package view

import (
	"html/template"

	"kumoart/internal/domain/entity"
	"kumoart/internal/i18n"
)

// Page is the data shared by every rendered page: SEO metadata, brand
// identity and the translation lookup bound to the request locale.
type Page struct {
	Locale      i18n.Locale
	Title       string
	Description string
	Canonical   string
	Brand       string
	Tagline     string

	// ActiveEventCount feeds the navbar badge.
	ActiveEventCount int

	InstagramURL string
	TikTokURL    string
	FacebookURL  string

	bundle *i18n.Bundle
}

// T resolves a translation key against the page locale. A missing key
// renders as the key itself.
func (p Page) T(key string) string {
	return p.bundle.T(p.Locale, key)
}

// AltLocale is the locale the language switch offers.
func (p Page) AltLocale() i18n.Locale {
	if p.Locale == i18n.LocaleEN {
		return i18n.LocaleID
	}

	return i18n.LocaleEN
}

// ProductView decorates a product record with display fields.
type ProductView struct {
	*entity.Product

	PriceLabel   string
	WhatsAppLink string
	BodyHTML     template.HTML
}

// EventView decorates an event record with display fields. Ongoing and
// Upcoming are date-derived hints only; listing always follows IsActive.
type EventView struct {
	*entity.Event

	DateRange    string
	PriceLabel   string
	WhatsAppLink string
	Ongoing      bool
	Upcoming     bool
	BodyHTML     template.HTML
}

// HomeData renders the landing page.
type HomeData struct {
	Page

	Featured     []ProductView
	ActiveEvents []EventView
	MaxDiscount  int
}

// CatalogData renders the searchable product listing.
type CatalogData struct {
	Page

	Products   []ProductView
	Categories []string

	Query       string
	Category    string
	MinPrice    string
	MaxPrice    string
	InStockOnly bool

	CurrentPage int
	TotalPages  int
	TotalItems  int
	Pages       []int
}

// ProductDetailData renders a single product page.
type ProductDetailData struct {
	Page

	Product ProductView
	Related []ProductView
}

// EventListData renders the event listing with active and past sections.
type EventListData struct {
	Page

	Active []EventView
	Past   []EventView
}

// EventDetailData renders a single event page.
type EventDetailData struct {
	Page

	Event EventView
}

// NotFoundData renders the 404 page state.
type NotFoundData struct {
	Page
}
