package view

import (
	"bytes"
	"html/template"
	"time"

	"github.com/yuin/goldmark"
	"go.uber.org/fx"

	"kumoart/config"
	"kumoart/internal/domain/entity"
	"kumoart/internal/domain/service"
	"kumoart/internal/i18n"
	"kumoart/internal/usecase"
	"kumoart/internal/util"
)

const (
	featuredLimit = 4
	relatedLimit  = 4

	// pageWindow bounds the number of page links shown around the current
	// page in the catalog pager.
	pageWindow = 2
)

// BuilderParams defines the dependencies of the page builder.
type BuilderParams struct {
	fx.In

	Config  *config.Config
	Bundle  *i18n.Bundle
	Catalog usecase.CatalogUsecase
	Events  usecase.EventUsecase
	Links   service.ContactLinkService
}

// Builder assembles page data from the query engines. It is shared by the
// HTTP handlers and the static exporter.
type Builder struct {
	cfg      *config.Config
	bundle   *i18n.Bundle
	catalog  usecase.CatalogUsecase
	events   usecase.EventUsecase
	links    service.ContactLinkService
	markdown goldmark.Markdown
}

// NewBuilder creates the page builder.
func NewBuilder(params BuilderParams) *Builder {
	return &Builder{
		cfg:      params.Config,
		bundle:   params.Bundle,
		catalog:  params.Catalog,
		events:   params.Events,
		links:    params.Links,
		markdown: goldmark.New(),
	}
}

// Home builds the landing page.
func (b *Builder) Home(locale i18n.Locale) HomeData {
	return HomeData{
		Page:         b.page(locale, b.cfg.Brand.FullName(), "/"),
		Featured:     b.productViews(b.catalog.Featured(featuredLimit), false),
		ActiveEvents: b.eventViews(b.events.Active(), false),
		MaxDiscount:  b.events.MaxDiscount(),
	}
}

// Catalog builds the product listing for the given filter and page number.
func (b *Builder) Catalog(locale i18n.Locale, filter usecase.ProductFilter, page int) CatalogData {
	result := b.catalog.Browse(filter, page)

	return CatalogData{
		Page:        b.page(locale, b.bundle.T(locale, "nav.products"), "/produk"),
		Products:    b.productViews(result.Items, false),
		Categories:  b.catalog.Categories(),
		Query:       filter.Query,
		Category:    filter.Category,
		MinPrice:    filter.MinPrice,
		MaxPrice:    filter.MaxPrice,
		InStockOnly: filter.InStockOnly,
		CurrentPage: result.Page,
		TotalPages:  result.TotalPages,
		TotalItems:  result.TotalItems,
		Pages:       pageNumbers(result.Page, result.TotalPages),
	}
}

// ProductDetail builds a single product page. The error is
// repository.ErrProductNotFound when the slug does not resolve.
func (b *Builder) ProductDetail(locale i18n.Locale, slug string) (ProductDetailData, error) {
	product, err := b.catalog.BySlug(slug)
	if err != nil {
		return ProductDetailData{}, err
	}

	return ProductDetailData{
		Page:    b.page(locale, product.Name, "/produk/"+product.Slug),
		Product: b.productView(product, true),
		Related: b.productViews(b.catalog.Related(product, relatedLimit), false),
	}, nil
}

// EventList builds the event listing with active and past sections.
func (b *Builder) EventList(locale i18n.Locale) EventListData {
	return EventListData{
		Page:   b.page(locale, b.bundle.T(locale, "nav.events"), "/event"),
		Active: b.eventViews(b.events.Active(), false),
		Past:   b.eventViews(b.events.Past(), false),
	}
}

// EventDetail builds a single event page. The error is
// repository.ErrEventNotFound when the slug does not resolve.
func (b *Builder) EventDetail(locale i18n.Locale, slug string) (EventDetailData, error) {
	event, err := b.events.BySlug(slug)
	if err != nil {
		return EventDetailData{}, err
	}

	return EventDetailData{
		Page:  b.page(locale, event.Title, "/event/"+event.Slug),
		Event: b.eventView(event, true),
	}, nil
}

// NotFound builds the 404 page state.
func (b *Builder) NotFound(locale i18n.Locale) NotFoundData {
	return NotFoundData{
		Page: b.page(locale, b.bundle.T(locale, "notfound.title"), ""),
	}
}

func (b *Builder) page(locale i18n.Locale, title, path string) Page {
	page := Page{
		Locale:           locale,
		Title:            title,
		Description:      b.cfg.Brand.Tagline,
		Brand:            b.cfg.Brand.Name,
		Tagline:          b.cfg.Brand.Tagline,
		ActiveEventCount: len(b.events.Active()),
		bundle:           b.bundle,
	}

	if b.cfg.Site != nil && path != "" {
		page.Canonical = b.cfg.Site.URL + path
	}
	if b.cfg.Social != nil {
		page.InstagramURL = b.cfg.Social.Instagram
		page.TikTokURL = b.cfg.Social.TikTok
		page.FacebookURL = b.cfg.Social.Facebook
	}

	return page
}

func (b *Builder) productView(product *entity.Product, withBody bool) ProductView {
	view := ProductView{
		Product:    product,
		PriceLabel: util.FormatRupiah(product.Price),
		WhatsAppLink: b.links.BuildLink(service.ContactLinkParams{
			ProductName: product.Name,
			Price:       util.FormatRupiah(product.Price),
		}),
	}
	if withBody {
		view.BodyHTML = b.renderMarkdown(product.Content)
	}

	return view
}

func (b *Builder) productViews(products []*entity.Product, withBody bool) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, b.productView(product, withBody))
	}

	return views
}

func (b *Builder) eventView(event *entity.Event, withBody bool) EventView {
	now := time.Now()
	view := EventView{
		Event:      event,
		DateRange:  b.events.FormatDateRange(event.StartDate, event.EndDate),
		PriceLabel: b.events.FormatPrice(event.Price),
		WhatsAppLink: b.links.BuildLink(service.ContactLinkParams{
			EventTitle: event.Title,
		}),
		Ongoing:  b.events.IsOngoing(event, now),
		Upcoming: b.events.IsUpcoming(event, now),
	}
	if withBody {
		view.BodyHTML = b.renderMarkdown(event.Content)
	}

	return view
}

func (b *Builder) eventViews(events []*entity.Event, withBody bool) []EventView {
	views := make([]EventView, 0, len(events))
	for _, event := range events {
		views = append(views, b.eventView(event, withBody))
	}

	return views
}

func (b *Builder) renderMarkdown(content string) template.HTML {
	if content == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := b.markdown.Convert([]byte(content), &buf); err != nil {
		// Fall back to escaped plain text on a conversion failure.
		return template.HTML(template.HTMLEscapeString(content))
	}

	return template.HTML(buf.String())
}

// pageNumbers lists the page links to show: a window around the current
// page plus the first and last page.
func pageNumbers(current, total int) []int {
	if total <= 1 {
		return nil
	}

	var pages []int
	for n := 1; n <= total; n++ {
		if n == 1 || n == total || (n >= current-pageWindow && n <= current+pageWindow) {
			pages = append(pages, n)
		}
	}

	return pages
}
