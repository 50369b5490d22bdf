package export

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kumoart/config"
	"kumoart/internal/delivery/http/view"
	"kumoart/internal/domain/entity"
	"kumoart/internal/domain/repository"
	"kumoart/internal/i18n"
	"kumoart/internal/infra/whatsapp"
	"kumoart/internal/usecase/impl"
)

type staticProductRepo struct {
	products []*entity.Product
}

func (r *staticProductRepo) FindAll() []*entity.Product    { return r.products }
func (r *staticProductRepo) FindActive() []*entity.Product { return r.products }

func (r *staticProductRepo) FindBySlug(slug string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			return p, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (r *staticProductRepo) Slugs() []string {
	var slugs []string
	for _, p := range r.products {
		slugs = append(slugs, p.Slug)
	}

	return slugs
}

type staticEventRepo struct {
	events []*entity.Event
}

func (r *staticEventRepo) FindAll() []*entity.Event    { return r.events }
func (r *staticEventRepo) FindActive() []*entity.Event { return r.events }

func (r *staticEventRepo) FindBySlug(slug string) (*entity.Event, error) {
	for _, e := range r.events {
		if e.Slug == slug {
			return e, nil
		}
	}

	return nil, repository.ErrEventNotFound
}

func (r *staticEventRepo) Slugs() []string {
	var slugs []string
	for _, e := range r.events {
		slugs = append(slugs, e.Slug)
	}

	return slugs
}

func TestExporter_Run(t *testing.T) {
	outputDir := t.TempDir()

	cfg := &config.Config{
		Catalog:  &config.CatalogConfig{PageSize: 12},
		WhatsApp: &config.WhatsAppConfig{Number: "6281234567890", BaseURL: "https://wa.me"},
		Brand:    &config.BrandConfig{Name: "Kumoart", Tagline: "Handmade"},
		Export:   &config.ExportConfig{OutputDir: outputDir},
	}

	productRepo := &staticProductRepo{products: []*entity.Product{
		{ID: 1, Slug: "tas-rajut", Name: "Tas Rajut", Price: 150000, Category: "Tas", IsActive: true, Stock: 3},
	}}
	eventRepo := &staticEventRepo{events: []*entity.Event{
		{ID: 1, Slug: "workshop", Title: "Workshop Rajut", StartDate: "2026-09-12", EndDate: "2026-09-12", IsActive: true},
	}}

	catalog := impl.NewCatalogService(productRepo, cfg)
	events := impl.NewEventService(eventRepo)

	builder := view.NewBuilder(view.BuilderParams{
		Config:  cfg,
		Bundle:  i18n.NewBundle(),
		Catalog: catalog,
		Events:  events,
		Links:   whatsapp.NewLinkService(cfg),
	})

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	exporter := New(cfg, renderer, builder, productRepo, eventRepo, slog.Default())
	require.NoError(t, exporter.Run())

	// Default locale pages live at the root, English under its prefix.
	wantPages := []string{
		"index.html",
		"404.html",
		filepath.Join("produk", "index.html"),
		filepath.Join("produk", "tas-rajut", "index.html"),
		filepath.Join("event", "index.html"),
		filepath.Join("event", "workshop", "index.html"),
		filepath.Join("en", "index.html"),
		filepath.Join("en", "produk", "tas-rajut", "index.html"),
		filepath.Join("en", "event", "workshop", "index.html"),
	}
	for _, page := range wantPages {
		_, statErr := os.Stat(filepath.Join(outputDir, page))
		assert.NoError(t, statErr, page)
	}

	home, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(home), `lang="id"`)

	enHome, err := os.ReadFile(filepath.Join(outputDir, "en", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(enHome), `lang="en"`)

	detail, err := os.ReadFile(filepath.Join(outputDir, "produk", "tas-rajut", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(detail), "Rp 150.000")
}
