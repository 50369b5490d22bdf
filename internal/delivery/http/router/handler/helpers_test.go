package handler

import (
	"kumoart/config"
	"kumoart/internal/domain/entity"
	"kumoart/internal/domain/repository"
)

// fakeProductRepo serves a fixed product list.
type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) FindAll() []*entity.Product { return r.products }

func (r *fakeProductRepo) FindActive() []*entity.Product {
	var active []*entity.Product
	for _, p := range r.products {
		if p.IsActive {
			active = append(active, p)
		}
	}

	return active
}

func (r *fakeProductRepo) FindBySlug(slug string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			return p, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (r *fakeProductRepo) Slugs() []string {
	var slugs []string
	for _, p := range r.FindActive() {
		slugs = append(slugs, p.Slug)
	}

	return slugs
}

// fakeEventRepo serves a fixed event list.
type fakeEventRepo struct {
	events []*entity.Event
}

func (r *fakeEventRepo) FindAll() []*entity.Event { return r.events }

func (r *fakeEventRepo) FindActive() []*entity.Event {
	var active []*entity.Event
	for _, e := range r.events {
		if e.IsActive {
			active = append(active, e)
		}
	}

	return active
}

func (r *fakeEventRepo) FindBySlug(slug string) (*entity.Event, error) {
	for _, e := range r.events {
		if e.Slug == slug {
			return e, nil
		}
	}

	return nil, repository.ErrEventNotFound
}

func (r *fakeEventRepo) Slugs() []string {
	var slugs []string
	for _, e := range r.events {
		slugs = append(slugs, e.Slug)
	}

	return slugs
}

func testConfig() *config.Config {
	return &config.Config{
		Catalog:  &config.CatalogConfig{PageSize: 12},
		WhatsApp: &config.WhatsAppConfig{Number: "6281234567890", BaseURL: "https://wa.me"},
		Brand:    &config.BrandConfig{Name: "Kumoart", Tagline: "Handmade"},
		Site:     &config.SiteConfig{URL: "https://kumoart.id"},
	}
}

func testProducts() []*entity.Product {
	return []*entity.Product{
		{ID: 1, Slug: "tas-rajut-macrame", Name: "Tas Rajut Macrame", Price: 150000, Category: "Tas", IsFeatured: true, IsActive: true, Stock: 5},
		{ID: 2, Slug: "boneka-amigurumi", Name: "Boneka Amigurumi", Price: 85000, Category: "Boneka", IsFeatured: true, IsActive: true, Stock: 12},
		{ID: 3, Slug: "produk-arsip", Name: "Produk Arsip", Price: 10000, Category: "Tas", IsActive: false},
	}
}

func testEvents() []*entity.Event {
	discount := 20

	return []*entity.Event{
		{ID: 1, Slug: "workshop-rajut", Title: "Workshop Rajut", StartDate: "2026-09-12", EndDate: "2026-09-13", IsActive: true, Discount: &discount},
		{ID: 2, Slug: "bazaar-lalu", Title: "Bazaar Lalu", StartDate: "2025-01-01", EndDate: "2025-01-02", IsActive: false},
	}
}
