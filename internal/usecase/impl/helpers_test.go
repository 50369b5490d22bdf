package impl

import (
	"fmt"

	"kumoart/internal/domain/entity"
	"kumoart/internal/domain/repository"
)

// fakeProductRepo serves a fixed slice, like the content loader does after
// startup.
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

func catalogFixture() []*entity.Product {
	return []*entity.Product{
		{ID: 1, Slug: "tas-rajut-macrame", Name: "Tas Rajut Macrame", Description: "Tas anyaman gaya Bohemian", Price: 150000, Category: "Tas", IsFeatured: true, IsActive: true, Stock: 5},
		{ID: 2, Slug: "boneka-amigurumi", Name: "Boneka Amigurumi", Description: "Boneka rajut aman untuk anak", Price: 85000, Category: "Boneka", IsFeatured: true, IsActive: true, Stock: 0},
		{ID: 3, Slug: "syal-rajut", Name: "Syal Rajut", Description: "Syal hangat", Price: 60000, Category: "Aksesoris", IsActive: true, Stock: 3},
		{ID: 4, Slug: "topi-rajut", Name: "Topi Rajut", Description: "Topi untuk segala cuaca", Price: 45000, Category: "Aksesoris", IsActive: true, Stock: 7},
		{ID: 5, Slug: "produk-arsip", Name: "Produk Arsip", Description: "Tidak lagi dijual", Price: 10000, Category: "Tas", IsActive: false, Stock: 1},
	}
}

// numberedCatalog builds n active products for pagination tests.
func numberedCatalog(n int) []*entity.Product {
	products := make([]*entity.Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, &entity.Product{
			ID:       i,
			Slug:     fmt.Sprintf("produk-%02d", i),
			Name:     fmt.Sprintf("Produk %02d", i),
			Price:    i * 1000,
			Category: "Tas",
			IsActive: true,
			Stock:    1,
		})
	}

	return products
}

func intPtr(v int) *int { return &v }
