// Package repository defines the data access contracts for content records.
package repository

import (
	"kumoart/internal/domain/entity"
	"kumoart/internal/errors"
)

// ErrProductNotFound is returned when no product matches the given slug.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository provides read access to the product catalog.
// Content is authored externally and loaded once; implementations hold the
// full record list in memory.
type ProductRepository interface {
	// FindAll returns every loaded product in source order.
	FindAll() []*entity.Product

	// FindActive returns products whose IsActive flag is set, in source order.
	FindActive() []*entity.Product

	// FindBySlug returns the first product with the given slug or
	// ErrProductNotFound.
	FindBySlug(slug string) (*entity.Product, error)

	// Slugs returns the slug of every active product, for static path
	// enumeration.
	Slugs() []string
}
