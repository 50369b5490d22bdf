package usecase

import (
	"kumoart/internal/domain/entity"
)

// CategoryAll is the sentinel category that matches every product.
const CategoryAll = "all"

// ProductFilter carries the catalog filter state. Price bounds arrive as
// raw strings from the query form; non-numeric input means no bound.
type ProductFilter struct {
	Query       string `json:"query" query:"q"`
	Category    string `json:"category" query:"category"`
	MinPrice    string `json:"minPrice" query:"min_price"`
	MaxPrice    string `json:"maxPrice" query:"max_price"`
	InStockOnly bool   `json:"inStockOnly" query:"in_stock"`
}

// ProductPage is one page of a filtered catalog view.
type ProductPage struct {
	Items      []*entity.Product `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
	TotalItems int               `json:"totalItems"`
}

// CatalogUsecase is the product query engine. All methods operate on the
// in-memory catalog; only active products are visible.
type CatalogUsecase interface {
	// Search applies free-text, category, price-range and stock filters,
	// ANDed, preserving catalog order.
	Search(filter ProductFilter) []*entity.Product

	// Paginate slices items into the requested page. The page number is
	// clamped into valid range; an out-of-range request never yields an
	// empty page while items exist.
	Paginate(items []*entity.Product, page int) ProductPage

	// Browse is Search followed by Paginate.
	Browse(filter ProductFilter, page int) ProductPage

	// Featured returns up to limit active featured products.
	Featured(limit int) []*entity.Product

	// Categories returns the distinct category labels in first-seen order.
	Categories() []string

	// Related returns up to limit other active products sharing the
	// product's category.
	Related(product *entity.Product, limit int) []*entity.Product

	// BySlug returns the product with the given slug or
	// repository.ErrProductNotFound.
	BySlug(slug string) (*entity.Product, error)
}
