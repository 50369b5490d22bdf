package impl

import (
	"math"
	"strconv"
	"strings"

	"kumoart/config"
	"kumoart/internal/domain/entity"
	"kumoart/internal/domain/repository"
	"kumoart/internal/usecase"
)

type catalogService struct {
	productRepo repository.ProductRepository
	pageSize    int
}

// NewCatalogService creates the catalog query engine.
func NewCatalogService(productRepo repository.ProductRepository, cfg *config.Config) usecase.CatalogUsecase {
	pageSize := 0
	if cfg.Catalog != nil {
		pageSize = cfg.Catalog.PageSize
	}
	if pageSize <= 0 {
		pageSize = 12
	}

	return &catalogService{
		productRepo: productRepo,
		pageSize:    pageSize,
	}
}

func (s *catalogService) Search(filter usecase.ProductFilter) []*entity.Product {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	category := strings.TrimSpace(filter.Category)
	minPrice := parsePriceBound(filter.MinPrice, 0)
	maxPrice := parsePriceBound(filter.MaxPrice, math.MaxInt)

	var matched []*entity.Product
	for _, p := range s.productRepo.FindActive() {
		if !matchesQuery(p, query) {
			continue
		}
		if !matchesCategory(p, category) {
			continue
		}
		if p.Price < minPrice || p.Price > maxPrice {
			continue
		}
		if filter.InStockOnly && !p.InStock() {
			continue
		}
		matched = append(matched, p)
	}

	return matched
}

func (s *catalogService) Paginate(items []*entity.Product, page int) usecase.ProductPage {
	totalItems := len(items)
	totalPages := (totalItems + s.pageSize - 1) / s.pageSize

	// Clamp rather than error: an out-of-range page request lands on the
	// nearest valid page.
	maxPage := totalPages
	if maxPage < 1 {
		maxPage = 1
	}
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}

	start := (page - 1) * s.pageSize
	end := start + s.pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return usecase.ProductPage{
		Items:      items[start:end],
		Page:       page,
		PageSize:   s.pageSize,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}
}

func (s *catalogService) Browse(filter usecase.ProductFilter, page int) usecase.ProductPage {
	return s.Paginate(s.Search(filter), page)
}

func (s *catalogService) Featured(limit int) []*entity.Product {
	var featured []*entity.Product
	for _, p := range s.productRepo.FindActive() {
		if !p.IsFeatured {
			continue
		}
		featured = append(featured, p)
		if limit > 0 && len(featured) == limit {
			break
		}
	}

	return featured
}

func (s *catalogService) Categories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range s.productRepo.FindActive() {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}

	return categories
}

func (s *catalogService) Related(product *entity.Product, limit int) []*entity.Product {
	var related []*entity.Product
	for _, p := range s.productRepo.FindActive() {
		if p.Slug == product.Slug || p.Category != product.Category {
			continue
		}
		related = append(related, p)
		if limit > 0 && len(related) == limit {
			break
		}
	}

	return related
}

func (s *catalogService) BySlug(slug string) (*entity.Product, error) {
	return s.productRepo.FindBySlug(slug)
}

// matchesQuery does a case-insensitive substring match over name,
// description and category. An empty query matches everything.
func matchesQuery(p *entity.Product, query string) bool {
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}

func matchesCategory(p *entity.Product, category string) bool {
	if category == "" || category == usecase.CategoryAll {
		return true
	}

	return p.Category == category
}

// parsePriceBound parses a raw bound defensively: empty or non-numeric
// input means the bound is absent.
func parsePriceBound(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}

	return value
}
