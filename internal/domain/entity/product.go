// Package entity contains the core business objects of the project.
package entity

// Product represents a single catalog item authored in the CMS.
// Records are read-only at runtime; they are never mutated after loading.
type Product struct {
	ID          int    `json:"id" yaml:"id"`
	Slug        string `json:"slug" yaml:"slug" validate:"required"`       // Unique URL-safe identifier used in routes.
	Name        string `json:"name" yaml:"name" validate:"required"`       // Display name.
	Description string `json:"description" yaml:"description"`             // Short description shown on cards.
	Price       int    `json:"price" yaml:"price" validate:"gte=0"`        // Price in whole Rupiah.
	Category    string `json:"category" yaml:"category"`                   // Free-form category label.
	Image       string `json:"image" yaml:"image"`                         // Image reference (path or URL).
	IsFeatured  bool   `json:"isFeatured" yaml:"isFeatured"`               // Shown in the home page picks.
	IsActive    bool   `json:"isActive" yaml:"isActive"`                   // Authored visibility flag.
	Stock       int    `json:"stock" yaml:"stock" validate:"gte=0"`        // Remaining stock count.
	Content     string `json:"content,omitempty" yaml:"content,omitempty"` // Markdown body from the CMS file.
}

// InStock reports whether the product can still be ordered.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
