package entity

// Event represents a workshop, bazaar or promo authored in the CMS.
// StartDate and EndDate are ISO calendar dates (YYYY-MM-DD); they are
// compared as dates, not instants, so no timezone normalization applies.
type Event struct {
	ID          int    `json:"id" yaml:"id"`
	Slug        string `json:"slug" yaml:"slug" validate:"required"`
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description" yaml:"description"`
	StartDate   string `json:"startDate" yaml:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"endDate" yaml:"endDate" validate:"required,datetime=2006-01-02"`
	Image       string `json:"image" yaml:"image"`
	// IsActive is the authored listing flag. It is the single source of
	// truth for active/past listing; the date helpers in the event usecase
	// are display-only and may disagree with it.
	IsActive bool     `json:"isActive" yaml:"isActive"`
	Discount *int     `json:"discount,omitempty" yaml:"discount,omitempty" validate:"omitempty,gte=0,lte=100"`
	Price    *int     `json:"price,omitempty" yaml:"price,omitempty" validate:"omitempty,gte=0"`
	Location string   `json:"location,omitempty" yaml:"location,omitempty"`
	Quota    *int     `json:"quota,omitempty" yaml:"quota,omitempty" validate:"omitempty,gte=0"`
	Terms    []string `json:"terms" yaml:"terms"`
	Content  string   `json:"content,omitempty" yaml:"content,omitempty"`
}
