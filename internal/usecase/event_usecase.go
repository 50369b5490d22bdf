package usecase

import (
	"time"

	"kumoart/internal/domain/entity"
)

// EventUsecase is the event query engine: active/past views and display
// formatting for dates and prices.
type EventUsecase interface {
	// Active returns events whose authored IsActive flag is set. The flag
	// is the single source of truth; the date helpers below are
	// display-only and may disagree with it.
	Active() []*entity.Event

	// Past returns events whose IsActive flag is unset.
	Past() []*entity.Event

	// BySlug returns the event with the given slug or
	// repository.ErrEventNotFound.
	BySlug(slug string) (*entity.Event, error)

	// FormatDate renders an ISO date in Indonesian long form.
	FormatDate(date string) string

	// FormatDateRange renders "start - end", collapsing to a single date
	// when both sides are equal.
	FormatDateRange(start, end string) string

	// FormatPrice renders an optional price; nil or zero is the free label.
	FormatPrice(price *int) string

	// IsOngoing reports whether now falls inside the event's date range,
	// with the end date extended to end of day.
	IsOngoing(event *entity.Event, now time.Time) bool

	// IsUpcoming reports whether the event starts after now.
	IsUpcoming(event *entity.Event, now time.Time) bool

	// MaxDiscount returns the largest discount percent among active
	// events, zero when none carry one.
	MaxDiscount() int
}
