package impl

import (
	"time"

	"kumoart/internal/domain/entity"
	"kumoart/internal/domain/repository"
	"kumoart/internal/usecase"
	"kumoart/internal/util"
)

// freeLabel is shown in place of a price for free events.
const freeLabel = "Gratis"

type eventService struct {
	eventRepo repository.EventRepository
}

// NewEventService creates the event query engine.
func NewEventService(eventRepo repository.EventRepository) usecase.EventUsecase {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) Active() []*entity.Event {
	return s.eventRepo.FindActive()
}

func (s *eventService) Past() []*entity.Event {
	var past []*entity.Event
	for _, e := range s.eventRepo.FindAll() {
		if !e.IsActive {
			past = append(past, e)
		}
	}

	return past
}

func (s *eventService) BySlug(slug string) (*entity.Event, error) {
	return s.eventRepo.FindBySlug(slug)
}

func (s *eventService) FormatDate(date string) string {
	return util.FormatDateID(date)
}

func (s *eventService) FormatDateRange(start, end string) string {
	if start == end {
		return util.FormatDateID(start)
	}

	return util.FormatDateID(start) + " - " + util.FormatDateID(end)
}

func (s *eventService) FormatPrice(price *int) string {
	if price == nil || *price == 0 {
		return freeLabel
	}

	return util.FormatRupiah(*price)
}

func (s *eventService) IsOngoing(event *entity.Event, now time.Time) bool {
	start, err := util.ParseDate(event.StartDate)
	if err != nil {
		return false
	}
	end, err := util.ParseDate(event.EndDate)
	if err != nil {
		return false
	}

	// The end date is inclusive: extend it to end of day.
	end = end.Add(24*time.Hour - time.Nanosecond)

	return !now.Before(start) && !now.After(end)
}

func (s *eventService) IsUpcoming(event *entity.Event, now time.Time) bool {
	start, err := util.ParseDate(event.StartDate)
	if err != nil {
		return false
	}

	return now.Before(start)
}

func (s *eventService) MaxDiscount() int {
	maxDiscount := 0
	for _, e := range s.eventRepo.FindActive() {
		if e.Discount != nil && *e.Discount > maxDiscount {
			maxDiscount = *e.Discount
		}
	}

	return maxDiscount
}
