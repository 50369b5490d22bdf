package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"kumoart/internal/domain/entity"
	domainerrors "kumoart/internal/domain/errors"
	"kumoart/internal/domain/repository"
	"kumoart/internal/errors"
	"kumoart/internal/usecase"
)

// EventHandler serves the event JSON API.
type EventHandler struct {
	uc     usecase.EventUsecase
	logger *slog.Logger
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventUsecase, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		uc:     uc,
		logger: logger,
	}
}

// eventRecord carries an event together with its display formatting so API
// consumers render the same labels as the HTML pages.
type eventRecord struct {
	*entity.Event

	DateRange  string `json:"dateRange"`
	PriceLabel string `json:"priceLabel"`
}

// ListEvents returns the active and past event sections.
func (h *EventHandler) ListEvents(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]eventRecord{
		"active": h.records(h.uc.Active()),
		"past":   h.records(h.uc.Past()),
	})
}

// GetEvent returns a single event by slug.
func (h *EventHandler) GetEvent(c echo.Context) error {
	event, err := h.uc.BySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return errors.WithStack(domainerrors.ErrEventNotFound)
		}

		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, h.record(event))
}

func (h *EventHandler) record(event *entity.Event) eventRecord {
	return eventRecord{
		Event:      event,
		DateRange:  h.uc.FormatDateRange(event.StartDate, event.EndDate),
		PriceLabel: h.uc.FormatPrice(event.Price),
	}
}

func (h *EventHandler) records(events []*entity.Event) []eventRecord {
	records := make([]eventRecord, 0, len(events))
	for _, event := range events {
		records = append(records, h.record(event))
	}

	return records
}
