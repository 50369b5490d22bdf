package repository

import (
	"kumoart/internal/domain/entity"
	"kumoart/internal/errors"
)

// ErrEventNotFound is returned when no event matches the given slug.
var ErrEventNotFound = errors.New("event not found")

// EventRepository provides read access to authored events.
type EventRepository interface {
	// FindAll returns every loaded event in source order.
	FindAll() []*entity.Event

	// FindActive returns events whose IsActive flag is set, in source order.
	FindActive() []*entity.Event

	// FindBySlug returns the first event with the given slug or
	// ErrEventNotFound.
	FindBySlug(slug string) (*entity.Event, error)

	// Slugs returns the slug of every event, for static path enumeration.
	Slugs() []string
}
