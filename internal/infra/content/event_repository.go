package content

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"kumoart/config"
	"kumoart/internal/domain/entity"
	"kumoart/internal/domain/repository"
	"kumoart/internal/errors"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type eventRepository struct {
	events []*entity.Event
}

// NewEventRepository loads authored events once according to the content
// configuration and serves them from memory.
func NewEventRepository(cfg *config.Config, logger *slog.Logger) (repository.EventRepository, error) {
	events, report, err := LoadEvents(cfg.Content)
	if err != nil {
		return nil, err
	}

	report.log(logger, "event")
	logger.Info("events loaded",
		slog.Int("records", report.Records),
		slog.Int("issues", len(report.Issues)),
	)

	return &eventRepository{events: events}, nil
}

// LoadEvents reads event records from the configured source and returns
// them together with a validation report.
func LoadEvents(cfg *config.ContentConfig) ([]*entity.Event, *Report, error) {
	report := &Report{}
	validate := validator.New(validator.WithRequiredStructEnabled())

	if cfg == nil {
		return nil, report, errors.New("content configuration is missing")
	}

	var events []*entity.Event

	switch cfg.Mode {
	case "json":
		if err := loadJSONArray(cfg.EventsFile, &events); err != nil {
			return nil, report, err
		}
		for i, e := range events {
			report.validateRecord(validate, fmt.Sprintf("%s[%d]", filepath.Base(cfg.EventsFile), i), e)
		}
	default:
		entries, err := listMarkdownFiles(cfg.EventsDir)
		if err != nil {
			return nil, report, err
		}
		for _, name := range entries {
			event, parseErr := parseEventFile(filepath.Join(cfg.EventsDir, name))
			if parseErr != nil {
				report.add(name, "", parseErr.Error())
			}
			report.validateRecord(validate, name, event)
			events = append(events, event)
		}
	}

	report.Records = len(events)

	return events, report, nil
}

func parseEventFile(path string) (*entity.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &entity.Event{}, errors.Wrap(err, "read event file")
	}

	event := &entity.Event{}
	header, body := splitFrontMatter(data)
	event.Content = trimBody(body)

	if len(header) == 0 {
		return event, nil
	}
	if err := yaml.Unmarshal(header, event); err != nil {
		return event, errors.Wrap(err, "parse front matter")
	}

	return event, nil
}

func (r *eventRepository) FindAll() []*entity.Event {
	return r.events
}

func (r *eventRepository) FindActive() []*entity.Event {
	var active []*entity.Event
	for _, e := range r.events {
		if e.IsActive {
			active = append(active, e)
		}
	}

	return active
}

func (r *eventRepository) FindBySlug(slug string) (*entity.Event, error) {
	for _, e := range r.events {
		if e.Slug == slug {
			return e, nil
		}
	}

	return nil, repository.ErrEventNotFound
}

func (r *eventRepository) Slugs() []string {
	slugs := make([]string, 0, len(r.events))
	for _, e := range r.events {
		slugs = append(slugs, e.Slug)
	}

	return slugs
}
