package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/organizerly/eventmgmt/internal/model"
	"github.com/organizerly/eventmgmt/internal/observability"
)

// EventStore is the persistence interface the event service needs.
type EventStore interface {
	Create(ctx context.Context, e model.Event) (model.Event, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.EventSummary, error)
}

// InsightStore computes per-event aggregates.
type InsightStore interface {
	ForEvent(ctx context.Context, eventID int64) (model.EventInsights, error)
}

// EventService orchestrates event creation, listing, and insights.
type EventService struct {
	events   EventStore
	insights InsightStore
	metrics  observability.MetricsRecorder
}

// NewEventService constructs an EventService with its dependencies.
func NewEventService(events EventStore, insights InsightStore, metrics observability.MetricsRecorder) *EventService {
	return &EventService{events: events, insights: insights, metrics: metrics}
}

// Create validates the request and delegates to the repository.
func (s *EventService) Create(ctx context.Context, req model.CreateEventRequest) (model.Event, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return model.Event{}, fmt.Errorf("%w: event name is required", ErrInvalidInput)
	}
	if req.OwnerID <= 0 {
		return model.Event{}, fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return model.Event{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	eventTime, err := normalizeClock(req.Time)
	if err != nil {
		return model.Event{}, fmt.Errorf("%w: time must be HH:MM or HH:MM:SS", ErrInvalidInput)
	}

	return s.events.Create(ctx, model.Event{
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Date:        date,
		Time:        eventTime,
		Location:    strings.TrimSpace(req.Location),
		Description: strings.TrimSpace(req.Description),
	})
}

// List returns the owner's events, most recent date first.
func (s *EventService) List(ctx context.Context, ownerID int64) ([]model.EventSummary, error) {
	if ownerID <= 0 {
		return nil, fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}
	return s.events.ListByOwner(ctx, ownerID)
}

// Insights computes the event's aggregate statistics.
func (s *EventService) Insights(ctx context.Context, eventID int64) (model.EventInsights, error) {
	if eventID <= 0 {
		return model.EventInsights{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	start := time.Now()
	in, err := s.insights.ForEvent(ctx, eventID)
	s.metrics.RecordInsightQuery(ctx, time.Since(start), err)
	if err != nil {
		return model.EventInsights{}, fmt.Errorf("event insights: %w", err)
	}
	return in, nil
}

// normalizeClock validates a wall-clock string and normalizes it to HH:MM:SS.
func normalizeClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t.Format("15:04:05"), nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "", err
	}
	return t.Format("15:04:05"), nil
}
