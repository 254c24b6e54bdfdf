package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/organizerly/eventmgmt/internal/model"
	"github.com/organizerly/eventmgmt/internal/observability"
)

// AttendeeStore is the persistence interface the attendee service needs.
type AttendeeStore interface {
	Register(ctx context.Context, ticketID int64, name, email string) (model.Registration, error)
	ListByEvent(ctx context.Context, eventID int64, ticketType string) ([]model.Attendee, error)
}

// AttendeeService orchestrates attendee registration and listing.
type AttendeeService struct {
	attendees AttendeeStore
	metrics   observability.MetricsRecorder
}

// NewAttendeeService constructs an AttendeeService.
func NewAttendeeService(attendees AttendeeStore, metrics observability.MetricsRecorder) *AttendeeService {
	return &AttendeeService{attendees: attendees, metrics: metrics}
}

// Register validates the request and registers an attendee against a ticket.
// Capacity is not checked against quantity_available; the advertised
// quantity is informational only.
func (s *AttendeeService) Register(ctx context.Context, ticketID int64, req model.RegisterAttendeeRequest) (model.Registration, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if ticketID <= 0 {
		return model.Registration{}, fmt.Errorf("%w: ticket id is required", ErrInvalidInput)
	}
	if req.Name == "" {
		return model.Registration{}, fmt.Errorf("%w: attendee name is required", ErrInvalidInput)
	}
	if req.Email == "" {
		return model.Registration{}, fmt.Errorf("%w: attendee email is required", ErrInvalidInput)
	}
	if !isValidEmail(req.Email) {
		return model.Registration{}, fmt.Errorf("%w: attendee email is not a valid address", ErrInvalidInput)
	}

	reg, err := s.attendees.Register(ctx, ticketID, req.Name, req.Email)
	s.metrics.RecordRegistration(ctx, err)
	if err != nil {
		return model.Registration{}, fmt.Errorf("register attendee: %w", err)
	}
	return reg, nil
}

// List returns the attendees of an event, optionally narrowed to one
// ticket type. The filter is exact and case-sensitive; the empty string
// means all types.
func (s *AttendeeService) List(ctx context.Context, eventID int64, ticketType string) ([]model.Attendee, error) {
	if eventID <= 0 {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	return s.attendees.ListByEvent(ctx, eventID, ticketType)
}
