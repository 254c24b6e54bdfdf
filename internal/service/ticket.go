package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/organizerly/eventmgmt/internal/model"
)

// TicketStore is the persistence interface the ticket service needs.
type TicketStore interface {
	Create(ctx context.Context, t model.Ticket) (model.Ticket, error)
	ListByEvent(ctx context.Context, eventID int64) ([]model.Ticket, error)
	ListOptions(ctx context.Context, eventID int64) ([]model.TicketOption, error)
}

// TicketService orchestrates ticket type management.
type TicketService struct {
	tickets TicketStore
}

// NewTicketService constructs a TicketService.
func NewTicketService(tickets TicketStore) *TicketService {
	return &TicketService{tickets: tickets}
}

// Create validates and creates a ticket type under an event.
func (s *TicketService) Create(ctx context.Context, eventID int64, req model.CreateTicketRequest) (model.Ticket, error) {
	req.Type = strings.TrimSpace(req.Type)
	if eventID <= 0 {
		return model.Ticket{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if req.Type == "" {
		return model.Ticket{}, fmt.Errorf("%w: ticket type is required", ErrInvalidInput)
	}
	if req.Price < 0 {
		return model.Ticket{}, fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	if req.QuantityAvailable < 0 {
		return model.Ticket{}, fmt.Errorf("%w: quantity cannot be negative", ErrInvalidInput)
	}

	return s.tickets.Create(ctx, model.Ticket{
		EventID:           eventID,
		Type:              req.Type,
		Price:             req.Price,
		QuantityAvailable: req.QuantityAvailable,
	})
}

// List returns every ticket type of an event.
func (s *TicketService) List(ctx context.Context, eventID int64) ([]model.Ticket, error) {
	if eventID <= 0 {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	return s.tickets.ListByEvent(ctx, eventID)
}

// ListOptions returns the lightweight projection for selection menus.
func (s *TicketService) ListOptions(ctx context.Context, eventID int64) ([]model.TicketOption, error) {
	if eventID <= 0 {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	return s.tickets.ListOptions(ctx, eventID)
}
