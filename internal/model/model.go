// Package model defines the core domain types for the event management system.
package model

import "time"

// User is an organizer identity, unique by email.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Organization string    `json:"organization"`
	CreatedAt    time.Time `json:"created_at"`
}

// Event is an organizer-created happening that owns ticket types.
// Time is carried as "HH:MM:SS" text over the store's TIME column.
type Event struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// EventSummary is the listing projection for an owner's dashboard.
type EventSummary struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Time     string    `json:"time"`
	Location string    `json:"location"`
}

// Ticket is a priced admission category under an event.
type Ticket struct {
	ID                int64   `json:"id"`
	EventID           int64   `json:"event_id"`
	Type              string  `json:"ticket_type"`
	Price             float64 `json:"price"`
	QuantityAvailable int     `json:"quantity_available"`
}

// TicketOption is the minimal projection for selection menus.
type TicketOption struct {
	ID    int64   `json:"id"`
	Type  string  `json:"ticket_type"`
	Price float64 `json:"price"`
}

// Registration is a confirmed attendee registration against a ticket.
// The registration timestamp is assigned by the store on insert.
type Registration struct {
	ID               int64     `json:"id"`
	TicketID         int64     `json:"ticket_id"`
	Name             string    `json:"attendee_name"`
	Email            string    `json:"attendee_email"`
	ConfirmationCode string    `json:"confirmation_code"`
	RegisteredAt     time.Time `json:"registration_date"`
}

// Attendee is one row of the attendee listing, joined to its ticket type.
type Attendee struct {
	Name         string    `json:"attendee_name"`
	Email        string    `json:"attendee_email"`
	TicketType   string    `json:"ticket_type"`
	RegisteredAt time.Time `json:"registration_date"`
}

// EventInsights holds per-event aggregate statistics.
//
// The monetary fields are nil (absent) when the event has no registered
// attendees; only tickets with at least one attendee contribute to
// min/max/avg. TotalTicketsAvailable counts every ticket of the event
// regardless of registrations.
type EventInsights struct {
	TotalAttendees        int64    `json:"total_attendees"`
	TotalRevenue          *float64 `json:"total_revenue"`
	MinTicketPrice        *float64 `json:"min_ticket_price"`
	MaxTicketPrice        *float64 `json:"max_ticket_price"`
	AvgTicketPrice        *float64 `json:"avg_ticket_price"`
	TotalTicketsAvailable int64    `json:"total_tickets_available"`
}

// HasSales reports whether any attendee has registered, i.e. whether
// the monetary aggregates are present.
func (i EventInsights) HasSales() bool {
	return i.TotalAttendees > 0
}

// ResolveUserRequest is the payload for identity resolution.
type ResolveUserRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
}

// CreateEventRequest is the payload for creating a new event.
// Date is "2006-01-02"; Time is "15:04" or "15:04:05".
type CreateEventRequest struct {
	OwnerID     int64  `json:"owner_id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// CreateTicketRequest is the payload for creating a ticket type.
type CreateTicketRequest struct {
	Type              string  `json:"ticket_type"`
	Price             float64 `json:"price"`
	QuantityAvailable int     `json:"quantity_available"`
}

// RegisterAttendeeRequest is the payload for registering an attendee.
type RegisterAttendeeRequest struct {
	Name  string `json:"attendee_name"`
	Email string `json:"attendee_email"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
