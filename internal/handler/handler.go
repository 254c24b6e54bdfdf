// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/organizerly/eventmgmt/internal/model"
	"github.com/organizerly/eventmgmt/internal/repository"
	"github.com/organizerly/eventmgmt/internal/service"
)

// Handler holds all HTTP handlers for the event management API.
type Handler struct {
	users     *service.UserService
	events    *service.EventService
	tickets   *service.TicketService
	attendees *service.AttendeeService
}

// New constructs a Handler over the four services.
func New(users *service.UserService, events *service.EventService, tickets *service.TicketService, attendees *service.AttendeeService) *Handler {
	return &Handler{users: users, events: events, tickets: tickets, attendees: attendees}
}

// Routes builds the API router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", HealthCheck)

	r.Route("/users", func(r chi.Router) {
		r.Post("/resolve", h.ResolveUser)
		r.Get("/{id}/events", h.ListEvents)
	})

	r.Route("/events", func(r chi.Router) {
		r.Post("/", h.CreateEvent)
		r.Post("/{id}/tickets", h.CreateTicket)
		r.Get("/{id}/tickets", h.ListTickets)
		r.Get("/{id}/tickets/options", h.ListTicketOptions)
		r.Get("/{id}/attendees", h.ListAttendees)
		r.Get("/{id}/insights", h.EventInsights)
	})

	r.Post("/tickets/{id}/attendees", h.RegisterAttendee)

	return r
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// pathID parses the {id} route parameter. A non-integer id is a client
// error, reported before any store work happens.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// writeServiceError maps service and repository errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, repository.ErrEventNotFound):
		writeError(w, http.StatusNotFound, "event not found")
	case errors.Is(err, repository.ErrTicketNotFound):
		writeError(w, http.StatusNotFound, "ticket not found")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrConstraint):
		writeError(w, http.StatusConflict, "request violates a data constraint")
	case errors.Is(err, repository.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "database unavailable")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// ResolveUser handles POST /users/resolve
// Returns the existing user for the email, or creates one.
func (h *Handler) ResolveUser(w http.ResponseWriter, r *http.Request) {
	var req model.ResolveUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	user, err := h.users.Resolve(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// ListEvents handles GET /users/{id}/events
// Returns the owner's events, most recent date first.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	events, err := h.events.List(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// CreateEvent handles POST /events
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	event, err := h.events.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

// CreateTicket handles POST /events/{id}/tickets
func (h *Handler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	var req model.CreateTicketRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	ticket, err := h.tickets.Create(r.Context(), eventID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ticket)
}

// ListTickets handles GET /events/{id}/tickets
func (h *Handler) ListTickets(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	tickets, err := h.tickets.List(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tickets)
}

// ListTicketOptions handles GET /events/{id}/tickets/options
// Returns the lightweight {id, type, price} projection for dropdowns.
func (h *Handler) ListTicketOptions(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	options, err := h.tickets.ListOptions(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, options)
}

// RegisterAttendee handles POST /tickets/{id}/attendees
func (h *Handler) RegisterAttendee(w http.ResponseWriter, r *http.Request) {
	ticketID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ticket id")
		return
	}

	var req model.RegisterAttendeeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	reg, err := h.attendees.Register(r.Context(), ticketID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reg)
}

// ListAttendees handles GET /events/{id}/attendees?ticket_type=VIP
// Without ticket_type the listing spans every ticket type of the event.
func (h *Handler) ListAttendees(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	attendees, err := h.attendees.List(r.Context(), eventID, r.URL.Query().Get("ticket_type"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attendees)
}

// EventInsights handles GET /events/{id}/insights
// Monetary fields are null when the event has no registered attendees.
func (h *Handler) EventInsights(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	insights, err := h.events.Insights(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, insights)
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
