package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/organizerly/eventmgmt/internal/model"
)

// InsightRepository computes per-event aggregate statistics.
type InsightRepository struct {
	db *pgxpool.Pool
}

// NewInsightRepository constructs an InsightRepository.
func NewInsightRepository(db *pgxpool.Pool) *InsightRepository {
	return &InsightRepository{db: db}
}

// ForEvent computes an event's summary statistics in a single query.
//
// Revenue is attendee-weighted: it sums the ticket price once per
// registered attendee, never price times quantity. Min/max/avg price
// run over the same join, so tickets with zero registrations do not
// contribute and the three fields come back NULL for an event with no
// attendees. The tickets-available total is a separate subquery over
// every ticket of the event, deliberately unfiltered by the join.
func (r *InsightRepository) ForEvent(ctx context.Context, eventID int64) (model.EventInsights, error) {
	var in model.EventInsights
	err := r.db.QueryRow(ctx,
		`SELECT
			COUNT(a.attendee_id),
			SUM(t.price),
			MIN(t.price),
			MAX(t.price),
			AVG(t.price),
			COALESCE((SELECT SUM(quantity_available) FROM tickets WHERE event_id = $1), 0)
		 FROM attendees a
		 JOIN tickets t ON a.ticket_id = t.ticket_id
		 WHERE t.event_id = $1`,
		eventID,
	).Scan(
		&in.TotalAttendees,
		&in.TotalRevenue,
		&in.MinTicketPrice,
		&in.MaxTicketPrice,
		&in.AvgTicketPrice,
		&in.TotalTicketsAvailable,
	)
	if err != nil {
		return model.EventInsights{}, classify(err, "event insights", ErrEventNotFound)
	}
	return in, nil
}
