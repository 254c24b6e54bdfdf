package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/organizerly/eventmgmt/internal/model"
)

// EventRepository handles persistence for events.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event and returns it with the server-assigned id.
func (r *EventRepository) Create(ctx context.Context, e model.Event) (model.Event, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO events (user_id, event_name, event_date, event_time, location, description)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING event_id, created_at`,
		e.OwnerID, e.Name, e.Date, e.Time, e.Location, e.Description,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return model.Event{}, classify(err, "insert event", ErrUserNotFound)
	}
	return e, nil
}

// ListByOwner returns the owner's events, most recent date first.
// An owner with no events gets an empty slice, not an error.
func (r *EventRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.EventSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT event_id, event_name, event_date, event_time::text, location
		 FROM events
		 WHERE user_id = $1
		 ORDER BY event_date DESC`,
		ownerID,
	)
	if err != nil {
		return nil, classify(err, "list events", ErrUserNotFound)
	}
	defer rows.Close()

	events := []model.EventSummary{}
	for rows.Next() {
		var e model.EventSummary
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.Time, &e.Location); err != nil {
			return nil, classify(err, "scan event", ErrUserNotFound)
		}
		events = append(events, e)
	}
	if rows.Err() != nil {
		return nil, classify(rows.Err(), "iterate events", ErrUserNotFound)
	}
	return events, nil
}
