package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/organizerly/eventmgmt/internal/model"
)

// TicketRepository handles persistence for ticket types.
type TicketRepository struct {
	db *pgxpool.Pool
}

// NewTicketRepository constructs a TicketRepository.
func NewTicketRepository(db *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{db: db}
}

// Create inserts a ticket type under an existing event.
// A missing event surfaces as ErrEventNotFound; a negative price or
// quantity is rejected by the store's check constraints.
func (r *TicketRepository) Create(ctx context.Context, t model.Ticket) (model.Ticket, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO tickets (event_id, ticket_type, price, quantity_available)
		 VALUES ($1, $2, $3, $4)
		 RETURNING ticket_id`,
		t.EventID, t.Type, t.Price, t.QuantityAvailable,
	).Scan(&t.ID)
	if err != nil {
		return model.Ticket{}, classify(err, "insert ticket", ErrEventNotFound)
	}
	return t, nil
}

// ListByEvent returns every ticket type of an event in insertion order.
func (r *TicketRepository) ListByEvent(ctx context.Context, eventID int64) ([]model.Ticket, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ticket_id, event_id, ticket_type, price, quantity_available
		 FROM tickets
		 WHERE event_id = $1
		 ORDER BY ticket_id ASC`,
		eventID,
	)
	if err != nil {
		return nil, classify(err, "list tickets", ErrEventNotFound)
	}
	defer rows.Close()

	tickets := []model.Ticket{}
	for rows.Next() {
		var t model.Ticket
		if err := rows.Scan(&t.ID, &t.EventID, &t.Type, &t.Price, &t.QuantityAvailable); err != nil {
			return nil, classify(err, "scan ticket", ErrEventNotFound)
		}
		tickets = append(tickets, t)
	}
	if rows.Err() != nil {
		return nil, classify(rows.Err(), "iterate tickets", ErrEventNotFound)
	}
	return tickets, nil
}

// ListOptions returns the {id, type, price} projection used to build
// selection menus, without carrying quantity into UI selection logic.
func (r *TicketRepository) ListOptions(ctx context.Context, eventID int64) ([]model.TicketOption, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ticket_id, ticket_type, price
		 FROM tickets
		 WHERE event_id = $1
		 ORDER BY ticket_id ASC`,
		eventID,
	)
	if err != nil {
		return nil, classify(err, "list ticket options", ErrEventNotFound)
	}
	defer rows.Close()

	options := []model.TicketOption{}
	for rows.Next() {
		var o model.TicketOption
		if err := rows.Scan(&o.ID, &o.Type, &o.Price); err != nil {
			return nil, classify(err, "scan ticket option", ErrEventNotFound)
		}
		options = append(options, o)
	}
	if rows.Err() != nil {
		return nil, classify(rows.Err(), "iterate ticket options", ErrEventNotFound)
	}
	return options, nil
}
