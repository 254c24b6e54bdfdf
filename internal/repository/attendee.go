package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/organizerly/eventmgmt/internal/model"
)

// AttendeeRepository handles persistence for attendee registrations.
type AttendeeRepository struct {
	db *pgxpool.Pool
}

// NewAttendeeRepository constructs an AttendeeRepository.
func NewAttendeeRepository(db *pgxpool.Pool) *AttendeeRepository {
	return &AttendeeRepository{db: db}
}

// Register inserts an attendee against a ticket and returns the
// registration with its confirmation code and store-assigned timestamp.
//
// No capacity check is made against quantity_available: registrations
// can exceed the advertised quantity. Attendee email is not unique; the
// same person may register repeatedly, including across ticket types.
func (r *AttendeeRepository) Register(ctx context.Context, ticketID int64, name, email string) (model.Registration, error) {
	reg := model.Registration{
		TicketID:         ticketID,
		Name:             name,
		Email:            email,
		ConfirmationCode: uuid.New().String(),
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO attendees (ticket_id, attendee_name, attendee_email, confirmation_code)
		 VALUES ($1, $2, $3, $4)
		 RETURNING attendee_id, registration_date`,
		reg.TicketID, reg.Name, reg.Email, reg.ConfirmationCode,
	).Scan(&reg.ID, &reg.RegisteredAt)
	if err != nil {
		return model.Registration{}, classify(err, "insert attendee", ErrTicketNotFound)
	}
	return reg, nil
}

// ListByEvent returns the attendees of an event joined to their ticket
// type, oldest registration first. A non-empty ticketType narrows the
// listing to exact, case-sensitive matches; the empty string returns
// attendees across all ticket types of the event.
func (r *AttendeeRepository) ListByEvent(ctx context.Context, eventID int64, ticketType string) ([]model.Attendee, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.attendee_name, a.attendee_email, t.ticket_type, a.registration_date
		 FROM attendees a
		 JOIN tickets t ON a.ticket_id = t.ticket_id
		 WHERE t.event_id = $1
		   AND ($2 = '' OR t.ticket_type = $2)
		 ORDER BY a.registration_date ASC, a.attendee_id ASC`,
		eventID, ticketType,
	)
	if err != nil {
		return nil, classify(err, "list attendees", ErrEventNotFound)
	}
	defer rows.Close()

	attendees := []model.Attendee{}
	for rows.Next() {
		var a model.Attendee
		if err := rows.Scan(&a.Name, &a.Email, &a.TicketType, &a.RegisteredAt); err != nil {
			return nil, classify(err, "scan attendee", ErrEventNotFound)
		}
		attendees = append(attendees, a)
	}
	if rows.Err() != nil {
		return nil, classify(rows.Err(), "iterate attendees", ErrEventNotFound)
	}
	return attendees, nil
}
