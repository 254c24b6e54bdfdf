// Package repository implements all database queries for the event
// management system. It uses pgx directly (no ORM) for transparency
// and performance.
//
// Store failures surface as typed sentinels so callers can tell a
// connectivity loss from a constraint violation with errors.Is.
package repository

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnavailable is returned when the store cannot be reached.
var ErrUnavailable = errors.New("database unavailable")

// ErrConstraint is returned when a check or uniqueness constraint rejects a write.
var ErrConstraint = errors.New("constraint violation")

// ErrUserNotFound is returned when an event references a missing owner.
var ErrUserNotFound = errors.New("user not found")

// ErrEventNotFound is returned when a ticket references a missing event.
var ErrEventNotFound = errors.New("event not found")

// ErrTicketNotFound is returned when a registration references a missing ticket.
var ErrTicketNotFound = errors.New("ticket not found")

// PostgreSQL error codes this package distinguishes.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
	pgInvalidTextRep      = "22P02"
)

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isConnectivity(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// classify maps a raw pgx error onto the package sentinels. fkErr is the
// relation-specific sentinel reported for foreign key violations (which
// parent is missing depends on the table being written).
func classify(err error, op string, fkErr error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fkErr
		case pgUniqueViolation, pgCheckViolation, pgNotNullViolation, pgInvalidTextRep:
			return fmt.Errorf("%s: %w", op, ErrConstraint)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if isConnectivity(err) {
		return fmt.Errorf("%s: %w", op, ErrUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
