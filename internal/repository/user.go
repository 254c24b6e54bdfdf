package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/organizerly/eventmgmt/internal/model"
)

// UserRepository handles persistence for organizer identities.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetOrCreate resolves a user by unique email, inserting when absent.
//
// The insert uses ON CONFLICT DO NOTHING so two concurrent calls with
// the same unseen email cannot both insert; the loser of the race falls
// through to the select. First write wins: name and organization of an
// existing record are never updated.
func (r *UserRepository) GetOrCreate(ctx context.Context, name, email, organization string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (name, email, organization)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING user_id, name, email, organization, created_at`,
		name, email, organization,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Organization, &u.CreatedAt)
	if err == nil {
		return &u, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, classify(err, "insert user", ErrConstraint)
	}

	// The email already exists; return the record as it was first written.
	err = r.db.QueryRow(ctx,
		`SELECT user_id, name, email, organization, created_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Organization, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, classify(err, "select user", ErrConstraint)
	}
	return &u, nil
}
