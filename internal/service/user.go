package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/organizerly/eventmgmt/internal/model"
	"github.com/organizerly/eventmgmt/internal/observability"
)

// UserStore is the persistence interface the user service needs.
type UserStore interface {
	GetOrCreate(ctx context.Context, name, email, organization string) (*model.User, error)
}

// UserService resolves organizer identities.
type UserService struct {
	users   UserStore
	metrics observability.MetricsRecorder
}

// NewUserService constructs a UserService.
func NewUserService(users UserStore, metrics observability.MetricsRecorder) *UserService {
	return &UserService{users: users, metrics: metrics}
}

// Resolve looks up a user by email, creating the record when absent.
// Resolving an existing email returns the record as first written,
// ignoring the name and organization supplied on later calls.
func (s *UserService) Resolve(ctx context.Context, req model.ResolveUserRequest) (*model.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Organization = strings.TrimSpace(req.Organization)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !isValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: email is not a valid address", ErrInvalidInput)
	}

	user, err := s.users.GetOrCreate(ctx, req.Name, req.Email, req.Organization)
	s.metrics.RecordResolve(ctx, err)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	return user, nil
}
