package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organizerly/eventmgmt/internal/model"
)

type fakeTicketStore struct {
	created   model.Ticket
	createErr error

	tickets []model.Ticket
	options []model.TicketOption
	gotID   int64
}

func (f *fakeTicketStore) Create(_ context.Context, t model.Ticket) (model.Ticket, error) {
	f.created = t
	if f.createErr != nil {
		return model.Ticket{}, f.createErr
	}
	t.ID = 11
	return t, nil
}

func (f *fakeTicketStore) ListByEvent(_ context.Context, eventID int64) ([]model.Ticket, error) {
	f.gotID = eventID
	return f.tickets, nil
}

func (f *fakeTicketStore) ListOptions(_ context.Context, eventID int64) ([]model.TicketOption, error) {
	f.gotID = eventID
	return f.options, nil
}

func TestTicketService_Create(t *testing.T) {
	store := &fakeTicketStore{}
	svc := NewTicketService(store)

	created, err := svc.Create(context.Background(), 4, model.CreateTicketRequest{
		Type:              " Early Bird ",
		Price:             15.50,
		QuantityAvailable: 200,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.Equal(t, int64(4), store.created.EventID)
	assert.Equal(t, "Early Bird", store.created.Type)

	// Free tickets with zero stock are legal.
	_, err = svc.Create(context.Background(), 4, model.CreateTicketRequest{
		Type: "Comp", Price: 0, QuantityAvailable: 0,
	})
	assert.NoError(t, err)
}

func TestTicketService_Create_Validation(t *testing.T) {
	svc := NewTicketService(&fakeTicketStore{})
	ctx := context.Background()

	_, err := svc.Create(ctx, 0, model.CreateTicketRequest{Type: "X", Price: 1, QuantityAvailable: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, 1, model.CreateTicketRequest{Type: "  ", Price: 1, QuantityAvailable: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, 1, model.CreateTicketRequest{Type: "X", Price: -0.01, QuantityAvailable: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, 1, model.CreateTicketRequest{Type: "X", Price: 1, QuantityAvailable: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTicketService_ListAndOptions(t *testing.T) {
	store := &fakeTicketStore{
		tickets: []model.Ticket{{ID: 1, Type: "General"}},
		options: []model.TicketOption{{ID: 1, Type: "General", Price: 10}},
	}
	svc := NewTicketService(store)
	ctx := context.Background()

	tickets, err := svc.List(ctx, 8)
	require.NoError(t, err)
	assert.Len(t, tickets, 1)
	assert.Equal(t, int64(8), store.gotID)

	options, err := svc.ListOptions(ctx, 9)
	require.NoError(t, err)
	assert.Len(t, options, 1)
	assert.Equal(t, int64(9), store.gotID)

	_, err = svc.List(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.ListOptions(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
