package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organizerly/eventmgmt/internal/model"
	"github.com/organizerly/eventmgmt/internal/repository"
	"github.com/organizerly/eventmgmt/internal/testutil"
)

func TestTicketRepository_CreateAndList(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	ownerID := testutil.InsertUser(t, ctx, pool, "Owner", "owner@example.com")
	eventID := testutil.InsertEvent(t, ctx, pool, ownerID, "Expo", "2026-05-01")

	repo := repository.NewTicketRepository(pool)

	general, err := repo.Create(ctx, model.Ticket{
		EventID: eventID, Type: "General", Price: 25.50, QuantityAvailable: 100,
	})
	require.NoError(t, err)
	assert.NotZero(t, general.ID)

	vip, err := repo.Create(ctx, model.Ticket{
		EventID: eventID, Type: "VIP", Price: 99, QuantityAvailable: 10,
	})
	require.NoError(t, err)

	// Insertion order preserved.
	tickets, err := repo.ListByEvent(ctx, eventID)
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, general.ID, tickets[0].ID)
	assert.Equal(t, "General", tickets[0].Type)
	assert.Equal(t, 25.50, tickets[0].Price)
	assert.Equal(t, 100, tickets[0].QuantityAvailable)
	assert.Equal(t, vip.ID, tickets[1].ID)
}

func TestTicketRepository_Create_UnknownEvent(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	repo := repository.NewTicketRepository(pool)
	_, err := repo.Create(ctx, model.Ticket{
		EventID: 424242, Type: "General", Price: 10, QuantityAvailable: 5,
	})
	assert.ErrorIs(t, err, repository.ErrEventNotFound)

	// The failed insert left the table unchanged.
	var count int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM tickets`).Scan(&count))
	assert.Zero(t, count)
}

func TestTicketRepository_Create_NegativeQuantityRejected(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	ownerID := testutil.InsertUser(t, ctx, pool, "Owner", "owner@example.com")
	eventID := testutil.InsertEvent(t, ctx, pool, ownerID, "Expo", "2026-05-01")

	_, err := repository.NewTicketRepository(pool).Create(ctx, model.Ticket{
		EventID: eventID, Type: "Broken", Price: 10, QuantityAvailable: -1,
	})
	assert.ErrorIs(t, err, repository.ErrConstraint)
}

func TestTicketRepository_ListOptions(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	ownerID := testutil.InsertUser(t, ctx, pool, "Owner", "owner@example.com")
	eventID := testutil.InsertEvent(t, ctx, pool, ownerID, "Expo", "2026-05-01")
	testutil.InsertTicket(t, ctx, pool, eventID, "General", 25, 100)
	testutil.InsertTicket(t, ctx, pool, eventID, "VIP", 99, 10)

	options, err := repository.NewTicketRepository(pool).ListOptions(ctx, eventID)
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, "General", options[0].Type)
	assert.Equal(t, 25.0, options[0].Price)
	assert.Equal(t, "VIP", options[1].Type)

	empty, err := repository.NewTicketRepository(pool).ListOptions(ctx, eventID+1000)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
