package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organizerly/eventmgmt/internal/model"
	"github.com/organizerly/eventmgmt/internal/observability"
)

type fakeEventStore struct {
	created   model.Event
	createErr error

	listed  []model.EventSummary
	listErr error
	gotID   int64
}

func (f *fakeEventStore) Create(_ context.Context, e model.Event) (model.Event, error) {
	f.created = e
	if f.createErr != nil {
		return model.Event{}, f.createErr
	}
	e.ID = 1
	return e, nil
}

func (f *fakeEventStore) ListByOwner(_ context.Context, ownerID int64) ([]model.EventSummary, error) {
	f.gotID = ownerID
	return f.listed, f.listErr
}

type fakeInsightStore struct {
	insights model.EventInsights
	err      error
	gotID    int64
}

func (f *fakeInsightStore) ForEvent(_ context.Context, eventID int64) (model.EventInsights, error) {
	f.gotID = eventID
	return f.insights, f.err
}

func TestEventService_Create(t *testing.T) {
	store := &fakeEventStore{}
	svc := NewEventService(store, &fakeInsightStore{}, observability.NoopMetrics{})

	created, err := svc.Create(context.Background(), model.CreateEventRequest{
		OwnerID:     3,
		Name:        "  Launch Party ",
		Date:        "2026-11-05",
		Time:        "19:30",
		Location:    "Rooftop",
		Description: "Open bar",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Launch Party", store.created.Name)
	assert.Equal(t, time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC), store.created.Date)
	// Minute-precision times are normalized to HH:MM:SS.
	assert.Equal(t, "19:30:00", store.created.Time)
}

func TestEventService_Create_Validation(t *testing.T) {
	svc := NewEventService(&fakeEventStore{}, &fakeInsightStore{}, observability.NoopMetrics{})
	ctx := context.Background()

	valid := model.CreateEventRequest{
		OwnerID: 1, Name: "E", Date: "2026-01-01", Time: "10:00",
	}

	tests := []struct {
		name   string
		mutate func(*model.CreateEventRequest)
	}{
		{"missing name", func(r *model.CreateEventRequest) { r.Name = "  " }},
		{"missing owner", func(r *model.CreateEventRequest) { r.OwnerID = 0 }},
		{"bad date", func(r *model.CreateEventRequest) { r.Date = "05/11/2026" }},
		{"bad time", func(r *model.CreateEventRequest) { r.Time = "7pm" }},
		{"out-of-range time", func(r *model.CreateEventRequest) { r.Time = "25:00" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			_, err := svc.Create(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestEventService_List(t *testing.T) {
	store := &fakeEventStore{listed: []model.EventSummary{{ID: 9, Name: "X"}}}
	svc := NewEventService(store, &fakeInsightStore{}, observability.NoopMetrics{})

	events, err := svc.List(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(42), store.gotID)

	_, err = svc.List(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEventService_Insights(t *testing.T) {
	revenue := 40.0
	store := &fakeInsightStore{insights: model.EventInsights{
		TotalAttendees: 3,
		TotalRevenue:   &revenue,
	}}
	svc := NewEventService(&fakeEventStore{}, store, observability.NoopMetrics{})

	in, err := svc.Insights(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), store.gotID)
	assert.Equal(t, int64(3), in.TotalAttendees)
	require.NotNil(t, in.TotalRevenue)
	assert.Equal(t, 40.0, *in.TotalRevenue)

	_, err = svc.Insights(context.Background(), -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEventService_Insights_StoreError(t *testing.T) {
	boom := errors.New("db down")
	svc := NewEventService(&fakeEventStore{}, &fakeInsightStore{err: boom}, observability.NoopMetrics{})

	_, err := svc.Insights(context.Background(), 5)
	assert.ErrorIs(t, err, boom)
}
