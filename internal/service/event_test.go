package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vachprogramming/munich-event-platform/internal/domain"
	"github.com/vachprogramming/munich-event-platform/internal/service/ports/mocks"
)

func TestEventService_Get_FindsEvent(t *testing.T) {
	api := mocks.NewMockEventsAPI(t)
	svc := NewEventService(api)

	events := []domain.Event{
		{ID: 1, Title: "Go Meetup"},
		{ID: 2, Title: "Hackathon"},
	}
	api.EXPECT().ListEvents(mock.Anything).Return(events, nil)

	event, err := svc.Get(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, "Hackathon", event.Title)
}

func TestEventService_Get_NotFound(t *testing.T) {
	api := mocks.NewMockEventsAPI(t)
	svc := NewEventService(api)

	api.EXPECT().ListEvents(mock.Anything).Return([]domain.Event{{ID: 1}}, nil)

	_, err := svc.Get(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Get_ListFails(t *testing.T) {
	api := mocks.NewMockEventsAPI(t)
	svc := NewEventService(api)

	api.EXPECT().ListEvents(mock.Anything).Return(nil, domain.ErrAPIUnavailable)

	_, err := svc.Get(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAPIUnavailable)
}

func TestEventService_Create_Forwards(t *testing.T) {
	api := mocks.NewMockEventsAPI(t)
	svc := NewEventService(api)

	input := domain.CreateEventInput{Title: "Go Meetup", TotalTickets: 50}
	api.EXPECT().CreateEvent(mock.Anything, input).Return(&domain.Event{ID: 5, Title: "Go Meetup"}, nil)

	event, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 5, event.ID)
}
