package service

import (
	"context"
	"fmt"

	"github.com/vachprogramming/munich-event-platform/internal/domain"
	"github.com/vachprogramming/munich-event-platform/internal/service/ports"
)

type EventService struct {
	api ports.EventsAPI
}

func NewEventService(api ports.EventsAPI) *EventService {
	return &EventService{api: api}
}

func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.api.ListEvents(ctx)
}

// Get finds one event in the full collection. The API exposes no single-event
// read, so this costs a list fetch — one snapshot per page load either way.
func (s *EventService) Get(ctx context.Context, id int) (*domain.Event, error) {
	events, err := s.api.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	for i := range events {
		if events[i].ID == id {
			return &events[i], nil
		}
	}

	return nil, domain.ErrEventNotFound
}

// Create forwards the event as-is. Business validation (positive ticket
// counts, dates) is the platform API's responsibility; the handler layer only
// coerces types.
func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	event, err := s.api.CreateEvent(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}
