package ports

import (
	"context"

	"github.com/vachprogramming/munich-event-platform/internal/domain"
)

type EventsAPI interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	EventAnalytics(ctx context.Context, eventID int) (*domain.AnalyticsSnapshot, error)
}
