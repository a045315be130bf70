package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/vachprogramming/munich-event-platform/internal/domain"
	"github.com/vachprogramming/munich-event-platform/internal/service/ports"
)

type AnalyticsService struct {
	api ports.EventsAPI
}

func NewAnalyticsService(api ports.EventsAPI) *AnalyticsService {
	return &AnalyticsService{api: api}
}

// Snapshot fetches the sales aggregate for one event. Ownership is only
// knowable by asking: an authorization rejection from the API means the caller
// does not own the event.
func (s *AnalyticsService) Snapshot(ctx context.Context, eventID int) (*domain.AnalyticsSnapshot, error) {
	snap, err := s.api.EventAnalytics(ctx, eventID)
	if err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) &&
			(apiErr.StatusCode == http.StatusForbidden || apiErr.StatusCode == http.StatusUnauthorized) {
			return nil, domain.ErrNotOwner
		}
		return nil, err
	}

	return snap, nil
}
