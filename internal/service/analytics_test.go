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

func TestAnalyticsService_Snapshot(t *testing.T) {
	api := mocks.NewMockEventsAPI(t)
	svc := NewAnalyticsService(api)

	snap := &domain.AnalyticsSnapshot{
		EventTitle:   "Go Meetup",
		Revenue:      250,
		Sold:         25,
		TotalTickets: 50,
		GuestSales:   10,
		UserSales:    15,
	}
	api.EXPECT().EventAnalytics(mock.Anything, 7).Return(snap, nil)

	got, err := svc.Snapshot(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 50, got.SoldPercent())
	assert.Equal(t, 25, got.Remaining())
}

func TestAnalyticsService_Snapshot_ForbiddenMeansNotOwner(t *testing.T) {
	api := mocks.NewMockEventsAPI(t)
	svc := NewAnalyticsService(api)

	api.EXPECT().EventAnalytics(mock.Anything, 7).
		Return(nil, &domain.APIError{StatusCode: 403, Detail: "Not authorized"})

	_, err := svc.Snapshot(context.Background(), 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestAnalyticsService_Snapshot_UnauthorizedMeansNotOwner(t *testing.T) {
	api := mocks.NewMockEventsAPI(t)
	svc := NewAnalyticsService(api)

	api.EXPECT().EventAnalytics(mock.Anything, 7).
		Return(nil, &domain.APIError{StatusCode: 401, Detail: "Not authenticated"})

	_, err := svc.Snapshot(context.Background(), 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestAnalyticsService_Snapshot_OtherErrorsPassThrough(t *testing.T) {
	api := mocks.NewMockEventsAPI(t)
	svc := NewAnalyticsService(api)

	api.EXPECT().EventAnalytics(mock.Anything, 7).Return(nil, domain.ErrAPIUnavailable)

	_, err := svc.Snapshot(context.Background(), 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAPIUnavailable)
	assert.NotErrorIs(t, err, domain.ErrNotOwner)
}
