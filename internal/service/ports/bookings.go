package ports

import (
	"context"

	"github.com/vachprogramming/munich-event-platform/internal/domain"
)

type BookingsAPI interface {
	CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error)
	MyBookings(ctx context.Context) ([]domain.Booking, error)
}
