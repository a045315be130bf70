package apiclient

import (
	"context"
	"fmt"

	"github.com/vachprogramming/munich-event-platform/internal/domain"
)

type bookingRecord struct {
	ID        int     `json:"id"`
	EventID   int     `json:"event_id"`
	Status    string  `json:"status"`
	GuestName *string `json:"guest_name"`
	UserID    *int    `json:"user_id"`
}

func (r bookingRecord) toDomain() domain.Booking {
	return domain.Booking{
		ID:        r.ID,
		EventID:   r.EventID,
		Status:    r.Status,
		GuestName: r.GuestName,
		UserID:    r.UserID,
	}
}

type createBookingPayload struct {
	EventID    int    `json:"event_id"`
	GuestName  string `json:"guest_name,omitempty"`
	GuestEmail string `json:"guest_email,omitempty"`
}

// CreateBooking submits one booking. Guest fields ride along only when set;
// on the member path the server derives identity from the bearer token.
func (c *Client) CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error) {
	payload := createBookingPayload{
		EventID:    req.EventID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
	}

	var record bookingRecord
	if err := c.postJSON(ctx, "/bookings/", payload, &record); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	booking := record.toDomain()
	return &booking, nil
}

// MyBookings fetches the caller's bookings, identified by the bearer token.
func (c *Client) MyBookings(ctx context.Context) ([]domain.Booking, error) {
	var records []bookingRecord
	if err := c.getJSON(ctx, "/bookings/me", &records); err != nil {
		return nil, fmt.Errorf("my bookings: %w", err)
	}

	bookings := make([]domain.Booking, 0, len(records))
	for _, r := range records {
		bookings = append(bookings, r.toDomain())
	}

	return bookings, nil
}
