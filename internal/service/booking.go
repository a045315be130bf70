package service

import (
	"context"
	"fmt"

	"github.com/vachprogramming/munich-event-platform/internal/domain"
	"github.com/vachprogramming/munich-event-platform/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	api      ports.BookingsAPI
	notifier ports.BookingNotifier
	logger   logger.Logger
}

func NewBookingService(
	api ports.BookingsAPI,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		api:      api,
		notifier: notifier,
		logger:   logger,
	}
}

// Book submits the booking the command describes. The guest/member branch was
// fixed when the form opened; this method only honors it. Guest bookings must
// carry contact details, member bookings must not.
func (s *BookingService) Book(ctx context.Context, cmd domain.BookingCommand) (*domain.Booking, error) {
	req := domain.BookingRequest{EventID: cmd.EventID}

	if cmd.GuestPath {
		if cmd.Guest.Name == "" || cmd.Guest.Email == "" {
			return nil, fmt.Errorf("%w: guest name and email are required", domain.ErrValidation)
		}
		req.GuestName = cmd.Guest.Name
		req.GuestEmail = cmd.Guest.Email
	}

	booking, err := s.api.CreateBooking(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("book event: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.Int("booking_id", booking.ID),
		logger.Int("event_id", booking.EventID),
		logger.Any("guest", cmd.GuestPath),
	)

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), cmd.EventTitle, cmd.GuestPath)

	return booking, nil
}

func (s *BookingService) ListMine(ctx context.Context) ([]domain.Booking, error) {
	return s.api.MyBookings(ctx)
}
