package ports

import "context"

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, eventTitle string, guest bool)
}
