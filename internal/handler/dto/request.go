package dto

import (
	"fmt"
	"time"
)

type LoginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type SignupRequest struct {
	Email           string `form:"email" binding:"required"`
	Password        string `form:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" binding:"required"`
}

type CreateEventRequest struct {
	Title        string  `form:"title" binding:"required"`
	Description  string  `form:"description" binding:"required"`
	Location     string  `form:"location" binding:"required"`
	Date         string  `form:"date" binding:"required"`
	TotalTickets int     `form:"total_tickets" binding:"required,gt=0"`
	Price        float64 `form:"price" binding:"gte=0"`
}

// EventDate coerces the browser's datetime-local value (or a full RFC 3339
// stamp) into a real timestamp. Anything beyond type coercion is the API's
// job.
func (r CreateEventRequest) EventDate() (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04", time.RFC3339} {
		t, err := time.Parse(layout, r.Date)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", r.Date)
}

// BookRequest is the booking form submission. Path is the branch fixed when
// the form was opened ("guest" or "member"); it is submitted back rather than
// re-derived from the session.
type BookRequest struct {
	Path       string `form:"path" binding:"required,oneof=guest member"`
	EventTitle string `form:"event_title"`
	GuestName  string `form:"guest_name"`
	GuestEmail string `form:"guest_email"`
}

func (r BookRequest) GuestPath() bool {
	return r.Path == "guest"
}
