package domain

import "time"

// Event is a bookable activity owned by the platform API. The front-end never
// mutates it locally; ticket counts change only through a re-fetch.
type Event struct {
	ID               int
	Title            string
	Description      string
	Location         string
	Date             time.Time
	TotalTickets     int
	AvailableTickets int
	Price            float64
	OwnerID          *int
}

func (e *Event) SoldOut() bool {
	return e.AvailableTickets == 0
}

type CreateEventInput struct {
	Title        string
	Description  string
	Location     string
	Date         time.Time
	TotalTickets int
	Price        float64
}
