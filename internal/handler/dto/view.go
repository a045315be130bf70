package dto

import (
	"fmt"

	"github.com/vachprogramming/munich-event-platform/internal/domain"
)

// Scarcity tiers are a presentation hint only, not an inventory guarantee.
const (
	ScarcityUrgent  = "urgent"
	ScarcityWarning = "warning"
	ScarcityNormal  = "normal"
)

type EventCardView struct {
	ID               int
	Title            string
	Description      string
	Location         string
	Date             string
	AvailableTickets int
	PriceLabel       string
	SoldOut          bool
	Scarcity         string
}

func ToEventCardView(e *domain.Event) EventCardView {
	scarcity := ScarcityNormal
	switch {
	case e.AvailableTickets < 5:
		scarcity = ScarcityUrgent
	case e.AvailableTickets < 20:
		scarcity = ScarcityWarning
	}

	price := "FREE"
	if e.Price > 0 {
		price = fmt.Sprintf("€%.2f", e.Price)
	}

	return EventCardView{
		ID:               e.ID,
		Title:            e.Title,
		Description:      e.Description,
		Location:         e.Location,
		Date:             e.Date.Format("Mon, Jan 2 15:04"),
		AvailableTickets: e.AvailableTickets,
		PriceLabel:       price,
		SoldOut:          e.SoldOut(),
		Scarcity:         scarcity,
	}
}

func ToEventCardViews(events []domain.Event) []EventCardView {
	views := make([]EventCardView, 0, len(events))
	for i := range events {
		views = append(views, ToEventCardView(&events[i]))
	}
	return views
}

type BookingView struct {
	ID      int
	EventID int
	Status  string
}

func ToBookingViews(bookings []domain.Booking) []BookingView {
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, BookingView{ID: b.ID, EventID: b.EventID, Status: b.Status})
	}
	return views
}

// AnalyticsView feeds the server-rendered doughnut charts. The percentages
// map straight onto SVG stroke dashes with pathLength 100.
type AnalyticsView struct {
	EventTitle   string
	Revenue      string
	Sold         int
	TotalTickets int
	Remaining    int
	SoldPercent  int
	GuestSales   int
	UserSales    int
	UserPercent  int
	HasSales     bool
}

func ToAnalyticsView(a *domain.AnalyticsSnapshot) AnalyticsView {
	userPercent := 0
	if a.Sold > 0 {
		userPercent = int(float64(a.UserSales)/float64(a.Sold)*100 + 0.5)
	}

	return AnalyticsView{
		EventTitle:   a.EventTitle,
		Revenue:      fmt.Sprintf("€%.2f", a.Revenue),
		Sold:         a.Sold,
		TotalTickets: a.TotalTickets,
		Remaining:    a.Remaining(),
		SoldPercent:  a.SoldPercent(),
		GuestSales:   a.GuestSales,
		UserSales:    a.UserSales,
		UserPercent:  userPercent,
		HasSales:     a.Sold > 0,
	}
}
