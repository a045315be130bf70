package apiclient

import (
	"context"
	"fmt"
	"time"

	"github.com/vachprogramming/munich-event-platform/internal/domain"
)

type eventRecord struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Location         string  `json:"location"`
	Date             apiTime `json:"date"`
	TotalTickets     int     `json:"total_tickets"`
	AvailableTickets int     `json:"available_tickets"`
	Price            float64 `json:"price"`
	OwnerID          *int    `json:"owner_id"`
}

func (r eventRecord) toDomain() domain.Event {
	return domain.Event{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		Location:         r.Location,
		Date:             r.Date.Time,
		TotalTickets:     r.TotalTickets,
		AvailableTickets: r.AvailableTickets,
		Price:            r.Price,
		OwnerID:          r.OwnerID,
	}
}

// ListEvents fetches the full event collection. One snapshot per page load;
// no pagination or caching.
func (c *Client) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var records []eventRecord
	if err := c.getJSON(ctx, "/events/", &records); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	events := make([]domain.Event, 0, len(records))
	for _, r := range records {
		events = append(events, r.toDomain())
	}

	return events, nil
}

type createEventPayload struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	Date         string  `json:"date"`
	TotalTickets int     `json:"total_tickets"`
	Price        float64 `json:"price"`
}

func (c *Client) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	payload := createEventPayload{
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		Date:         input.Date.UTC().Format(time.RFC3339),
		TotalTickets: input.TotalTickets,
		Price:        input.Price,
	}

	var record eventRecord
	if err := c.postJSON(ctx, "/events/", payload, &record); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	event := record.toDomain()
	return &event, nil
}

type analyticsRecord struct {
	EventTitle   string  `json:"event_title"`
	Revenue      float64 `json:"revenue"`
	Sold         int     `json:"sold"`
	TotalTickets int     `json:"total_tickets"`
	GuestSales   int     `json:"guest_sales"`
	UserSales    int     `json:"user_sales"`
}

// EventAnalytics fetches the per-event sales snapshot. The API rejects the
// call when the bearer token does not belong to the event's owner.
func (c *Client) EventAnalytics(ctx context.Context, eventID int) (*domain.AnalyticsSnapshot, error) {
	var record analyticsRecord
	if err := c.getJSON(ctx, fmt.Sprintf("/events/%d/analytics", eventID), &record); err != nil {
		return nil, fmt.Errorf("event analytics: %w", err)
	}

	return &domain.AnalyticsSnapshot{
		EventTitle:   record.EventTitle,
		Revenue:      record.Revenue,
		Sold:         record.Sold,
		TotalTickets: record.TotalTickets,
		GuestSales:   record.GuestSales,
		UserSales:    record.UserSales,
	}, nil
}
