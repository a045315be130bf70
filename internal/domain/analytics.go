package domain

// AnalyticsSnapshot is the per-event sales aggregate returned by
// GET /events/{id}/analytics. Fetched on demand, held only in the viewing
// page's transient state.
type AnalyticsSnapshot struct {
	EventTitle   string
	Revenue      float64
	Sold         int
	TotalTickets int
	GuestSales   int
	UserSales    int
}

func (a *AnalyticsSnapshot) Remaining() int {
	return a.TotalTickets - a.Sold
}

// SoldPercent is a rounded share of sold tickets, 0 when the total is unknown.
func (a *AnalyticsSnapshot) SoldPercent() int {
	if a.TotalTickets <= 0 {
		return 0
	}
	return int(float64(a.Sold)/float64(a.TotalTickets)*100 + 0.5)
}
