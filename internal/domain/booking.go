package domain

// Booking is read-only on this side; the status enum is owned by the server.
type Booking struct {
	ID        int
	EventID   int
	Status    string
	GuestName *string
	UserID    *int
}

// GuestContact is collected inline on the guest path and never persisted
// beyond the single booking request.
type GuestContact struct {
	Name  string
	Email string
}

// BookingCommand carries everything needed to submit one booking. GuestPath is
// decided once, when the booking form is opened, and is never re-derived from
// the session afterwards.
type BookingCommand struct {
	EventID    int
	EventTitle string
	GuestPath  bool
	Guest      GuestContact
}

// BookingRequest is the outbound payload shape. Guest fields are set only on
// the guest path; the member path lets the server derive identity from the
// bearer token.
type BookingRequest struct {
	EventID    int
	GuestName  string
	GuestEmail string
}
