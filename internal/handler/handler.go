package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vachprogramming/munich-event-platform/internal/domain"
	"github.com/vachprogramming/munich-event-platform/internal/handler/dto"
	"github.com/vachprogramming/munich-event-platform/internal/middleware"
	"github.com/vachprogramming/munich-event-platform/internal/session"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	List(ctx context.Context) ([]domain.Event, error)
	Get(ctx context.Context, id int) (*domain.Event, error)
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
}

type BookingSvc interface {
	Book(ctx context.Context, cmd domain.BookingCommand) (*domain.Booking, error)
	ListMine(ctx context.Context) ([]domain.Booking, error)
}

type AuthSvc interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error)
	Signup(ctx context.Context, input domain.SignupInput) (*domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

type AnalyticsSvc interface {
	Snapshot(ctx context.Context, eventID int) (*domain.AnalyticsSnapshot, error)
}

// CookieConfig describes the session cookie the handler issues and clears.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

type Handler struct {
	eventService     EventSvc
	bookingService   BookingSvc
	authService      AuthSvc
	analyticsService AnalyticsSvc
	cookie           CookieConfig
}

func NewHandler(
	eventService EventSvc,
	bookingService BookingSvc,
	authService AuthSvc,
	analyticsService AnalyticsSvc,
	cookie CookieConfig,
) *Handler {
	return &Handler{
		eventService:     eventService,
		bookingService:   bookingService,
		authService:      authService,
		analyticsService: analyticsService,
		cookie:           cookie,
	}
}

// page assembles the state every template needs: whether a token is present
// and, for display only, whose it claims to be.
func (h *Handler) page(c *ginext.Context) ginext.H {
	data := ginext.H{"LoggedIn": false}

	if v, ok := c.Get(middleware.SessionKey); ok {
		if sess, ok := v.(*domain.Session); ok {
			data["LoggedIn"] = true
			data["Email"] = session.Email(sess.Token)
		}
	}

	return data
}

// Home

func (h *Handler) Home(c *ginext.Context) {
	c.HTML(http.StatusOK, "home.html", h.page(c))
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.renderFailure(c, err)
		return
	}

	data := h.page(c)
	data["Events"] = dto.ToEventCardViews(events)

	switch {
	case c.Query("booked") == "1":
		data["Notice"] = "Booking successful! Check your email."
	case c.Query("created") == "1":
		data["Notice"] = "Event created successfully!"
	case c.Query("failed") == "1":
		data["Error"] = "Booking failed. Please try again later."
	}

	c.HTML(http.StatusOK, "events.html", data)
}

func (h *Handler) CreateEventForm(c *ginext.Context) {
	data := h.page(c)
	data["Form"] = dto.CreateEventRequest{}
	c.HTML(http.StatusOK, "create_event.html", data)
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderCreateEvent(c, req, "All fields are required and the ticket count must be positive.")
		return
	}

	date, err := req.EventDate()
	if err != nil {
		h.renderCreateEvent(c, req, "Invalid date format.")
		return
	}

	input := domain.CreateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Date:         date,
		TotalTickets: req.TotalTickets,
		Price:        req.Price,
	}

	if _, err = h.eventService.Create(c.Request.Context(), input); err != nil {
		c.Set("error", err.Error())
		h.renderCreateEvent(c, req, rejectionMessage(err, "Failed to create event"))
		return
	}

	c.Redirect(http.StatusSeeOther, "/events?created=1")
}

func (h *Handler) renderCreateEvent(c *ginext.Context, req dto.CreateEventRequest, msg string) {
	data := h.page(c)
	data["Error"] = msg
	data["Form"] = req
	c.HTML(http.StatusOK, "create_event.html", data)
}

// Bookings

// BookingForm opens the booking dialog for one event. The guest/member branch
// is decided here, from the session snapshot at this moment, and travels with
// the form; a token appearing or disappearing later does not change it.
func (h *Handler) BookingForm(c *ginext.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/events")
		return
	}

	event, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.Redirect(http.StatusSeeOther, "/events")
			return
		}
		h.renderFailure(c, err)
		return
	}

	// Sold-out events never get a booking form, so no request can be sent.
	if event.SoldOut() {
		c.Redirect(http.StatusSeeOther, "/events")
		return
	}

	path := "guest"
	if _, ok := c.Get(middleware.SessionKey); ok {
		path = "member"
	}

	data := h.page(c)
	data["Event"] = dto.ToEventCardView(event)
	data["Path"] = path
	c.HTML(http.StatusOK, "book.html", data)
}

func (h *Handler) Book(c *ginext.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/events")
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderBookingForm(c, eventID, req, "Please fill in all required fields.")
		return
	}

	cmd := domain.BookingCommand{
		EventID:    eventID,
		EventTitle: req.EventTitle,
		GuestPath:  req.GuestPath(),
		Guest: domain.GuestContact{
			Name:  req.GuestName,
			Email: req.GuestEmail,
		},
	}

	if _, err := h.bookingService.Book(c.Request.Context(), cmd); err != nil {
		c.Set("error", err.Error())

		// Transport failures close the dialog; rejections and validation
		// errors keep it open with the reason shown as-is.
		if errors.Is(err, domain.ErrAPIUnavailable) {
			c.Redirect(http.StatusSeeOther, "/events?failed=1")
			return
		}

		h.renderBookingForm(c, eventID, req, rejectionMessage(err, "Booking failed"))
		return
	}

	c.Redirect(http.StatusSeeOther, "/events?booked=1")
}

func (h *Handler) renderBookingForm(c *ginext.Context, eventID int, req dto.BookRequest, msg string) {
	data := h.page(c)
	data["Event"] = dto.EventCardView{ID: eventID, Title: req.EventTitle}
	data["Path"] = req.Path
	data["GuestName"] = req.GuestName
	data["GuestEmail"] = req.GuestEmail
	data["Error"] = msg
	c.HTML(http.StatusOK, "book.html", data)
}

// Auth

func (h *Handler) LoginForm(c *ginext.Context) {
	c.HTML(http.StatusOK, "login.html", h.page(c))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderLogin(c, "Email and password are required.")
		return
	}

	sess, err := h.authService.Login(c.Request.Context(), domain.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Set("error", err.Error())
		h.renderLogin(c, "Login failed. Check your credentials.")
		return
	}

	h.setSessionCookie(c, sess.ID)
	c.Redirect(http.StatusSeeOther, "/events")
}

func (h *Handler) renderLogin(c *ginext.Context, msg string) {
	data := h.page(c)
	data["Error"] = msg
	c.HTML(http.StatusOK, "login.html", data)
}

func (h *Handler) RegisterForm(c *ginext.Context) {
	c.HTML(http.StatusOK, "register.html", h.page(c))
}

func (h *Handler) Register(c *ginext.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderRegister(c, req, "All fields are required.")
		return
	}

	sess, err := h.authService.Signup(c.Request.Context(), domain.SignupInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		c.Set("error", err.Error())
		h.renderRegister(c, req, rejectionMessage(err, "Signup failed. Please try again."))
		return
	}

	h.setSessionCookie(c, sess.ID)
	c.Redirect(http.StatusSeeOther, "/events")
}

func (h *Handler) renderRegister(c *ginext.Context, req dto.SignupRequest, msg string) {
	data := h.page(c)
	data["Error"] = msg
	data["Email"] = req.Email
	c.HTML(http.StatusOK, "register.html", data)
}

func (h *Handler) Logout(c *ginext.Context) {
	if id, err := c.Cookie(h.cookie.Name); err == nil && id != "" {
		if err := h.authService.Logout(c.Request.Context(), id); err != nil {
			c.Set("error", err.Error())
		}
	}

	h.clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/")
}

// Profile

func (h *Handler) Profile(c *ginext.Context) {
	ctx := c.Request.Context()

	bookings, err := h.bookingService.ListMine(ctx)
	if err != nil {
		h.renderFailure(c, err)
		return
	}

	events, err := h.eventService.List(ctx)
	if err != nil {
		h.renderFailure(c, err)
		return
	}

	data := h.page(c)
	data["Bookings"] = dto.ToBookingViews(bookings)
	data["Events"] = dto.ToEventCardViews(events)

	// Analytics load on demand, one event per click. Ownership is only
	// learned from the API's answer.
	if raw := c.Query("analytics"); raw != "" {
		eventID, err := strconv.Atoi(raw)
		if err == nil {
			snap, err := h.analyticsService.Snapshot(ctx, eventID)
			switch {
			case err == nil:
				data["Analytics"] = dto.ToAnalyticsView(snap)
			case errors.Is(err, domain.ErrNotOwner):
				data["AnalyticsError"] = "You are not the owner of this event."
			default:
				c.Set("error", err.Error())
				data["AnalyticsError"] = "Could not load analytics. Please try again later."
			}
		}
	}

	c.HTML(http.StatusOK, "profile.html", data)
}

// helpers

func (h *Handler) setSessionCookie(c *ginext.Context, sessionID string) {
	c.SetCookie(h.cookie.Name, sessionID, int(h.cookie.TTL.Seconds()), "/", "", h.cookie.Secure, true)
}

func (h *Handler) clearSessionCookie(c *ginext.Context) {
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
}

// renderFailure is for page loads that cannot proceed at all.
func (h *Handler) renderFailure(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	msg := "Something went wrong. Please try again later."
	if errors.Is(err, domain.ErrAPIUnavailable) {
		msg = "The event platform is unreachable. Please try again later."
	}

	c.HTML(http.StatusBadGateway, "error.html", ginext.H{"Message": msg})
}

// rejectionMessage picks what the user sees for a failed action: the server's
// reason verbatim when there is one, the local validation message, or the
// caller's generic fallback.
func rejectionMessage(err error, fallback string) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}

	if errors.Is(err, domain.ErrValidation) {
		return strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()+": ")
	}

	return fallback
}
