package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vachprogramming/munich-event-platform/internal/domain"
	"github.com/vachprogramming/munich-event-platform/internal/session"
)

func TestClient_InjectsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	ctx := session.WithToken(context.Background(), "jwt-token")
	_, err := c.ListEvents(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Bearer jwt-token", gotAuth)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	_, err := c.ListEvents(context.Background())

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_RejectionCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Event is sold out"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	_, err := c.CreateBooking(context.Background(), domain.BookingRequest{EventID: 7})

	require.Error(t, err)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Event is sold out", apiErr.Detail)
}

func TestClient_RejectionWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	_, err := c.ListEvents(context.Background())

	require.Error(t, err)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, apiErr.Detail)
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, time.Second)

	_, err := c.ListEvents(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAPIUnavailable)
}

func TestClient_ListEvents_AcceptsNaiveTimestamps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id":1,"title":"Go Meetup","date":"2026-10-01T18:00:00","total_tickets":50,"available_tickets":30,"price":10},
			{"id":2,"title":"Hackathon","date":"2026-11-05T09:00:00Z","total_tickets":100,"available_tickets":0,"price":0}
		]`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	events, err := c.ListEvents(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 2026, events[0].Date.Year())
	assert.Equal(t, time.October, events[0].Date.Month())
	assert.True(t, events[1].SoldOut())
}

func TestClient_CreateBooking_GuestFieldsOmittedWhenEmpty(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"id":1,"event_id":7,"status":"confirmed"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	_, err := c.CreateBooking(context.Background(), domain.BookingRequest{EventID: 7})

	require.NoError(t, err)
	assert.NotContains(t, body, "guest_name")
	assert.NotContains(t, body, "guest_email")
}

func TestClient_CreateBooking_GuestFieldsSent(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"id":1,"event_id":7,"status":"confirmed","guest_name":"Max Weber"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	booking, err := c.CreateBooking(context.Background(), domain.BookingRequest{
		EventID:    7,
		GuestName:  "Max Weber",
		GuestEmail: "max@tum.de",
	})

	require.NoError(t, err)
	assert.Equal(t, "Max Weber", body["guest_name"])
	assert.Equal(t, "max@tum.de", body["guest_email"])
	require.NotNil(t, booking.GuestName)
	assert.Equal(t, "Max Weber", *booking.GuestName)
}

func TestClient_Token_FormEncoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/token", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "alice@tum.de", r.PostForm.Get("username"))
		assert.Equal(t, "secret123", r.PostForm.Get("password"))
		_, _ = w.Write([]byte(`{"access_token":"jwt-token","token_type":"bearer"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	token, err := c.Token(context.Background(), domain.Credentials{
		Email:    "alice@tum.de",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
}

func TestClient_Token_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Incorrect email or password"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	_, err := c.Token(context.Background(), domain.Credentials{
		Email:    "alice@tum.de",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestClient_EventAnalytics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/7/analytics", r.URL.Path)
		_, _ = w.Write([]byte(`{"event_title":"Go Meetup","revenue":250.0,"sold":25,"total_tickets":50,"guest_sales":10,"user_sales":15}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	snap, err := c.EventAnalytics(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Go Meetup", snap.EventTitle)
	assert.Equal(t, 25, snap.Sold)
	assert.Equal(t, 10, snap.GuestSales)
}
