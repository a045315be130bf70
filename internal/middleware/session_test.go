package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/vachprogramming/munich-event-platform/internal/domain"
	"github.com/vachprogramming/munich-event-platform/internal/middleware/mocks"
	"github.com/vachprogramming/munich-event-platform/internal/session"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestLoadSession_InjectsTokenIntoRequestContext(t *testing.T) {
	resolver := mocks.NewMockSessionResolver(t)
	log := newTestLogger(t)

	sess := &domain.Session{
		ID:        "s1",
		Token:     "jwt-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	resolver.EXPECT().Resolve(mock.Anything, "s1").Return(sess, nil)

	var gotToken string
	var hadSession bool

	r := ginext.New("test")
	r.Use(LoadSession("mep_session", resolver, log))
	r.GET("/", func(c *ginext.Context) {
		_, hadSession = c.Get(SessionKey)
		gotToken, _ = session.Token(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "mep_session", Value: "s1"})
	r.ServeHTTP(w, req)

	assert.True(t, hadSession)
	assert.Equal(t, "jwt-token", gotToken)
}

func TestLoadSession_NoCookieMeansGuest(t *testing.T) {
	resolver := mocks.NewMockSessionResolver(t)
	log := newTestLogger(t)

	var hadSession, hadToken bool

	r := ginext.New("test")
	r.Use(LoadSession("mep_session", resolver, log))
	r.GET("/", func(c *ginext.Context) {
		_, hadSession = c.Get(SessionKey)
		_, hadToken = session.Token(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, hadSession)
	assert.False(t, hadToken)
	resolver.AssertNotCalled(t, "Resolve")
}

func TestLoadSession_StaleCookieMeansGuest(t *testing.T) {
	resolver := mocks.NewMockSessionResolver(t)
	log := newTestLogger(t)

	resolver.EXPECT().Resolve(mock.Anything, "gone").Return(nil, domain.ErrSessionNotFound)

	var hadSession bool

	r := ginext.New("test")
	r.Use(LoadSession("mep_session", resolver, log))
	r.GET("/", func(c *ginext.Context) {
		_, hadSession = c.Get(SessionKey)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "mep_session", Value: "gone"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, hadSession)
}

func TestRequireAuth_RedirectsWithoutSession(t *testing.T) {
	r := ginext.New("test")
	r.GET("/private", RequireAuth(), func(c *ginext.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireAuth_PassesWithSession(t *testing.T) {
	r := ginext.New("test")
	r.Use(func(c *ginext.Context) {
		c.Set(SessionKey, &domain.Session{ID: "s1"})
		c.Next()
	})
	r.GET("/private", RequireAuth(), func(c *ginext.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
