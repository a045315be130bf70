package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Home(c *ginext.Context)
	ListEvents(c *ginext.Context)
	BookingForm(c *ginext.Context)
	Book(c *ginext.Context)
	LoginForm(c *ginext.Context)
	Login(c *ginext.Context)
	RegisterForm(c *ginext.Context)
	Register(c *ginext.Context)
	Logout(c *ginext.Context)
	CreateEventForm(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	Profile(c *ginext.Context)
}

// InitRouter wires the pages. The booking form and event list stay open to
// guests; creating events and the profile need a session.
func InitRouter(mode string, h Handler, requireAuth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.GET("/", h.Home)
	router.GET("/events", h.ListEvents)
	router.GET("/events/:id/book", h.BookingForm)
	router.POST("/events/:id/book", h.Book)

	router.GET("/login", h.LoginForm)
	router.POST("/login", h.Login)
	router.GET("/register", h.RegisterForm)
	router.POST("/register", h.Register)
	router.POST("/logout", h.Logout)

	private := router.Group("/", requireAuth)
	{
		private.GET("/create-event", h.CreateEventForm)
		private.POST("/create-event", h.CreateEvent)
		private.GET("/profile", h.Profile)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.LoadHTMLGlob("web/templates/*")
	router.Static("/static", "web/static")

	return router
}
