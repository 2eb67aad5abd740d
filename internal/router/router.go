package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateConference(c *ginext.Context)
	GetConference(c *ginext.Context)
	ListConferences(c *ginext.Context)
	BookConference(c *ginext.Context)
	GetBookingStatus(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Conferences
		api.POST("/conferences", h.CreateConference)
		api.GET("/conferences", h.ListConferences)
		api.GET("/conferences/:name", h.GetConference)
		api.POST("/conferences/:name/book", h.BookConference)

		// Bookings
		api.GET("/bookings/:id/status", h.GetBookingStatus)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.DELETE("/bookings/:id", h.CancelBooking)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
