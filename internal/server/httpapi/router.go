// Package httpapi exposes the booking backend over REST. It owns bearer
// token extraction, request binding, and the mapping from the shared error
// taxonomy to HTTP status codes; all business rules live in the services.
package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stayhub-dev/stayhub/internal/common"
	"github.com/stayhub-dev/stayhub/internal/logging"
	"github.com/stayhub-dev/stayhub/internal/server/auth"
	"github.com/stayhub-dev/stayhub/internal/server/bookings"
	"github.com/stayhub-dev/stayhub/internal/server/rooms"
	"github.com/stayhub-dev/stayhub/internal/server/users"
)

type Handler struct {
	log      logging.Logger
	guard    *auth.Guard
	users    *users.Service
	rooms    *rooms.Service
	bookings *bookings.Service
}

func NewHandler(log logging.Logger, guard *auth.Guard, us *users.Service, rs *rooms.Service, bs *bookings.Service) *Handler {
	return &Handler{log: log, guard: guard, users: us, rooms: rs, bookings: bs}
}

// Router builds the gin engine with all routes attached.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), corsMiddleware())

	r.GET("/", h.root)

	api := r.Group("/api")
	{
		api.GET("/rooms", h.listRooms)
		api.GET("/rooms/:id", h.getRoom)

		api.POST("/bookings", h.createBooking)
		api.GET("/bookings", h.authRequired(), h.listBookings)
		api.GET("/bookings/guest/:name", h.bookingsByGuest)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.register)
			authGroup.POST("/login", h.login)
			authGroup.GET("/me", h.authRequired(), h.me)
			authGroup.GET("/verify", h.authRequired(), h.verifyToken)
		}

		user := api.Group("/user", h.authRequired())
		{
			user.GET("/bookings", h.userBookings)
		}

		admin := api.Group("/admin", h.adminRequired())
		{
			admin.GET("/users", h.adminListUsers)
			admin.GET("/users/:id", h.adminGetUser)
			admin.PATCH("/users/:id", h.adminUpdateUser)
			admin.DELETE("/users/:id", h.adminDeleteUser)

			admin.GET("/bookings", h.adminListBookings)
			admin.GET("/bookings/:id", h.adminGetBooking)
			admin.PATCH("/bookings/:id", h.adminUpdateBooking)
			admin.DELETE("/bookings/:id", h.adminDeleteBooking)

			admin.GET("/stats", h.adminStats)
		}
	}

	return r
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to StayHub Booking API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"rooms":    "/api/rooms",
			"bookings": "/api/bookings",
			"register": "/api/auth/register (POST)",
			"login":    "/api/auth/login (POST)",
			"me":       "/api/auth/me (GET - requires auth)",
		},
	})
}

// intQuery parses an integer query parameter, falling back to def on
// absence or garbage.
func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// abortError maps the shared error taxonomy to transport responses. The
// services never see HTTP; this is the only place status codes are chosen.
func (h *Handler) abortError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "not found"})
	case errors.Is(err, common.ErrDuplicate):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, common.ErrValidation):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, common.ErrUnauthorized):
		c.Header("WWW-Authenticate", "Bearer")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "not authenticated"})
	case errors.Is(err, common.ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "insufficient privileges"})
	default:
		h.log.Error(c.Request.Context(), "internal error", "err", err, "path", c.FullPath())
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
	}
}
