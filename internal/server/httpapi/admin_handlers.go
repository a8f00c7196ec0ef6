package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stayhub-dev/stayhub/internal/docstore"
	"github.com/stayhub-dev/stayhub/internal/server/auth"
	"github.com/stayhub-dev/stayhub/internal/server/models"
)

func (h *Handler) adminListUsers(c *gin.Context) {
	list, err := h.users.List(c.Request.Context(), intQuery(c, "skip", 0), intQuery(c, "limit", 100))
	if err != nil {
		h.abortError(c, err)
		return
	}
	out := make([]models.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, u.Response())
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) adminGetUser(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.Response())
}

func (h *Handler) adminUpdateUser(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	user, err := h.users.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.Response())
}

func (h *Handler) adminDeleteUser(c *gin.Context) {
	id := c.Param("id")

	// Admins cannot delete their own account while logged into it.
	principal := principalFrom(c)
	if target, err := h.users.GetByID(c.Request.Context(), id); err == nil && target.Email == principal.Email {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "cannot delete your own account"})
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		h.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted", "user_id": id})
}

func (h *Handler) adminListBookings(c *gin.Context) {
	list, err := h.bookings.ListAll(c.Request.Context(), c.Query("status"), intQuery(c, "skip", 0), intQuery(c, "limit", 100))
	if err != nil {
		h.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingResponses(list))
}

func (h *Handler) adminGetBooking(c *gin.Context) {
	booking, err := h.bookings.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking.Response())
}

func (h *Handler) adminUpdateBooking(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	booking, err := h.bookings.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking.Response())
}

func (h *Handler) adminDeleteBooking(c *gin.Context) {
	id := c.Param("id")
	if err := h.bookings.Delete(c.Request.Context(), id); err != nil {
		h.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted", "booking_id": id})
}

func (h *Handler) adminStats(c *gin.Context) {
	ctx := c.Request.Context()

	var stats models.Stats
	var err error
	if stats.Users.Total, err = h.users.CountByPredicate(ctx, nil); err != nil {
		h.abortError(c, err)
		return
	}
	if stats.Users.Active, err = h.users.CountByPredicate(ctx, docstore.Predicate{"is_active": true}); err != nil {
		h.abortError(c, err)
		return
	}
	if stats.Users.Admins, err = h.users.CountByPredicate(ctx, docstore.Predicate{"role": auth.RoleAdmin}); err != nil {
		h.abortError(c, err)
		return
	}

	total, confirmed, cancelled, revenue, err := h.bookings.Stats(ctx)
	if err != nil {
		h.abortError(c, err)
		return
	}
	stats.Bookings.Total = total
	stats.Bookings.Confirmed = confirmed
	stats.Bookings.Cancelled = cancelled
	stats.Revenue.Total = revenue
	stats.Revenue.Currency = "USD"

	c.JSON(http.StatusOK, stats)
}
