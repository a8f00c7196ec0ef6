package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stayhub-dev/stayhub/internal/server/models"
)

func (h *Handler) createBooking(c *gin.Context) {
	var req models.BookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	booking, err := h.bookings.Create(c.Request.Context(), req)
	if err != nil {
		h.abortError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking.Response())
}

func (h *Handler) listBookings(c *gin.Context) {
	list, err := h.bookings.ListAll(c.Request.Context(), c.Query("status"), intQuery(c, "skip", 0), intQuery(c, "limit", 100))
	if err != nil {
		h.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingResponses(list))
}

func (h *Handler) bookingsByGuest(c *gin.Context) {
	list, err := h.bookings.ListByGuest(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingResponses(list))
}

func (h *Handler) userBookings(c *gin.Context) {
	principal := principalFrom(c)
	list, err := h.bookings.ListByUser(c.Request.Context(), principal.Email)
	if err != nil {
		h.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingResponses(list))
}

func bookingResponses(list []*models.Booking) []models.BookingResponse {
	out := make([]models.BookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, b.Response())
	}
	return out
}
