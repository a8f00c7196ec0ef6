package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) listRooms(c *gin.Context) {
	list, err := h.rooms.List(c.Request.Context())
	if err != nil {
		h.abortError(c, err)
		return
	}
	out := make([]any, 0, len(list))
	for _, room := range list {
		out = append(out, room.Response())
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) getRoom(c *gin.Context) {
	id := c.Param("id")
	if uuid.Validate(id) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid room ID"})
		return
	}
	room, err := h.rooms.Get(c.Request.Context(), id)
	if err != nil {
		h.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, room.Response())
}
