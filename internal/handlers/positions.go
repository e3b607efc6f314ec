// internal/handlers/positions.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"candidate-tracker/internal/service"
)

type PositionHandler struct {
	positions *service.PositionService
}

func NewPositionHandler(positions *service.PositionService) *PositionHandler {
	return &PositionHandler{positions: positions}
}

// List is the GET /api/positions endpoint: active positions by title.
func (h *PositionHandler) List(c *gin.Context) {
	positions, err := h.positions.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, positions)
}
