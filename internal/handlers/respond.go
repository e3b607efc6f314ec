// internal/handlers/respond.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "candidate-tracker/internal/common/errors"
)

// respondError maps a service error onto its HTTP status. Anything that is
// not an APIError becomes the generic 500 body.
func respondError(c *gin.Context, err error) {
	if apiErr, ok := apperrors.AsAPIError(err); ok {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message, "code": apiErr.Code})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
}

// parseID reads the :id path parameter as a positive integer.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id parameter"})
		return 0, false
	}
	return id, true
}
