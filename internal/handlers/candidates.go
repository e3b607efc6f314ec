// internal/handlers/candidates.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"candidate-tracker/internal/models"
	"candidate-tracker/internal/service"
)

type CandidateHandler struct {
	candidates *service.CandidateService
}

// NewCandidateHandler creates the handler with dependencies
func NewCandidateHandler(candidates *service.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidates: candidates}
}

// List is the GET /api/candidates endpoint with optional status and search
// filters.
func (h *CandidateHandler) List(c *gin.Context) {
	filter := models.CandidateFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}

	candidates, err := h.candidates.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// Get is the GET /api/candidates/:id endpoint.
func (h *CandidateHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	candidate, err := h.candidates.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// Register is the POST /api/candidates endpoint.
func (h *CandidateHandler) Register(c *gin.Context) {
	var input models.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	candidate, err := h.candidates.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

// UpdateStatus is the PATCH /api/candidates/:id/status endpoint.
func (h *CandidateHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	status, err := h.candidates.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}

// Delete is the DELETE /api/candidates/:id endpoint.
func (h *CandidateHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.candidates.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Candidate deleted successfully"})
}

// History is the GET /api/candidates/:id/history endpoint.
func (h *CandidateHandler) History(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	history, err := h.candidates.History(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
