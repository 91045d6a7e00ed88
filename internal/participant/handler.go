package participant

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/iic-bit/IIC-Backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 🎯 Register Batch - POST /events/:id/participants
func (h *Handler) Register(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil || eventID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)

	saved, err := h.Service.Register(c.Request.Context(), uint(eventID), req.Participants, ip)
	if err != nil {
		switch {
		case err == ErrEventNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		case IsInvalidInput(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register participants"})
		}
		return
	}

	c.JSON(http.StatusOK, saved)
}

// ===========================
// 📄 List Participants - GET /events/:id/participants
func (h *Handler) ListByEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil || eventID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}

	participants, err := h.Service.GetByEvent(uint(eventID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch participants"})
		return
	}

	// An event with no registrations yet returns an empty array, not 404.
	if participants == nil {
		participants = []Participant{}
	}

	c.JSON(http.StatusOK, participants)
}
