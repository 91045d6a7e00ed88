package payment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/iic-bit/IIC-Backend/internal/event"
	"github.com/iic-bit/IIC-Backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// CreateOrder - POST /events/:id/payments/order
func (h *Handler) CreateOrder(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil || eventID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)

	resp, err := h.Service.CreateOrder(uint(eventID), req, ip)
	if err != nil {
		switch err {
		case event.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		case ErrNoFee:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment order"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// VerifyPayment - POST /payments/verify
func (h *Handler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)

	if err := h.Service.VerifyPayment(req, ip); err != nil {
		if err == ErrInvalidSignature {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "payment verification failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "payment verified successfully"})
}

// ListByEvent - GET /events/:id/payments (admin only)
func (h *Handler) ListByEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil || eventID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}

	payments, err := h.Service.ListByEvent(uint(eventID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}
