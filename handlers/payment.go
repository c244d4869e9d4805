package handlers

import (
	"net/http"

	"doctorchamber/models"
	"doctorchamber/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves the payment-intent and confirmation endpoints.
type PaymentHandler struct {
	Service payment.PaymentService
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// CreatePaymentIntent opens a processor payment intent for a booking's price
// and returns the client secret the caller completes the charge with.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var input struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	clientSecret, err := h.Service.CreateIntent(input.Price)
	if err != nil {
		getLogger(c).Error("failed to create payment intent", zap.Float64("price", input.Price), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// RecordPayment appends the payment record and marks the booking paid.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var input models.Payment
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, err := h.Service.Confirm(c.Request.Context(), input)
	if err != nil {
		getLogger(c).Error("failed to record payment",
			zap.String("booking", input.BookingID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
}
