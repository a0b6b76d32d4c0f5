package handlers

import (
	"net/http"

	"dochouse/services/payment"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves payment-intent creation.
type PaymentHandler struct {
	Intent payment.IntentService
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(intent payment.IntentService) *PaymentHandler {
	return &PaymentHandler{Intent: intent}
}

// CreatePaymentIntentHandler handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	var input struct {
		Price float64 `json:"price" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	clientSecret, err := h.Intent.CreateIntent(input.Price)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create payment intent", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
