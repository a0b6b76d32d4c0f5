package handlers

import (
	"errors"
	"net/http"

	"dochouse/middleware"
	"dochouse/models"
	"dochouse/services/booking"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
	logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, logger: logger}
}

// CreateBookingHandler handles POST /booking. Duplicate requests for the same
// (treatment, date, patientEmail) triple return success=false with the
// existing booking; callers must inspect the body, not the status code.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input struct {
		Treatment    string  `json:"treatment" binding:"required"`
		Date         string  `json:"date" binding:"required"`
		Slot         string  `json:"slot" binding:"required"`
		PatientName  string  `json:"patientName"`
		PatientEmail string  `json:"patientEmail" binding:"required"`
		Phone        string  `json:"phone"`
		Price        float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bk, created, err := h.Service.CreateBooking(models.Booking{
		Treatment:    input.Treatment,
		Date:         input.Date,
		Slot:         input.Slot,
		PatientName:  input.PatientName,
		PatientEmail: input.PatientEmail,
		Phone:        input.Phone,
		Price:        input.Price,
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", err.Error())
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "booking already exists for this treatment and date",
			"booking": bk,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": bk})
}

// GetBookingsHandler handles GET /booking?email=E. The email must match the
// bearer token's email claim; a mismatch terminates the request before any
// query runs.
func (h *BookingHandler) GetBookingsHandler(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing email query parameter"})
		return
	}

	claims := middleware.ClaimsFrom(c)
	if claims == nil || claims.Email != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: email does not match token"})
		return
	}

	bookings, err := h.Service.GetBookingsByEmail(email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", err.Error())
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// ConfirmPaymentHandler handles PATCH /booking/:id.
func (h *BookingHandler) ConfirmPaymentHandler(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		TransactionID string `json:"transactionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bk, err := h.Service.ConfirmPayment(id, input.TransactionID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to confirm payment", err.Error())
		return
	}
	c.JSON(http.StatusOK, bk)
}

// DeleteBookingHandler handles DELETE /booking/:id. Admin only.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.Service.DeleteBooking(id); err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete booking", err.Error())
		return
	}
	h.logger.Info("booking deleted", zap.String("id", id))
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}
