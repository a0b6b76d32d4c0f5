package booking

import (
	bookingRepo "dochouse/database/repository/booking"
	paymentRepo "dochouse/database/repository/payment"
	"dochouse/models"
)

// BookingService manages the appointment lifecycle: patient-initiated
// creation, a single payment-confirmation mutation, and admin deletion.
type BookingService interface {
	// CreateBooking inserts a booking unless one already exists for the same
	// (treatment, date, patientEmail) triple. The returned bool reports
	// whether a new document was created; on a duplicate the existing
	// booking is returned unchanged.
	CreateBooking(booking models.Booking) (*models.Booking, bool, error)

	// GetBookingsByEmail lists all bookings made by a patient.
	GetBookingsByEmail(email string) ([]models.Booking, error)

	// ConfirmPayment marks a booking paid, records the transaction ID and
	// appends a payment record.
	ConfirmPayment(id, transactionID string) (*models.Booking, error)

	// DeleteBooking removes a booking. Admin-only at the transport layer.
	DeleteBooking(id string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	PaymentRepo paymentRepo.PaymentRepository
}
