package bookingRepo

import "dochouse/models"

// BookingRepository defines data access for appointment bookings.
type BookingRepository interface {
	// Create inserts a new booking document.
	Create(booking *models.Booking) error

	// GetByID retrieves a booking by its unique ID. Returns (nil, nil) when
	// no document matches.
	GetByID(id string) (*models.Booking, error)

	// GetByDate retrieves all bookings whose date field equals the given
	// string exactly. No normalization is applied.
	GetByDate(date string) ([]models.Booking, error)

	// GetByEmail retrieves all bookings made by the given patient email.
	GetByEmail(email string) ([]models.Booking, error)

	// FindExisting looks up a booking by its identifying
	// (treatment, date, patientEmail) triple. Returns (nil, nil) when no
	// document matches.
	FindExisting(treatment, date, patientEmail string) (*models.Booking, error)

	// MarkPaid sets paid=true and records the transaction ID on a booking.
	MarkPaid(id, transactionID string) error

	// Delete removes a booking document by its ID.
	Delete(id string) error
}
