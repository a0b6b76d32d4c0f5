package paymentRepo

import "dochouse/models"

// PaymentRepository defines data access for confirmed payment records.
type PaymentRepository interface {
	// Create inserts a new payment document.
	Create(payment *models.Payment) error

	// GetByEmail retrieves all payment records for a patient email.
	GetByEmail(email string) ([]models.Payment, error)
}
