package booking

import (
	"fmt"

	"dochouse/models"
	"dochouse/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking performs a conditional insert: check for an existing booking
// with the same (treatment, date, patientEmail) triple, then insert. The two
// steps are separate store operations with no atomic guarantee, so two
// concurrent identical requests can both pass the check; the unique index on
// the triple rejects the losing insert, and we resolve that case by returning
// the winner's document.
func (s *DefaultBookingService) CreateBooking(booking models.Booking) (*models.Booking, bool, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.FindExisting(booking.Treatment, booking.Date, booking.PatientEmail)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check for existing booking: %w", err)
	}
	if existing != nil {
		logger.Info("duplicate booking suppressed",
			zap.String("treatment", booking.Treatment),
			zap.String("date", booking.Date),
			zap.String("patientEmail", booking.PatientEmail))
		return existing, false, nil
	}

	booking.ID = uuid.New().String()
	booking.Paid = false
	booking.TransactionID = ""

	if err := s.Repo.Create(&booking); err != nil {
		// Likely the race loser hitting the unique index; surface the
		// winner's document if so.
		if winner, findErr := s.Repo.FindExisting(booking.Treatment, booking.Date, booking.PatientEmail); findErr == nil && winner != nil {
			return winner, false, nil
		}
		return nil, false, fmt.Errorf("failed to create booking: %w", err)
	}
	return &booking, true, nil
}

// GetBookingsByEmail lists all bookings made by a patient.
func (s *DefaultBookingService) GetBookingsByEmail(email string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s: %w", email, err)
	}
	return bookings, nil
}

// ConfirmPayment marks the booking paid, records the transaction ID and
// appends a payment record to the payments collection.
func (s *DefaultBookingService) ConfirmPayment(id, transactionID string) (*models.Booking, error) {
	logger := utils.GetLogger()

	bk, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	if bk == nil {
		return nil, ErrBookingNotFound
	}

	if err := s.Repo.MarkPaid(id, transactionID); err != nil {
		return nil, fmt.Errorf("failed to mark booking %s paid: %w", id, err)
	}

	payment := &models.Payment{
		ID:            uuid.New().String(),
		BookingID:     bk.ID,
		TransactionID: transactionID,
		PatientEmail:  bk.PatientEmail,
		Treatment:     bk.Treatment,
		Amount:        bk.Price,
	}
	if err := s.PaymentRepo.Create(payment); err != nil {
		// The booking is already marked paid; log and keep going rather than
		// leave the caller without a response.
		logger.Error("failed to append payment record",
			zap.String("bookingID", bk.ID), zap.Error(err))
	}

	bk.Paid = true
	bk.TransactionID = transactionID
	return bk, nil
}

// DeleteBooking removes a booking document.
func (s *DefaultBookingService) DeleteBooking(id string) error {
	bk, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	if bk == nil {
		return ErrBookingNotFound
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", id, err)
	}
	return nil
}
