package models

import "time"

// Payment records a confirmed charge against a booking.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	PatientEmail  string    `bson:"patientEmail" json:"patientEmail"`
	Treatment     string    `bson:"treatment" json:"treatment"`
	Amount        float64   `bson:"amount,omitempty" json:"amount,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
