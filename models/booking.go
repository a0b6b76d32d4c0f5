package models

import "time"

// Booking represents a patient appointment for a treatment slot on a date.
// The (treatment, date, patientEmail) triple is unique; the slot value must be
// one of the treatment's catalog slots but is not unique per date.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	Treatment     string    `bson:"treatment" json:"treatment"` // Service name.
	Date          string    `bson:"date" json:"date"`           // Opaque calendar date string, matched by equality.
	Slot          string    `bson:"slot" json:"slot"`
	PatientName   string    `bson:"patientName,omitempty" json:"patientName,omitempty"`
	PatientEmail  string    `bson:"patientEmail" json:"patientEmail"`
	Phone         string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Price         float64   `bson:"price,omitempty" json:"price,omitempty"`
	Paid          bool      `bson:"paid" json:"paid"`
	TransactionID string    `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
