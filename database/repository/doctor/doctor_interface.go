package doctorRepo

import "dochouse/models"

// DoctorRepository defines data access for expert-doctor profiles.
type DoctorRepository interface {
	// GetAll retrieves all expert-doctor profiles.
	GetAll() ([]models.Doctor, error)

	// GetByID retrieves a doctor profile by its unique ID. Returns (nil, nil)
	// when no document matches.
	GetByID(id string) (*models.Doctor, error)
}
