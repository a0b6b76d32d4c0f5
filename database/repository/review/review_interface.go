package reviewRepo

import "dochouse/models"

// ReviewRepository defines data access for patient testimonials.
type ReviewRepository interface {
	// GetAll retrieves all reviews.
	GetAll() ([]models.Review, error)

	// Create inserts a new review document.
	Create(review *models.Review) error
}
