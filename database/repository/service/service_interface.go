package serviceRepo

import "dochouse/models"

// ServiceRepository defines data access for the treatment catalog and the
// home-page service cards.
type ServiceRepository interface {
	// GetAll returns the full service catalog. Unbounded fetch; the catalog
	// is expected to stay in the tens of documents.
	GetAll() ([]models.Service, error)

	// GetAllHome returns the home-page service cards.
	GetAllHome() ([]models.HomeService, error)
}
