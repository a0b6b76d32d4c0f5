package availability

import (
	bookingRepo "dochouse/database/repository/booking"
	serviceRepo "dochouse/database/repository/service"
	"dochouse/models"
)

// AvailabilityService computes per-service open slots for a calendar date.
type AvailabilityService interface {
	// AvailableSlots returns the service catalog with each service's slot
	// list reduced to the slots not yet booked on the given date.
	AvailableSlots(date string) ([]models.Service, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	ServiceRepo serviceRepo.ServiceRepository
	BookingRepo bookingRepo.BookingRepository
}
