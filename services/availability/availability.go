package availability

import (
	"fmt"
	"sync"

	"dochouse/models"
	"dochouse/utils"

	"go.uber.org/zap"
)

// AvailableSlots loads the full service catalog and the bookings recorded
// against the given date, then subtracts each service's booked slots from its
// catalog. Dates are compared as opaque strings; a date that matches no
// bookings (including the empty string) yields the unfiltered catalog.
//
// The two reads have no dependency on each other and are issued concurrently.
// Filtering happens on the decoded in-memory documents only; nothing is
// written back.
func (s *DefaultAvailabilityService) AvailableSlots(date string) ([]models.Service, error) {
	logger := utils.GetLogger()

	var (
		services []models.Service
		bookings []models.Booking
		svcErr   error
		bkErr    error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		services, svcErr = s.ServiceRepo.GetAll()
	}()
	go func() {
		defer wg.Done()
		bookings, bkErr = s.BookingRepo.GetByDate(date)
	}()
	wg.Wait()

	if svcErr != nil {
		return nil, fmt.Errorf("failed to load service catalog: %w", svcErr)
	}
	if bkErr != nil {
		return nil, fmt.Errorf("failed to load bookings for date %q: %w", date, bkErr)
	}

	for i := range services {
		// Membership is all that matters; a slot double-booked by several
		// bookings is still just unavailable.
		booked := make(map[string]struct{})
		for _, b := range bookings {
			if b.Treatment == services[i].Name {
				booked[b.Slot] = struct{}{}
			}
		}
		if len(booked) == 0 {
			continue
		}

		open := make([]string, 0, len(services[i].Slots))
		for _, slot := range services[i].Slots {
			if _, taken := booked[slot]; !taken {
				open = append(open, slot)
			}
		}
		services[i].Slots = open
	}

	logger.Debug("computed availability",
		zap.String("date", date),
		zap.Int("services", len(services)),
		zap.Int("bookings", len(bookings)))
	return services, nil
}
