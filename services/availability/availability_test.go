package availability

import (
	"errors"
	"reflect"
	"testing"

	"dochouse/models"
)

// -- Mock Repositories --

type mockServiceRepo struct {
	services []models.Service
	err      error
}

// GetAll returns a deep copy, the way a fresh cursor decode would.
func (m *mockServiceRepo) GetAll() ([]models.Service, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Service, len(m.services))
	for i, s := range m.services {
		out[i] = s
		out[i].Slots = append([]string(nil), s.Slots...)
	}
	return out, nil
}

func (m *mockServiceRepo) GetAllHome() ([]models.HomeService, error) {
	return nil, nil
}

type mockBookingRepo struct {
	bookings []models.Booking
	err      error
}

func (m *mockBookingRepo) Create(b *models.Booking) error { return nil }

func (m *mockBookingRepo) GetByID(id string) (*models.Booking, error) { return nil, nil }

func (m *mockBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Booking
	for _, b := range m.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) GetByEmail(email string) ([]models.Booking, error) { return nil, nil }

func (m *mockBookingRepo) FindExisting(treatment, date, patientEmail string) (*models.Booking, error) {
	return nil, nil
}

func (m *mockBookingRepo) MarkPaid(id, transactionID string) error { return nil }

func (m *mockBookingRepo) Delete(id string) error { return nil }

func newResolver(services []models.Service, bookings []models.Booking) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		ServiceRepo: &mockServiceRepo{services: services},
		BookingRepo: &mockBookingRepo{bookings: bookings},
	}
}

func cleaningCatalog() []models.Service {
	return []models.Service{
		{ID: "s1", Name: "Cleaning", Slots: []string{"9am", "10am", "11am"}},
	}
}

// -- Tests --

func TestAvailableSlots_NoBookings(t *testing.T) {
	svc := newResolver(cleaningCatalog(), nil)

	got, err := svc.AvailableSlots("2024-01-11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 service, got %d", len(got))
	}
	want := []string{"9am", "10am", "11am"}
	if !reflect.DeepEqual(got[0].Slots, want) {
		t.Fatalf("expected slots %v, got %v", want, got[0].Slots)
	}
}

func TestAvailableSlots_BookedSlotRemoved(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Cleaning", Date: "2024-01-10", Slot: "10am", PatientEmail: "a@x.com"},
	}
	svc := newResolver(cleaningCatalog(), bookings)

	got, err := svc.AvailableSlots("2024-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"9am", "11am"}
	if !reflect.DeepEqual(got[0].Slots, want) {
		t.Fatalf("expected slots %v, got %v", want, got[0].Slots)
	}
}

func TestAvailableSlots_OtherDateUnaffected(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Cleaning", Date: "2024-01-10", Slot: "10am", PatientEmail: "a@x.com"},
	}
	svc := newResolver(cleaningCatalog(), bookings)

	got, err := svc.AvailableSlots("2024-01-11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"9am", "10am", "11am"}
	if !reflect.DeepEqual(got[0].Slots, want) {
		t.Fatalf("expected slots %v, got %v", want, got[0].Slots)
	}
}

func TestAvailableSlots_SlotNameCollisionAcrossServices(t *testing.T) {
	catalog := []models.Service{
		{Name: "Cleaning", Slots: []string{"9am", "10am"}},
		{Name: "Whitening", Slots: []string{"10am", "11am"}},
	}
	bookings := []models.Booking{
		{Treatment: "Cleaning", Date: "2024-01-10", Slot: "10am", PatientEmail: "a@x.com"},
	}
	svc := newResolver(catalog, bookings)

	got, err := svc.AvailableSlots("2024-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got[0].Slots, []string{"9am"}) {
		t.Fatalf("expected Cleaning slots [9am], got %v", got[0].Slots)
	}
	// Whitening shares the "10am" label but has no booking of its own.
	if !reflect.DeepEqual(got[1].Slots, []string{"10am", "11am"}) {
		t.Fatalf("expected Whitening slots unchanged, got %v", got[1].Slots)
	}
}

func TestAvailableSlots_UnknownTreatmentIgnored(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Xray", Date: "2024-01-10", Slot: "9am", PatientEmail: "a@x.com"},
	}
	svc := newResolver(cleaningCatalog(), bookings)

	got, err := svc.AvailableSlots("2024-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"9am", "10am", "11am"}
	if !reflect.DeepEqual(got[0].Slots, want) {
		t.Fatalf("expected slots %v, got %v", want, got[0].Slots)
	}
}

func TestAvailableSlots_AbsentDateYieldsFullCatalog(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Cleaning", Date: "2024-01-10", Slot: "10am", PatientEmail: "a@x.com"},
	}
	svc := newResolver(cleaningCatalog(), bookings)

	got, err := svc.AvailableSlots("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"9am", "10am", "11am"}
	if !reflect.DeepEqual(got[0].Slots, want) {
		t.Fatalf("expected slots %v, got %v", want, got[0].Slots)
	}
}

func TestAvailableSlots_DuplicateBookingsSameSlot(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Cleaning", Date: "2024-01-10", Slot: "10am", PatientEmail: "a@x.com"},
		{Treatment: "Cleaning", Date: "2024-01-10", Slot: "10am", PatientEmail: "b@x.com"},
	}
	svc := newResolver(cleaningCatalog(), bookings)

	got, err := svc.AvailableSlots("2024-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"9am", "11am"}
	if !reflect.DeepEqual(got[0].Slots, want) {
		t.Fatalf("expected slots %v, got %v", want, got[0].Slots)
	}
}

func TestAvailableSlots_EmptySlotCatalog(t *testing.T) {
	catalog := []models.Service{{Name: "Consultation", Slots: nil}}
	bookings := []models.Booking{
		{Treatment: "Consultation", Date: "2024-01-10", Slot: "9am", PatientEmail: "a@x.com"},
	}
	svc := newResolver(catalog, bookings)

	got, err := svc.AvailableSlots("2024-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got[0].Slots) != 0 {
		t.Fatalf("expected no slots, got %v", got[0].Slots)
	}
}

func TestAvailableSlots_Idempotent(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Cleaning", Date: "2024-01-10", Slot: "10am", PatientEmail: "a@x.com"},
	}
	svc := newResolver(cleaningCatalog(), bookings)

	first, err := svc.AvailableSlots("2024-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.AvailableSlots("2024-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output across calls, got %v then %v", first, second)
	}
}

func TestAvailableSlots_CatalogError(t *testing.T) {
	svc := &DefaultAvailabilityService{
		ServiceRepo: &mockServiceRepo{err: errors.New("connection reset")},
		BookingRepo: &mockBookingRepo{},
	}

	if _, err := svc.AvailableSlots("2024-01-10"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestAvailableSlots_BookingError(t *testing.T) {
	svc := &DefaultAvailabilityService{
		ServiceRepo: &mockServiceRepo{services: cleaningCatalog()},
		BookingRepo: &mockBookingRepo{err: errors.New("connection reset")},
	}

	if _, err := svc.AvailableSlots("2024-01-10"); err == nil {
		t.Fatalf("expected error")
	}
}
