package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dochouse/middleware"
	"dochouse/models"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
)

// -- Mock Services --

type mockBookingService struct {
	existing   *models.Booking
	listCalled bool
}

func (m *mockBookingService) CreateBooking(b models.Booking) (*models.Booking, bool, error) {
	if m.existing != nil {
		return m.existing, false, nil
	}
	b.ID = "new-booking"
	return &b, true, nil
}

func (m *mockBookingService) GetBookingsByEmail(email string) ([]models.Booking, error) {
	m.listCalled = true
	return []models.Booking{{ID: "b1", PatientEmail: email}}, nil
}

func (m *mockBookingService) ConfirmPayment(id, transactionID string) (*models.Booking, error) {
	return &models.Booking{ID: id, Paid: true, TransactionID: transactionID}, nil
}

func (m *mockBookingService) DeleteBooking(id string) error { return nil }

func newBookingRouter(svc *mockBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, utils.GetLogger())

	r := gin.New()
	r.POST("/booking", h.CreateBookingHandler)
	protected := r.Group("/booking")
	protected.Use(middleware.JWTAuthMiddleware())
	protected.GET("", h.GetBookingsHandler)
	return r
}

// -- Tests --

func TestCreateBookingHandler_New(t *testing.T) {
	router := newBookingRouter(&mockBookingService{})

	body := `{"treatment":"Cleaning","date":"2024-01-10","slot":"10am","patientEmail":"a@x.com"}`
	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success=true")
	}
}

func TestCreateBookingHandler_Duplicate(t *testing.T) {
	existing := &models.Booking{ID: "existing", Treatment: "Cleaning", Date: "2024-01-10", PatientEmail: "a@x.com"}
	router := newBookingRouter(&mockBookingService{existing: existing})

	body := `{"treatment":"Cleaning","date":"2024-01-10","slot":"10am","patientEmail":"a@x.com"}`
	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Duplicates are reported in the body, not the status code.
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Success bool           `json:"success"`
		Booking models.Booking `json:"booking"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if resp.Success {
		t.Fatalf("expected success=false")
	}
	if resp.Booking.ID != "existing" {
		t.Fatalf("expected existing booking, got %q", resp.Booking.ID)
	}
}

func TestCreateBookingHandler_MissingFields(t *testing.T) {
	router := newBookingRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(`{"treatment":"Cleaning"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetBookingsHandler_NoToken(t *testing.T) {
	router := newBookingRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/booking?email=a@x.com", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestGetBookingsHandler_EmailMismatch(t *testing.T) {
	svc := &mockBookingService{}
	router := newBookingRouter(svc)

	token, err := utils.GenerateToken("u1", "someone-else@x.com", "", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/booking?email=a@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	// The rejection must terminate the request before the query runs.
	if svc.listCalled {
		t.Fatalf("query must not run after a rejected email check")
	}
}

func TestGetBookingsHandler_OK(t *testing.T) {
	svc := &mockBookingService{}
	router := newBookingRouter(svc)

	token, err := utils.GenerateToken("u1", "a@x.com", "", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/booking?email=a@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var bookings []models.Booking
	if err := json.Unmarshal(w.Body.Bytes(), &bookings); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if len(bookings) != 1 || bookings[0].PatientEmail != "a@x.com" {
		t.Fatalf("unexpected bookings: %+v", bookings)
	}
}
