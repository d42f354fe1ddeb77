package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	bookingsvc "github.com/RitikRK96/esnan-digital/internal/bookings"
	"github.com/RitikRK96/esnan-digital/pkg/enums"
)

type stubBookingService struct {
	booking *bookingsvc.BookingDTO
	history *bookingsvc.HistoryDTO
	err     error
	lastReq bookingsvc.CreateBookingRequest
}

func (s *stubBookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req bookingsvc.CreateBookingRequest) (*bookingsvc.BookingDTO, error) {
	s.lastReq = req
	return s.booking, s.err
}

func (s *stubBookingService) History(ctx context.Context, userID uuid.UUID) (*bookingsvc.HistoryDTO, error) {
	return s.history, s.err
}

func (s *stubBookingService) ListCities(ctx context.Context) []bookingsvc.CityDTO {
	return bookingsvc.Cities()
}

func TestBookingsCreate(t *testing.T) {
	userID := uuid.New()
	stub := &stubBookingService{booking: &bookingsvc.BookingDTO{
		ID:                uuid.New(),
		City:              enums.HolyCityPrayagraj,
		TotalAmountRupees: 351,
		Status:            enums.BookingStatusActive,
	}}

	body := strings.NewReader(`{"city_id":"prayagraj","photo_url":"https://storage.googleapis.com/esnan/p.jpg","add_photo":true}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", body).WithContext(authedContext(userID))
	rec := httptest.NewRecorder()
	BookingsCreate(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !stub.lastReq.AddPhoto || stub.lastReq.CityID != "prayagraj" {
		t.Fatalf("unexpected forwarded request %+v", stub.lastReq)
	}
}

func TestBookingsCreateValidation(t *testing.T) {
	userID := uuid.New()

	body := strings.NewReader(`{"city_id":"prayagraj","photo_url":"not a url"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", body).WithContext(authedContext(userID))
	rec := httptest.NewRecorder()
	BookingsCreate(&stubBookingService{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBookingsHistory(t *testing.T) {
	userID := uuid.New()
	stub := &stubBookingService{history: &bookingsvc.HistoryDTO{Total: 2}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil).WithContext(authedContext(userID))
	rec := httptest.NewRecorder()
	BookingsHistory(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var envelope struct {
		Data bookingsvc.HistoryDTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Total != 2 {
		t.Fatalf("expected 2 bookings, got %d", envelope.Data.Total)
	}
}

func TestBookingsCities(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/cities", nil)
	rec := httptest.NewRecorder()
	BookingsCities(&stubBookingService{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var envelope struct {
		Data []bookingsvc.CityDTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 6 {
		t.Fatalf("expected 6 cities, got %d", len(envelope.Data))
	}
}
