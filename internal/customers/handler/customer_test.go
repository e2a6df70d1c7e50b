package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "roomly/pkg/errors"
	"roomly/pkg/logger"
	"roomly/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockViewService struct {
	RoomsWithBookingsFunc      func(ctx context.Context, today string) ([]*model.RoomWithBookings, error)
	CustomersWithBookingsFunc  func(ctx context.Context) ([]*model.CustomerWithBookings, error)
	CustomerBookingDetailsFunc func(ctx context.Context, customerName string) ([]*model.BookingDetail, error)
}

func (m *mockViewService) RoomsWithBookings(ctx context.Context, today string) ([]*model.RoomWithBookings, error) {
	return m.RoomsWithBookingsFunc(ctx, today)
}

func (m *mockViewService) CustomersWithBookings(ctx context.Context) ([]*model.CustomerWithBookings, error) {
	return m.CustomersWithBookingsFunc(ctx)
}

func (m *mockViewService) CustomerBookingDetails(ctx context.Context, customerName string) ([]*model.BookingDetail, error) {
	return m.CustomerBookingDetailsFunc(ctx, customerName)
}

func newTestLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"})
}

func serve(h *CustomerHandler, req *http.Request) *httptest.ResponseRecorder {
	router := httprouter.New()
	h.RegisterRoutes(router)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestList(t *testing.T) {
	svc := &mockViewService{
		CustomersWithBookingsFunc: func(ctx context.Context) ([]*model.CustomerWithBookings, error) {
			return []*model.CustomerWithBookings{
				{
					CustomerName: "Alice",
					Bookings: []model.CustomerSlot{
						{RoomID: 1, Date: "2026-09-01", StartTime: "09:00", EndTime: "10:00"},
					},
				},
				{CustomerName: "Bob", Bookings: []model.CustomerSlot{}},
			}, nil
		},
	}
	h := NewCustomerHandler(svc, newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	rec := serve(h, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got []model.CustomerWithBookings
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d customers, want 2", len(got))
	}
	if got[0].CustomerName != "Alice" || len(got[0].Bookings) != 1 {
		t.Errorf("first customer = %+v", got[0])
	}
}

func TestBookings_PassesNameFromPath(t *testing.T) {
	var gotName string
	svc := &mockViewService{
		CustomerBookingDetailsFunc: func(ctx context.Context, customerName string) ([]*model.BookingDetail, error) {
			gotName = customerName
			return []*model.BookingDetail{
				{
					CustomerName:  customerName,
					RoomID:        1,
					Date:          "2026-09-01",
					StartTime:     "09:00",
					EndTime:       "10:00",
					BookingID:     3,
					BookingStatus: model.StatusConfirmed,
				},
			}, nil
		},
	}
	h := NewCustomerHandler(svc, newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/customers/Alice/bookings", nil)
	rec := serve(h, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotName != "Alice" {
		t.Errorf("customerName from path = %q, want %q", gotName, "Alice")
	}

	var got []model.BookingDetail
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 1 || got[0].BookingID != 3 {
		t.Errorf("details = %+v", got)
	}
}

func TestBookings_NoBookings(t *testing.T) {
	svc := &mockViewService{
		CustomerBookingDetailsFunc: func(ctx context.Context, customerName string) ([]*model.BookingDetail, error) {
			return nil, apperrors.NotFound("No bookings found for this customer.")
		},
	}
	h := NewCustomerHandler(svc, newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/customers/Nobody/bookings", nil)
	rec := serve(h, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "No bookings found for this customer." {
		t.Errorf("message = %q", resp.Message)
	}
}
