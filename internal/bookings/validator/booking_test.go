package validator

import (
	"testing"

	"roomly/pkg/logger"
	"roomly/pkg/model"
)

func newValidator() *BookingValidator {
	log := logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"})
	return NewBookingValidator(log)
}

func valid() *model.Booking {
	return &model.Booking{
		CustomerName: "Alice",
		Date:         "2026-09-01",
		StartTime:    "09:00",
		EndTime:      "10:00",
		RoomID:       1,
	}
}

func TestValidate_AcceptsWellFormedBooking(t *testing.T) {
	v := newValidator()
	if err := v.Validate(valid()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_FieldErrors(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name   string
		mutate func(*model.Booking)
	}{
		{"empty customer name", func(b *model.Booking) { b.CustomerName = "" }},
		{"missing date", func(b *model.Booking) { b.Date = "" }},
		{"date not a calendar date", func(b *model.Booking) { b.Date = "September 1st" }},
		{"date wrong separator", func(b *model.Booking) { b.Date = "2026/09/01" }},
		{"start time unpadded", func(b *model.Booking) { b.StartTime = "9:00" }},
		{"start time with seconds", func(b *model.Booking) { b.StartTime = "09:00:00" }},
		{"end time out of range", func(b *model.Booking) { b.EndTime = "24:00" }},
		{"end time minutes out of range", func(b *model.Booking) { b.EndTime = "10:60" }},
		{"room id zero", func(b *model.Booking) { b.RoomID = 0 }},
		{"room id negative", func(b *model.Booking) { b.RoomID = -3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid()
			tt.mutate(b)
			if err := v.Validate(b); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidate_SlotOrdering(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name       string
		start, end string
		wantErr    bool
	}{
		{"end after start", "09:00", "10:00", false},
		{"one minute slot", "09:00", "09:01", false},
		{"end equals start", "09:00", "09:00", true},
		{"end before start", "10:00", "09:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid()
			b.StartTime = tt.start
			b.EndTime = tt.end
			err := v.Validate(b)
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidationErrors_MessageNamesField(t *testing.T) {
	v := newValidator()
	b := valid()
	b.StartTime = "nine"

	err := v.Validate(b)
	if err == nil {
		t.Fatal("expected validation error")
	}

	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("error type = %T, want ValidationErrors", err)
	}
	if len(verrs) == 0 {
		t.Fatal("expected at least one field error")
	}
	if verrs[0].Field != "StartTime" {
		t.Errorf("Field = %q, want StartTime", verrs[0].Field)
	}
}
