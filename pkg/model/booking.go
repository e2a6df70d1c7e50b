package model

import (
	"time"
)

// BookingStatus enumerates the lifecycle states of a booking. Confirmed is
// the only state today; cancellation and rescheduling would add variants
// without changing the wire shape.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "Confirmed"
)

// Booking is a reservation of a room for a [StartTime, EndTime) slot on a
// single calendar date. Date and the time-of-day fields are opaque strings;
// zero-padded "HH:MM" times keep lexical order consistent with clock order,
// which the conflict check relies on. Bookings are immutable once admitted.
type Booking struct {
	ID           int64         `json:"id"`
	CustomerName string        `json:"customerName" validate:"required,min=1,max=100"`
	Date         string        `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime    string        `json:"startTime" validate:"required,hhmm"`
	EndTime      string        `json:"endTime" validate:"required,hhmm"`
	RoomID       int64         `json:"roomId" validate:"required,min=1"`
	Status       BookingStatus `json:"bookingStatus,omitempty"`
	CreatedAt    time.Time     `json:"bookingDate"`
}
