package model

import "time"

// Read-side projections. These are built on demand by joining the room,
// customer and booking stores; they carry no state of their own.

// RoomSlot is the per-booking slice of a room projection.
type RoomSlot struct {
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

// RoomWithBookings is a room plus its occupancy: BookedStatus reports
// whether any booking falls on the date the view was built for.
type RoomWithBookings struct {
	Room
	BookedStatus bool       `json:"bookedStatus"`
	Bookings     []RoomSlot `json:"bookings"`
}

// CustomerSlot is the per-booking slice of a customer projection.
type CustomerSlot struct {
	RoomID    int64  `json:"roomId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// CustomerWithBookings lists every slot a customer holds.
type CustomerWithBookings struct {
	CustomerName string         `json:"customerName"`
	Bookings     []CustomerSlot `json:"bookings"`
}

// BookingDetail is the full per-booking record returned by the per-customer
// history endpoint.
type BookingDetail struct {
	CustomerName  string        `json:"customerName"`
	RoomID        int64         `json:"roomId"`
	Date          string        `json:"date"`
	StartTime     string        `json:"startTime"`
	EndTime       string        `json:"endTime"`
	BookingID     int64         `json:"bookingId"`
	BookingDate   time.Time     `json:"bookingDate"`
	BookingStatus BookingStatus `json:"bookingStatus"`
}
