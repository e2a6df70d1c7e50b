package repository

import (
	"context"
	"sync"
	"time"

	bookingserrors "roomly/internal/bookings/errors"
	"roomly/pkg/model"
)

// ConflictFunc decides whether a proposal clashes with an already admitted
// booking. The ledger applies it only to bookings sharing the proposal's
// room and date; the time-overlap rule itself belongs to the service layer.
type ConflictFunc func(proposal, existing *model.Booking) bool

// BookingRepository is the booking ledger: an append-only, in-memory store
// whose Admit method runs the whole check-then-append sequence atomically.
type BookingRepository interface {
	Admit(ctx context.Context, booking *model.Booking, conflicts ConflictFunc) (*model.Booking, error)
	FindByRoom(ctx context.Context, roomID int64) ([]*model.Booking, error)
	FindByCustomer(ctx context.Context, customerName string) ([]*model.Booking, error)
	FindAll(ctx context.Context) ([]*model.Booking, error)
	HasBookingOn(ctx context.Context, roomID int64, date string) (bool, error)
}

type slotKey struct {
	roomID int64
	date   string
}

type memoryBookingRepository struct {
	mu       sync.RWMutex
	bookings []*model.Booking
	bySlot   map[slotKey][]*model.Booking
	nextID   int64
}

func NewMemoryBookingRepository() BookingRepository {
	return &memoryBookingRepository{
		bySlot: make(map[slotKey][]*model.Booking),
		nextID: 1,
	}
}

// Admit checks the proposal against every admitted booking for the same
// room and date and appends it if none conflicts. The check and the append
// hold the write lock together, so two racing proposals for clashing slots
// can never both be admitted.
func (r *memoryBookingRepository) Admit(ctx context.Context, booking *model.Booking, conflicts ConflictFunc) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey{roomID: booking.RoomID, date: booking.Date}
	for _, existing := range r.bySlot[key] {
		if conflicts(booking, existing) {
			return nil, bookingserrors.ErrTimeConflict
		}
	}

	admitted := *booking
	admitted.ID = r.nextID
	admitted.CreatedAt = time.Now()
	r.nextID++

	stored := &admitted
	r.bookings = append(r.bookings, stored)
	r.bySlot[key] = append(r.bySlot[key], stored)

	result := admitted
	return &result, nil
}

func (r *memoryBookingRepository) FindByRoom(ctx context.Context, roomID int64) ([]*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*model.Booking, 0)
	for _, b := range r.bookings {
		if b.RoomID == roomID {
			copied := *b
			results = append(results, &copied)
		}
	}
	return results, nil
}

func (r *memoryBookingRepository) FindByCustomer(ctx context.Context, customerName string) ([]*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*model.Booking, 0)
	for _, b := range r.bookings {
		if b.CustomerName == customerName {
			copied := *b
			results = append(results, &copied)
		}
	}
	return results, nil
}

func (r *memoryBookingRepository) FindAll(ctx context.Context) ([]*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*model.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		copied := *b
		results = append(results, &copied)
	}
	return results, nil
}

func (r *memoryBookingRepository) HasBookingOn(ctx context.Context, roomID int64, date string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.bySlot[slotKey{roomID: roomID, date: date}]) > 0, nil
}
