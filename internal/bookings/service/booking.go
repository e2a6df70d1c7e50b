package service

import (
	"context"
	"errors"
	"time"

	bookingserrors "roomly/internal/bookings/errors"
	"roomly/internal/bookings/repository"
	"roomly/internal/bookings/validator"
	customerrepo "roomly/internal/customers/repository"
	"roomly/internal/events"
	roomrepo "roomly/internal/rooms/repository"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/model"
)

const (
	msgRoomAlreadyBooked = "Room is already booked at this time."
	msgRoomNotFound      = "Room not found."
)

// BookingService is the admission side of the booking ledger.
type BookingService interface {
	Propose(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	GetByRoom(ctx context.Context, roomID int64) ([]*model.Booking, error)
	GetByCustomer(ctx context.Context, customerName string) ([]*model.Booking, error)
	IsBookedOn(ctx context.Context, roomID int64, date string) (bool, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	rooms     roomrepo.RoomRepository
	customers customerrepo.CustomerRepository
	publisher events.Publisher
	validator *validator.BookingValidator
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	rooms roomrepo.RoomRepository,
	customers customerrepo.CustomerRepository,
	publisher events.Publisher,
	validator *validator.BookingValidator,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		rooms:     rooms,
		customers: customers,
		publisher: publisher,
		validator: validator,
		cfg:       cfg,
	}
}

// Propose decides whether a booking may be admitted. On success the booking
// is recorded with the next sequential ID, the customer directory is
// updated, and an event is emitted. On conflict nothing mutates.
func (s *bookingService) Propose(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	s.stampServerFields(booking)

	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return nil, apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}

	if _, err := s.rooms.FindByID(ctx, booking.RoomID); err != nil {
		if errors.Is(err, roomrepo.ErrNotFound) {
			return nil, apperrors.NotFound(msgRoomNotFound)
		}
		return nil, apperrors.Internal("Failed to look up room", err)
	}

	admitted, err := s.repo.Admit(ctx, booking, overlaps)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrTimeConflict) {
			s.cfg.Log.Info("Booking proposal rejected",
				"room_id", booking.RoomID,
				"date", booking.Date,
				"start_time", booking.StartTime,
				"end_time", booking.EndTime,
			)
			return nil, apperrors.Conflict(msgRoomAlreadyBooked)
		}
		return nil, apperrors.Internal("Failed to admit booking", err)
	}

	if _, err := s.customers.Ensure(ctx, admitted.CustomerName); err != nil {
		// The booking is already admitted; the directory upsert failing
		// would leave a dangling name, so treat it as internal.
		s.cfg.Log.Error("Failed to upsert customer after admission",
			"customer_name", admitted.CustomerName,
			"booking_id", admitted.ID,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to record customer", err)
	}

	s.publisher.BookingAdmitted(ctx, admitted)

	s.cfg.Log.Info("Booking admitted",
		"id", admitted.ID,
		"room_id", admitted.RoomID,
		"date", admitted.Date,
		"start_time", admitted.StartTime,
		"end_time", admitted.EndTime,
		"customer_name", admitted.CustomerName,
	)
	return admitted, nil
}

func (s *bookingService) GetByRoom(ctx context.Context, roomID int64) ([]*model.Booking, error) {
	bookings, err := s.repo.FindByRoom(ctx, roomID)
	if err != nil {
		return nil, apperrors.Internal("Failed to list bookings for room", err)
	}
	return bookings, nil
}

// GetByCustomer matches on the exact name string. An empty result is a
// valid outcome here; the boundary layer decides whether it means 404.
func (s *bookingService) GetByCustomer(ctx context.Context, customerName string) ([]*model.Booking, error) {
	bookings, err := s.repo.FindByCustomer(ctx, customerName)
	if err != nil {
		return nil, apperrors.Internal("Failed to list bookings for customer", err)
	}
	return bookings, nil
}

func (s *bookingService) IsBookedOn(ctx context.Context, roomID int64, date string) (bool, error) {
	booked, err := s.repo.HasBookingOn(ctx, roomID, date)
	if err != nil {
		return false, apperrors.Internal("Failed to check room occupancy", err)
	}
	return booked, nil
}

// stampServerFields resets everything the server owns. ID, status and the
// creation timestamp come from admission, never from the request body, so
// any client-supplied values are discarded before validation.
func (s *bookingService) stampServerFields(b *model.Booking) {
	b.ID = 0
	b.Status = model.StatusConfirmed
	b.CreatedAt = time.Time{}
}

// overlaps is the admission conflict rule for two slots on the same room
// and date. Intervals are half-open: a proposal touching an existing
// booking's boundary does not conflict. The third clause is not redundant;
// it catches proposals that fully span an existing booking even when both
// endpoints only touch its boundaries. Comparisons are lexical on the
// zero-padded HH:MM strings.
func overlaps(p, b *model.Booking) bool {
	return (p.StartTime >= b.StartTime && p.StartTime < b.EndTime) ||
		(p.EndTime > b.StartTime && p.EndTime <= b.EndTime) ||
		(p.StartTime <= b.StartTime && p.EndTime >= b.EndTime)
}
