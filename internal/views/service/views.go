package service

import (
	"context"

	bookingrepo "roomly/internal/bookings/repository"
	customerrepo "roomly/internal/customers/repository"
	roomrepo "roomly/internal/rooms/repository"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/model"
)

const msgNoBookingsForCustomer = "No bookings found for this customer."

// ViewService builds the read-only projections. It joins the three stores
// and never mutates any of them; each projection is built from one snapshot
// of the booking ledger, so a half-admitted booking is never visible.
type ViewService interface {
	RoomsWithBookings(ctx context.Context, today string) ([]*model.RoomWithBookings, error)
	CustomersWithBookings(ctx context.Context) ([]*model.CustomerWithBookings, error)
	CustomerBookingDetails(ctx context.Context, customerName string) ([]*model.BookingDetail, error)
}

type viewService struct {
	rooms     roomrepo.RoomRepository
	customers customerrepo.CustomerRepository
	bookings  bookingrepo.BookingRepository
	cfg       *config.Config
}

func NewViewService(
	rooms roomrepo.RoomRepository,
	customers customerrepo.CustomerRepository,
	bookings bookingrepo.BookingRepository,
	cfg *config.Config,
) ViewService {
	return &viewService{
		rooms:     rooms,
		customers: customers,
		bookings:  bookings,
		cfg:       cfg,
	}
}

// RoomsWithBookings returns every room with its bookings (all dates) and a
// flag reporting whether the room has any booking on the given date.
func (s *viewService) RoomsWithBookings(ctx context.Context, today string) ([]*model.RoomWithBookings, error) {
	rooms, err := s.rooms.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list rooms", err)
	}
	bookings, err := s.bookings.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list bookings", err)
	}

	byRoom := make(map[int64][]*model.Booking)
	for _, b := range bookings {
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
	}

	views := make([]*model.RoomWithBookings, 0, len(rooms))
	for _, room := range rooms {
		view := &model.RoomWithBookings{
			Room:     *room,
			Bookings: make([]model.RoomSlot, 0, len(byRoom[room.ID])),
		}
		for _, b := range byRoom[room.ID] {
			if b.Date == today {
				view.BookedStatus = true
			}
			view.Bookings = append(view.Bookings, model.RoomSlot{
				CustomerName: b.CustomerName,
				Date:         b.Date,
				StartTime:    b.StartTime,
				EndTime:      b.EndTime,
			})
		}
		views = append(views, view)
	}
	return views, nil
}

// CustomersWithBookings returns every known customer with the slots they
// hold, in directory creation order.
func (s *viewService) CustomersWithBookings(ctx context.Context) ([]*model.CustomerWithBookings, error) {
	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list customers", err)
	}
	bookings, err := s.bookings.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list bookings", err)
	}

	byName := make(map[string][]*model.Booking)
	for _, b := range bookings {
		byName[b.CustomerName] = append(byName[b.CustomerName], b)
	}

	views := make([]*model.CustomerWithBookings, 0, len(customers))
	for _, customer := range customers {
		view := &model.CustomerWithBookings{
			CustomerName: customer.Name,
			Bookings:     make([]model.CustomerSlot, 0, len(byName[customer.Name])),
		}
		for _, b := range byName[customer.Name] {
			view.Bookings = append(view.Bookings, model.CustomerSlot{
				RoomID:    b.RoomID,
				Date:      b.Date,
				StartTime: b.StartTime,
				EndTime:   b.EndTime,
			})
		}
		views = append(views, view)
	}
	return views, nil
}

// CustomerBookingDetails returns the booking history for one customer.
// Zero bookings is a not-found outcome here, not an empty success: the
// directory only knows names through bookings, so an unbooked name is
// indistinguishable from an unknown one.
func (s *viewService) CustomerBookingDetails(ctx context.Context, customerName string) ([]*model.BookingDetail, error) {
	bookings, err := s.bookings.FindByCustomer(ctx, customerName)
	if err != nil {
		return nil, apperrors.Internal("Failed to list bookings for customer", err)
	}

	if len(bookings) == 0 {
		return nil, apperrors.NotFound(msgNoBookingsForCustomer)
	}

	details := make([]*model.BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		details = append(details, &model.BookingDetail{
			CustomerName:  b.CustomerName,
			RoomID:        b.RoomID,
			Date:          b.Date,
			StartTime:     b.StartTime,
			EndTime:       b.EndTime,
			BookingID:     b.ID,
			BookingDate:   b.CreatedAt,
			BookingStatus: b.Status,
		})
	}
	return details, nil
}
