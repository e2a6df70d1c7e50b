package events

import (
	"context"
	"strconv"

	"roomly/pkg/kafka"
	"roomly/pkg/logger"
	"roomly/pkg/middleware"
	"roomly/pkg/model"
)

const (
	EventTypeBookingAdmitted = "booking.admitted"

	schemaVersion = "1"
	source        = "roomly"
)

// Publisher announces admitted bookings to downstream consumers. Admission
// never depends on it: publish failures are logged and swallowed so the
// booking outcome stays authoritative.
type Publisher interface {
	BookingAdmitted(ctx context.Context, booking *model.Booking)
	Close() error
}

type kafkaPublisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewKafkaPublisher(producer *kafka.Producer, log *logger.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		log:      log,
	}
}

func (p *kafkaPublisher) BookingAdmitted(ctx context.Context, booking *model.Booking) {
	// Key by room so all events for one room land on one partition in
	// admission order.
	msg := kafka.NewMessage().
		WithKey(strconv.FormatInt(booking.RoomID, 10)).
		WithValue(booking).
		WithEventType(EventTypeBookingAdmitted).
		WithCorrelationID(middleware.RequestIDFromContext(ctx)).
		WithSchemaVersion(schemaVersion).
		WithSource(source).
		Build()

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Error("Failed to publish booking event",
			"event_type", EventTypeBookingAdmitted,
			"booking_id", booking.ID,
			"room_id", booking.RoomID,
			"error", err,
		)
		return
	}

	p.log.Debug("Booking event published",
		"event_type", EventTypeBookingAdmitted,
		"event_id", msg.GetEventID(),
		"booking_id", booking.ID,
	)
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

type noopPublisher struct{}

// NewNoopPublisher is used when event publishing is disabled.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) BookingAdmitted(ctx context.Context, booking *model.Booking) {}

func (noopPublisher) Close() error { return nil }
