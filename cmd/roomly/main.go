package main

import (
	bookinghandler "roomly/internal/bookings/handler"
	bookingrepo "roomly/internal/bookings/repository"
	bookingservice "roomly/internal/bookings/service"
	bookingvalidator "roomly/internal/bookings/validator"
	customerhandler "roomly/internal/customers/handler"
	customerrepo "roomly/internal/customers/repository"
	"roomly/internal/events"
	roomhandler "roomly/internal/rooms/handler"
	roomrepo "roomly/internal/rooms/repository"
	roomservice "roomly/internal/rooms/service"
	roomvalidator "roomly/internal/rooms/validator"
	viewservice "roomly/internal/views/service"
	"roomly/pkg/app"
	"roomly/pkg/config"
	"roomly/pkg/kafka"
	kafka_config "roomly/pkg/kafka/config"
)

const ServiceName = "roomly"

func main() {
	cfg := config.Load(ServiceName)

	rooms := roomrepo.NewMemoryRoomRepository()
	customers := customerrepo.NewMemoryCustomerRepository()
	bookings := bookingrepo.NewMemoryBookingRepository()

	publisher := newPublisher(cfg)
	defer func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	}()

	roomSvc := roomservice.NewRoomService(rooms, roomvalidator.NewRoomValidator(cfg.Log), cfg)
	bookingSvc := bookingservice.NewBookingService(
		bookings,
		rooms,
		customers,
		publisher,
		bookingvalidator.NewBookingValidator(cfg.Log),
		cfg,
	)
	viewSvc := viewservice.NewViewService(rooms, customers, bookings, cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		roomhandler.NewRoomHandler(roomSvc, viewSvc, cfg.Log),
		bookinghandler.NewBookingHandler(bookingSvc, cfg.Log),
		customerhandler.NewCustomerHandler(viewSvc, cfg.Log),
	)
	serverApp.Run()
}

func newPublisher(cfg *config.Config) events.Publisher {
	if !cfg.EventsEnabled {
		return events.NewNoopPublisher()
	}

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}

	producer, err := kafka.NewProducer(kafkaCfg, cfg.BookingEventsTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	cfg.Log.Info("Booking event publishing enabled",
		"topic", cfg.BookingEventsTopic,
		"brokers", kafkaCfg.Brokers,
	)
	return events.NewKafkaPublisher(producer, cfg.Log)
}
