package service

import (
	"context"

	"roomly/internal/rooms/repository"
	"roomly/internal/rooms/validator"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/model"
)

// RoomService is the room registry. Rooms are write-once: created through
// Create, never updated or deleted.
type RoomService interface {
	Create(ctx context.Context, room *model.Room) (*model.Room, error)
	GetAll(ctx context.Context) ([]*model.Room, error)
}

type roomService struct {
	repo      repository.RoomRepository
	validator *validator.RoomValidator
	cfg       *config.Config
}

func NewRoomService(repo repository.RoomRepository, validator *validator.RoomValidator, cfg *config.Config) RoomService {
	return &roomService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *roomService) Create(ctx context.Context, room *model.Room) (*model.Room, error) {
	if err := s.validator.Validate(room); err != nil {
		s.cfg.Log.Warn("Room validation failed", "error", err)
		return nil, apperrors.Validation("Room validation failed", map[string]any{"error": err.Error()})
	}

	created, err := s.repo.Create(ctx, room)
	if err != nil {
		return nil, apperrors.Internal("Failed to create room", err)
	}

	s.cfg.Log.Info("Room created",
		"id", created.ID,
		"seats", created.Seats,
		"price_per_hour", created.PricePerHour,
	)
	return created, nil
}

func (s *roomService) GetAll(ctx context.Context) ([]*model.Room, error) {
	rooms, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list rooms", err)
	}
	return rooms, nil
}
