package repository

import (
	"context"
	"errors"
	"sync"

	"roomly/pkg/model"
)

// ErrNotFound is returned when no room exists with the requested ID.
var ErrNotFound = errors.New("room not found")

// RoomRepository is the in-memory room registry. Rooms are append-only and
// keyed by their sequential ID.
type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) (*model.Room, error)
	FindByID(ctx context.Context, id int64) (*model.Room, error)
	FindAll(ctx context.Context) ([]*model.Room, error)
}

type memoryRoomRepository struct {
	mu     sync.RWMutex
	rooms  []*model.Room
	byID   map[int64]*model.Room
	nextID int64
}

func NewMemoryRoomRepository() RoomRepository {
	return &memoryRoomRepository{
		byID:   make(map[int64]*model.Room),
		nextID: 1,
	}
}

func (r *memoryRoomRepository) Create(ctx context.Context, room *model.Room) (*model.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *room
	created.ID = r.nextID
	r.nextID++

	stored := &created
	r.rooms = append(r.rooms, stored)
	r.byID[created.ID] = stored

	result := created
	return &result, nil
}

func (r *memoryRoomRepository) FindByID(ctx context.Context, id int64) (*model.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *room
	return &copied, nil
}

func (r *memoryRoomRepository) FindAll(ctx context.Context) ([]*model.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*model.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		copied := *room
		results = append(results, &copied)
	}
	return results, nil
}
