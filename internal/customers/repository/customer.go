package repository

import (
	"context"
	"sync"

	"roomly/pkg/model"

	"github.com/google/uuid"
)

// CustomerRepository is the in-memory customer directory, keyed by exact
// name. Ensure is the only write path; customers are never removed.
type CustomerRepository interface {
	Ensure(ctx context.Context, name string) (*model.Customer, error)
	FindAll(ctx context.Context) ([]*model.Customer, error)
}

type memoryCustomerRepository struct {
	mu        sync.RWMutex
	customers []*model.Customer
	byName    map[string]*model.Customer
}

func NewMemoryCustomerRepository() CustomerRepository {
	return &memoryCustomerRepository{
		byName: make(map[string]*model.Customer),
	}
}

// Ensure upserts by name: the first booking for a new name creates the
// record, every later one is a no-op.
func (r *memoryCustomerRepository) Ensure(ctx context.Context, name string) (*model.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byName[name]; ok {
		copied := *existing
		return &copied, nil
	}

	customer := &model.Customer{
		ID:   uuid.NewString(),
		Name: name,
	}
	r.customers = append(r.customers, customer)
	r.byName[name] = customer

	copied := *customer
	return &copied, nil
}

func (r *memoryCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*model.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		copied := *c
		results = append(results, &copied)
	}
	return results, nil
}
