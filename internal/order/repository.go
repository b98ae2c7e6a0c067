package order

import (
	"context"
	"sync"
)

type Repository interface {
	// Create persists the order and assigns its id: sequential starting at
	// 1, monotonic, never reused.
	Create(ctx context.Context, o *Order) error

	// GetByID returns nil, nil when no order has the given id.
	GetByID(ctx context.Context, id int) (*Order, error)
}

// MemoryRepository stores orders for the process lifetime only. Id
// assignment and insertion happen under one lock, so they are atomic from
// the caller's perspective.
type MemoryRepository struct {
	mu     sync.Mutex
	nextID int
	orders map[int]Order
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID: 1,
		orders: make(map[int]Order),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = r.nextID
	r.nextID++
	r.orders[o.ID] = *o
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}
