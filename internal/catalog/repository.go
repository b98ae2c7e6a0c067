package catalog

import "context"

// Repository exposes read-only access to the product catalog. The catalog is
// seeded once and never mutated afterwards.
type Repository interface {
	// All returns every product, ordered by id.
	All(ctx context.Context) ([]Product, error)

	// Get returns the product with the given id, or nil when it does not
	// exist. Absence is not an error; the handler decides what a missing
	// product means.
	Get(ctx context.Context, id int) (*Product, error)
}

type MemoryRepository struct {
	products []Product
}

// NewMemoryRepository builds an in-memory catalog from the given products.
// Ids are assigned sequentially from 1 in seed order.
func NewMemoryRepository(seed []Product) *MemoryRepository {
	products := make([]Product, len(seed))
	for i, p := range seed {
		p.ID = i + 1
		products[i] = p
	}
	return &MemoryRepository{products: products}
}

func (r *MemoryRepository) All(ctx context.Context) ([]Product, error) {
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int) (*Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}
