package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
)

var _ ProductRepository = (*MemoryProductRepository)(nil)

// MemoryProductRepository keeps products in process memory, in insertion order.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	order    []uuid.UUID
	products map[uuid.UUID]model.Product
	lastTime time.Time
	now      func() time.Time
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[uuid.UUID]model.Product),
		now:      time.Now,
	}
}

// WithDB returns the repository itself; the memory store has no connection to swap.
func (r *MemoryProductRepository) WithDB(_ db.DB) ProductRepository {
	return r
}

func (r *MemoryProductRepository) ListAllProducts(_ context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, r.products[id])
	}
	return products, nil
}

func (r *MemoryProductRepository) GetProduct(_ context.Context, id uuid.UUID) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return model.Product{}, ErrNotFound
	}
	return p, nil
}

func (r *MemoryProductRepository) CreateProduct(_ context.Context, params CreateProductParams) (model.Product, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return model.Product{}, fmt.Errorf("generate uuid v7: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.tick()
	p := model.Product{
		ID:          id,
		Name:        params.Name,
		Price:       params.Price,
		Description: params.Description,
		InStock:     params.InStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.products[id] = p
	r.order = append(r.order, id)

	return p, nil
}

func (r *MemoryProductRepository) UpdateProduct(_ context.Context, id uuid.UUID, params UpdateProductParams) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return model.Product{}, ErrNotFound
	}

	if params.Name != nil {
		p.Name = *params.Name
	}
	if params.Price != nil {
		p.Price = *params.Price
	}
	if params.Description != nil {
		p.Description = *params.Description
	}
	if params.InStock != nil {
		p.InStock = *params.InStock
	}
	p.UpdatedAt = r.tick()
	r.products[id] = p

	return p, nil
}

func (r *MemoryProductRepository) DeleteProduct(_ context.Context, id uuid.UUID) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return model.Product{}, ErrNotFound
	}

	delete(r.products, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return p, nil
}

func (r *MemoryProductRepository) DeleteAllProducts(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.order))
	r.products = make(map[uuid.UUID]model.Product)
	r.order = nil

	return n, nil
}

// tick returns the current time truncated to microseconds, like Postgres
// timestamptz, and strictly after the previous tick. Callers hold mu.
func (r *MemoryProductRepository) tick() time.Time {
	now := r.now().UTC().Truncate(time.Microsecond)
	if !now.After(r.lastTime) {
		now = r.lastTime.Add(time.Microsecond)
	}
	r.lastTime = now
	return now
}
