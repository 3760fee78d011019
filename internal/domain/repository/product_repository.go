package repository

import (
	"context"

	"tienda/internal/domain/entity"
	"tienda/internal/errors"
)

// ErrProductNotFound is returned when no product matches the lookup key.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the persistence operations for catalog items.
// The catalog is pass-through storage; no invariants live here.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uint64) (*entity.Product, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uint64) error
}
