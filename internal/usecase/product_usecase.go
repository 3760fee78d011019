package usecase

import (
	"context"

	"tienda/internal/domain/entity"
)

// ProductInput defines the data for creating or updating a catalog item.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
}

// ProductUsecase defines the interface for the catalog's pass-through CRUD surface.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uint64) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, id uint64, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
}
