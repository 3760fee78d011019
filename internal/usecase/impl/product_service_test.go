package impl

import (
	"context"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	mockRepo "tienda/internal/mocks/repository"
	"tienda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return productServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			assert.Equal(t, "Camiseta", product.Name)
			product.ID = 1
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.ProductInput{
		Name:  "Camiseta",
		Price: 19.99,
		Stock: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(1), product.ID)
}

func TestProductService_CreateProduct_MissingName(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	_, err := fx.service.CreateProduct(ctx, &usecase.ProductInput{Name: "  ", Price: 5})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, uint64(999)).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, 999)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_ListProducts_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	products := []*entity.Product{
		{ID: 1, Name: "Camiseta"},
		{ID: 2, Name: "Pantalón"},
	}
	fx.productRepo.EXPECT().FindAll(ctx).Return(products, nil)

	got, err := fx.service.ListProducts(ctx)

	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrProductNotFound)

	_, err := fx.service.UpdateProduct(ctx, 999, &usecase.ProductInput{Name: "Camiseta"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_DeleteProduct_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().Delete(ctx, uint64(2)).Return(nil)

	err := fx.service.DeleteProduct(ctx, 2)

	require.NoError(t, err)
}
