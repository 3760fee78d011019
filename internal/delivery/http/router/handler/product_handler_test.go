package handler

import (
	"net/http"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	mockUC "tienda/internal/mocks/usecase"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductTestServer(t *testing.T) (*mockUC.MockProductUsecase, func(method, target, body string) *envelopeResult) {
	uc := mockUC.NewMockProductUsecase(t)
	h := NewProductHandler(uc, newDiscardLogger())

	e := newTestEcho(t)
	e.POST("/products", h.CreateProduct)
	e.GET("/products", h.ListProducts)
	e.GET("/products/:id", h.GetProduct)
	e.PUT("/products/:id", h.UpdateProduct)
	e.DELETE("/products/:id", h.DeleteProduct)

	return uc, func(method, target, body string) *envelopeResult {
		rec := doJSON(t, e, method, target, body, nil)

		return &envelopeResult{rec: rec, envelope: decodeEnvelope(t, rec)}
	}
}

func TestProductHandler_Create_Created(t *testing.T) {
	uc, do := newProductTestServer(t)

	uc.EXPECT().
		CreateProduct(mock.Anything, &usecase.ProductInput{Name: "Camiseta", Description: "Algodón", Price: 19.99, Stock: 10}).
		Return(&entity.Product{ID: 1, Name: "Camiseta", Description: "Algodón", Price: 19.99, Stock: 10}, nil)

	res := do(http.MethodPost, "/products", `{"name":"Camiseta","description":"Algodón","price":19.99,"stock":10}`)

	require.Equal(t, http.StatusCreated, res.rec.Code)
	assert.True(t, res.envelope.Success)
}

func TestProductHandler_Create_MissingName(t *testing.T) {
	uc, do := newProductTestServer(t)

	res := do(http.MethodPost, "/products", `{"description":"Algodón","price":19.99}`)

	require.Equal(t, http.StatusBadRequest, res.rec.Code)
	assert.Equal(t, "Todos los campos son obligatorios", res.envelope.Message)
	uc.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	uc, do := newProductTestServer(t)

	uc.EXPECT().
		GetProduct(mock.Anything, uint64(999)).
		Return(nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed"))

	res := do(http.MethodGet, "/products/999", "")

	require.Equal(t, http.StatusNotFound, res.rec.Code)
	assert.Equal(t, "Producto no encontrado", res.envelope.Message)
}

func TestProductHandler_List_OK(t *testing.T) {
	uc, do := newProductTestServer(t)

	uc.EXPECT().
		ListProducts(mock.Anything).
		Return([]*entity.Product{{ID: 1, Name: "Camiseta"}, {ID: 2, Name: "Pantalón"}}, nil)

	res := do(http.MethodGet, "/products", "")

	require.Equal(t, http.StatusOK, res.rec.Code)
	assert.Contains(t, res.rec.Body.String(), "Camiseta")
	assert.Contains(t, res.rec.Body.String(), "Pantalón")
}

func TestProductHandler_Update_OK(t *testing.T) {
	uc, do := newProductTestServer(t)

	uc.EXPECT().
		UpdateProduct(mock.Anything, uint64(2), &usecase.ProductInput{Name: "Pantalón", Price: 29.99, Stock: 4}).
		Return(&entity.Product{ID: 2, Name: "Pantalón", Price: 29.99, Stock: 4}, nil)

	res := do(http.MethodPut, "/products/2", `{"name":"Pantalón","price":29.99,"stock":4}`)

	require.Equal(t, http.StatusOK, res.rec.Code)
	assert.True(t, res.envelope.Success)
}

func TestProductHandler_Delete_OK(t *testing.T) {
	uc, do := newProductTestServer(t)

	uc.EXPECT().DeleteProduct(mock.Anything, uint64(2)).Return(nil)

	res := do(http.MethodDelete, "/products/2", "")

	require.Equal(t, http.StatusOK, res.rec.Code)
	assert.True(t, res.envelope.Success)
}
