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

func newAddressTestServer(t *testing.T) (*mockUC.MockAddressUsecase, func(method, target, body string) *envelopeResult) {
	uc := mockUC.NewMockAddressUsecase(t)
	h := NewAddressHandler(uc, newDiscardLogger())

	e := newTestEcho(t)
	e.POST("/users/:id/addresses", h.AddAddress)
	e.GET("/users/:id/addresses", h.ListAddresses)

	return uc, func(method, target, body string) *envelopeResult {
		rec := doJSON(t, e, method, target, body, nil)

		return &envelopeResult{rec: rec, envelope: decodeEnvelope(t, rec)}
	}
}

func TestAddressHandler_AddAddress_OK(t *testing.T) {
	uc, do := newAddressTestServer(t)

	uc.EXPECT().
		AddAddress(mock.Anything, &usecase.AddAddressInput{
			UserID:  1,
			Street:  "Calle Mayor 1",
			City:    "Madrid",
			Country: "España",
		}).
		Return(nil)

	res := do(http.MethodPost, "/users/1/addresses", `{"street":"Calle Mayor 1","city":"Madrid","country":"España"}`)

	require.Equal(t, http.StatusOK, res.rec.Code)
	assert.True(t, res.envelope.Success)
}

func TestAddressHandler_AddAddress_UnknownUser(t *testing.T) {
	uc, do := newAddressTestServer(t)

	uc.EXPECT().
		AddAddress(mock.Anything, mock.AnythingOfType("*usecase.AddAddressInput")).
		Return(errors.Wrap(domainerrors.ErrUserNotFound, "address add failed"))

	res := do(http.MethodPost, "/users/999/addresses", `{"street":"Calle Mayor 1","city":"Madrid","country":"España"}`)

	require.Equal(t, http.StatusNotFound, res.rec.Code)
	assert.Equal(t, "Usuario no encontrado", res.envelope.Message)
}

func TestAddressHandler_AddAddress_MissingField(t *testing.T) {
	uc, do := newAddressTestServer(t)

	res := do(http.MethodPost, "/users/1/addresses", `{"street":"Calle Mayor 1"}`)

	require.Equal(t, http.StatusBadRequest, res.rec.Code)
	assert.Equal(t, "Todos los campos son obligatorios", res.envelope.Message)
	// Request validation rejects the payload before the usecase runs.
	uc.AssertNotCalled(t, "AddAddress", mock.Anything, mock.Anything)
}

func TestAddressHandler_AddAddress_MalformedID(t *testing.T) {
	_, do := newAddressTestServer(t)

	res := do(http.MethodPost, "/users/abc/addresses", `{"street":"Calle Mayor 1","city":"Madrid","country":"España"}`)

	require.Equal(t, http.StatusNotFound, res.rec.Code)
	assert.Equal(t, "Usuario no encontrado", res.envelope.Message)
}

func TestAddressHandler_ListAddresses_OK(t *testing.T) {
	uc, do := newAddressTestServer(t)

	uc.EXPECT().
		ListAddresses(mock.Anything, uint64(1)).
		Return([]entity.Address{
			{Street: "Calle Mayor 1", City: "Madrid", Country: "España"},
			{Street: "Gran Vía 20", City: "Madrid", Country: "España"},
		}, nil)

	res := do(http.MethodGet, "/users/1/addresses", "")

	require.Equal(t, http.StatusOK, res.rec.Code)
	assert.True(t, res.envelope.Success)
	assert.Contains(t, res.rec.Body.String(), "Calle Mayor 1")
	assert.Contains(t, res.rec.Body.String(), "Gran Vía 20")
}

func TestAddressHandler_ListAddresses_EmptyListIsArray(t *testing.T) {
	uc, do := newAddressTestServer(t)

	uc.EXPECT().ListAddresses(mock.Anything, uint64(5)).Return(nil, nil)

	res := do(http.MethodGet, "/users/5/addresses", "")

	require.Equal(t, http.StatusOK, res.rec.Code)
	assert.Contains(t, res.rec.Body.String(), `"data":[]`)
}

func TestAddressHandler_ListAddresses_UnknownUser(t *testing.T) {
	uc, do := newAddressTestServer(t)

	uc.EXPECT().
		ListAddresses(mock.Anything, uint64(999)).
		Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "address list failed"))

	res := do(http.MethodGet, "/users/999/addresses", "")

	require.Equal(t, http.StatusNotFound, res.rec.Code)
	assert.Equal(t, "Usuario no encontrado", res.envelope.Message)
}
