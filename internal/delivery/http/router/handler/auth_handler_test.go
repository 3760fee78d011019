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

func newAuthTestServer(t *testing.T) (*mockUC.MockAuthUsecase, func(method, target, body string) *envelopeResult) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())

	e := newTestEcho(t)
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)

	return uc, func(method, target, body string) *envelopeResult {
		rec := doJSON(t, e, method, target, body, nil)

		return &envelopeResult{rec: rec, envelope: decodeEnvelope(t, rec)}
	}
}

func TestAuthHandler_Register_Created(t *testing.T) {
	uc, do := newAuthTestServer(t)

	uc.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "Secreto123"}).
		Return(&usecase.RegisterOutput{User: &entity.User{
			ID:        1,
			Name:      "Ana",
			Email:     "ana@example.com",
			Addresses: []entity.Address{},
		}}, nil)

	res := do(http.MethodPost, "/auth/register", `{"name":"Ana","email":"ana@example.com","password":"Secreto123"}`)

	require.Equal(t, http.StatusCreated, res.rec.Code)
	assert.True(t, res.envelope.Success)
	assert.NotContains(t, res.rec.Body.String(), "password")
	assert.NotContains(t, res.rec.Body.String(), "hash")
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	uc, do := newAuthTestServer(t)

	res := do(http.MethodPost, "/auth/register", `{"name":"Ana"}`)

	require.Equal(t, http.StatusBadRequest, res.rec.Code)
	assert.Equal(t, "Todos los campos son obligatorios", res.envelope.Message)
	// Request validation rejects the payload before the usecase runs.
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login_ReturnsToken(t *testing.T) {
	uc, do := newAuthTestServer(t)

	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "ana@example.com", Password: "Secreto123"}).
		Return(&usecase.LoginOutput{
			Token: "signed.token.value",
			User:  &entity.User{ID: 1, Name: "Ana", Email: "ana@example.com"},
		}, nil)

	res := do(http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"Secreto123"}`)

	require.Equal(t, http.StatusOK, res.rec.Code)
	assert.True(t, res.envelope.Success)
	assert.Contains(t, res.rec.Body.String(), "signed.token.value")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc, do := newAuthTestServer(t)

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

	res := do(http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"equivocada"}`)

	require.Equal(t, http.StatusBadRequest, res.rec.Code)
	assert.False(t, res.envelope.Success)
	assert.Equal(t, "Credenciales inválidas", res.envelope.Message)
}

func TestAuthHandler_Login_MissingCredentials(t *testing.T) {
	uc, do := newAuthTestServer(t)

	res := do(http.MethodPost, "/auth/login", `{"email":"ana@example.com"}`)

	require.Equal(t, http.StatusBadRequest, res.rec.Code)
	assert.Equal(t, "Email y contraseña son obligatorios", res.envelope.Message)
	uc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}
