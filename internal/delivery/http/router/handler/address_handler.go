package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tienda/internal/delivery/http/response"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddAddressRequest is the payload for appending one address.
type AddAddressRequest struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// AddressHandler holds dependencies for address-list handlers.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddAddress appends one address to the end of a user's list.
func (h *AddressHandler) AddAddress(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input AddAddressRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Cuerpo de la petición inválido")
	}

	if err := c.Validate(&input); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	if err := h.uc.AddAddress(c.Request().Context(), &usecase.AddAddressInput{
		UserID:  userID,
		Street:  input.Street,
		City:    input.City,
		Country: input.Country,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dirección agregada correctamente")
}

// ListAddresses returns the user's address list in insertion order.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	addresses, err := h.uc.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	if addresses == nil {
		addresses = []entity.Address{}
	}

	return response.Success(c, http.StatusOK, addresses, "Direcciones recuperadas correctamente")
}

// parseUserID reads the numeric user id path parameter. A malformed id can
// never match a row, so it maps to the same not-found error as an unknown id.
func parseUserID(c echo.Context) (uint64, error) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.Wrap(domainerrors.ErrUserNotFound, "malformed user id")
	}

	return userID, nil
}
