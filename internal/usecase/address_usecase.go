package usecase

import (
	"context"

	"tienda/internal/domain/entity"
)

// AddAddressInput defines the data required to append one address to a user's list.
type AddAddressInput struct {
	UserID  uint64
	Street  string
	City    string
	Country string
}

// AddressUsecase defines the interface for address-list operations.
// The list is append-only: entries are never removed, edited, or reordered.
type AddressUsecase interface {
	// AddAddress appends one validated address to the end of the user's list.
	AddAddress(ctx context.Context, input *AddAddressInput) error

	// ListAddresses returns the user's address list in insertion order.
	ListAddresses(ctx context.Context, userID uint64) ([]entity.Address, error)
}
