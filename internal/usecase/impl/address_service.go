package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// AddressServiceParams holds dependencies for addressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddAddress appends one address to the end of a user's list.
//
// The persisted representation is a single serialized column, so the append is
// a read-modify-write of the whole list. Two concurrent appends reading the
// same prior list would silently drop one entry; the find-append-update
// therefore runs in one transaction holding a row lock on the user, which
// serializes concurrent appends and guarantees both survive.
func (srv *addressService) AddAddress(ctx context.Context, input *usecase.AddAddressInput) error {
	// Validation happens before any storage access.
	if strings.TrimSpace(input.Street) == "" || strings.TrimSpace(input.City) == "" || strings.TrimSpace(input.Country) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "address input incomplete")
	}

	srv.log(ctx).Debug("Adding address", slog.Uint64("userID", input.UserID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByIDForUpdate(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "address add failed")
			}

			return errors.Wrap(err, "failed to load user for address add")
		}

		// Append to the end; existing entries are never shrunk or reordered.
		updated := append(user.Addresses, entity.Address{
			Street:  input.Street,
			City:    input.City,
			Country: input.Country,
		})

		if err := userRepo.UpdateAddresses(ctx, input.UserID, updated); err != nil {
			return errors.Wrap(err, "failed to persist updated address list")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add address", slog.Uint64("userID", input.UserID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Address added", slog.Uint64("userID", input.UserID))

	return nil
}

// ListAddresses returns the user's address list in insertion order.
func (srv *addressService) ListAddresses(ctx context.Context, userID uint64) ([]entity.Address, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "address list failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user.Addresses, nil
}
