// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user entity. The password hash is written here once and
// never rewritten by any other operation in this repository.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM, err := fromUserDomain(user)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM)
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM)
}

// FindByIDForUpdate retrieves a user while taking a SELECT ... FOR UPDATE row
// lock. Inside a transaction this serializes concurrent read-modify-write
// cycles on the serialized address column, closing the lost-update window
// between reading the list and writing it back.
func (repo *userRepository) FindByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to lock user row")
	}

	return toUserDomain(&userM)
}

// UpdateAddresses replaces the user's whole serialized address list in a
// single UPDATE statement.
func (repo *userRepository) UpdateAddresses(ctx context.Context, id uint64, addresses []entity.Address) error {
	raw, err := marshalAddresses(addresses)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("addresses", raw)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update addresses")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) (*entity.User, error) {
	if data == nil {
		return nil, nil
	}

	addresses, err := unmarshalAddresses(data.Addresses)
	if err != nil {
		return nil, err
	}

	return &entity.User{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		IsAdmin:      data.IsAdmin,
		Addresses:    addresses,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}, nil
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) (*model.UserModel, error) {
	if data == nil {
		return nil, nil
	}

	raw, err := marshalAddresses(data.Addresses)
	if err != nil {
		return nil, err
	}

	return &model.UserModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		IsAdmin:      data.IsAdmin,
		Addresses:    raw,
	}, nil
}

// marshalAddresses serializes the address list into the JSON column value.
// A nil list serializes as an empty array, never as NULL.
func marshalAddresses(addresses []entity.Address) (datatypes.JSON, error) {
	if addresses == nil {
		addresses = []entity.Address{}
	}

	raw, err := json.Marshal(addresses)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize addresses")
	}

	return datatypes.JSON(raw), nil
}

// unmarshalAddresses deserializes the JSON column value. An absent or NULL
// column reads as an empty list, so a user's first address never fails.
func unmarshalAddresses(raw datatypes.JSON) ([]entity.Address, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []entity.Address{}, nil
	}

	var addresses []entity.Address
	if err := json.Unmarshal(raw, &addresses); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize addresses")
	}

	return addresses, nil
}
