package impl

import (
	"context"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	mockRepo "tienda/internal/mocks/repository"
	mockSvc "tienda/internal/mocks/service"
	"tienda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Secreto123").Return("$2a$10$stubhash", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "Ana", user.Name)
			assert.Equal(t, "ana@example.com", user.Email)
			assert.Equal(t, "$2a$10$stubhash", user.PasswordHash)
			assert.Empty(t, user.Addresses)
			user.ID = 1
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "Secreto123",
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(1), output.User.ID)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Ana",
		Email:    "",
		Password: "Secreto123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Register_HashesExactlyOnce(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Secreto123").Return("$2a$10$stubhash", nil).Once()
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "Secreto123",
	})

	require.NoError(t, err)
	fx.hasher.AssertNumberOfCalls(t, "Hash", 1)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           1,
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "$2a$10$stubhash",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Secreto123", "$2a$10$stubhash").Return(true)
	fx.tokenService.EXPECT().Issue(uint64(1), "ana@example.com").Return("signed.token.value", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "Secreto123",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", output.Token)
	assert.Equal(t, uint64(1), output.User.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           1,
		Email:        "ana@example.com",
		PasswordHash: "$2a$10$stubhash",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("equivocada", "$2a$10$stubhash").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "equivocada",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "nadie@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nadie@example.com",
		Password: "Secreto123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

// Unknown email and wrong password must surface the same sentinel, so a caller
// cannot probe which accounts exist.
func TestAuthService_Login_FailureModesIndistinguishable(t *testing.T) {
	fxUnknown := createTestAuthService(t)
	ctx := context.Background()

	fxUnknown.userRepo.EXPECT().FindByEmail(ctx, "nadie@example.com").Return(nil, repository.ErrUserNotFound)
	_, errUnknown := fxUnknown.service.Login(ctx, &usecase.LoginInput{Email: "nadie@example.com", Password: "x"})

	fxWrong := createTestAuthService(t)
	user := &entity.User{ID: 1, Email: "ana@example.com", PasswordHash: "$2a$10$stubhash"}
	fxWrong.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil)
	fxWrong.hasher.EXPECT().Check("x", "$2a$10$stubhash").Return(false)
	_, errWrong := fxWrong.service.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "x"})

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.ErrorIs(t, errUnknown, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_MissingCredentials(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: ""})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
}

func TestAuthService_GetProfile_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: 5, Email: "ana@example.com", Name: "Ana"}
	fx.userRepo.EXPECT().FindByID(ctx, uint64(5)).Return(user, nil)

	got, err := fx.service.GetProfile(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, uint64(999)).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, 999)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
