package postgres

import (
	"context"
	"testing"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func userColumns() []string {
	return []string{"id", "name", "email", "password_hash", "is_admin", "addresses", "created_at", "updated_at"}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows(userColumns()).
		AddRow(1, "Ana", "a@b.com", "$2a$10$hash", false, []byte(`[{"street":"Main","city":"X","country":"Y"}]`), nil, nil)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("a@b.com", 1).
		WillReturnRows(rows)

	user, err := repo.FindByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), user.ID)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	require.Len(t, user.Addresses, 1)
	assert.Equal(t, entity.Address{Street: "Main", City: "X", Country: "Y"}, user.Addresses[0])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("missing@b.com", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	user, err := repo.FindByEmail(context.Background(), "missing@b.com")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NullAddresses(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	// A user who never added an address has a NULL column; it must read as an
	// empty list, not an error.
	rows := sqlmock.NewRows(userColumns()).
		AddRow(5, "Luis", "l@b.com", "$2a$10$hash", false, nil, nil, nil)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WithArgs(5, 1).
		WillReturnRows(rows)

	user, err := repo.FindByID(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, user.Addresses)
	assert.Empty(t, user.Addresses)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByIDForUpdate_LocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows(userColumns()).
		AddRow(5, "Luis", "l@b.com", "$2a$10$hash", false, []byte(`[]`), nil, nil)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 .* FOR UPDATE`).
		WithArgs(5, 1).
		WillReturnRows(rows)

	user, err := repo.FindByIDForUpdate(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), user.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateAddresses(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET "addresses"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	addresses := []entity.Address{{Street: "Main", City: "X", Country: "Y"}}
	err := repo.UpdateAddresses(context.Background(), 5, addresses)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateAddresses_UnknownID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET "addresses"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 999).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateAddresses(context.Background(), 999, []entity.Address{{Street: "Main", City: "X", Country: "Y"}})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	user := &entity.User{Name: "Ana", Email: "a@b.com", PasswordHash: "$2a$10$hash"}
	err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), user.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
