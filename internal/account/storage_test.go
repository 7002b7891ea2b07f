package account

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock, sqlDB
}

func TestAddFavorite_Idempotent(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	storage := NewStorage(db)

	mock.ExpectQuery(`SELECT .* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).AddRow(10, "GPU", 499.00))

	// already in the set: the count short-circuits, no INSERT follows
	mock.ExpectQuery(`SELECT count\(\*\) FROM "favorite_products"`).
		WithArgs(4, 10).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := storage.AddFavorite(4, 10)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddFavorite_InsertsWhenAbsent(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	storage := NewStorage(db)

	mock.ExpectQuery(`SELECT .* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).AddRow(10, "GPU", 499.00))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "favorite_products"`).
		WithArgs(4, 10).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "favorite_products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := storage.AddFavorite(4, 10)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddFavorite_UnknownProduct(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	storage := NewStorage(db)

	mock.ExpectQuery(`SELECT .* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}))

	err := storage.AddFavorite(4, 99)
	assert.ErrorIs(t, err, errProductNotFound)
}

func TestRemoveFavorite_Absent(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	storage := NewStorage(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "favorite_products"`).
		WithArgs(4, 10).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := storage.RemoveFavorite(4, 10)
	assert.ErrorIs(t, err, errFavoriteNotFound)
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	storage := NewStorage(db)

	mock.ExpectQuery(`SELECT .* FROM "users"`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash"}))

	_, err := storage.GetUserByUsername("ghost")
	assert.ErrorIs(t, err, errUserNotFound)
}

func TestCreateAccount_UsernameTakenRollsBack(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	storage := NewStorage(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := storage.CreateAccount(&User{Username: "alice", Email: "alice@example.com"})
	assert.ErrorIs(t, err, errUsernameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}
