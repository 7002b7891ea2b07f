package order

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

func TestCreateOrderFromCart_SnapshotsPricesAndClearsCart(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()
	mock.MatchExpectationsInOrder(false)

	storage := NewStorage(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "addresses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "city_id", "name"}).AddRow(2, 1, "Nezavisimosti 12"))
	mock.ExpectQuery(`SELECT .* FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id", "payment_type", "card_number", "expiry_date"}).
			AddRow(3, 1, "card", "4111111111111111", "12/27"))
	mock.ExpectQuery(`SELECT .* FROM "carts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id"}).AddRow(4, 1))
	mock.ExpectQuery(`SELECT .* FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "product_id", "quantity"}).
			AddRow(1, 4, 10, 2).
			AddRow(2, 4, 11, 1))
	mock.ExpectQuery(`SELECT .* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).
			AddRow(10, "GPU", 10.00).
			AddRow(11, "SSD", 5.00))
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	// the snapshot: current product prices are copied into the order items
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WithArgs(1, 10, 10.00, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WithArgs(1, 11, 5.00, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	mock.ExpectExec(`DELETE FROM "cart_items"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	// reload with nested associations
	mock.ExpectQuery(`SELECT .* FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id", "status", "address_id", "payment_id"}).
			AddRow(1, 1, "pending", 2, 3))
	mock.ExpectQuery(`SELECT .* FROM "addresses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "city_id", "name"}).AddRow(2, 1, "Nezavisimosti 12"))
	mock.ExpectQuery(`SELECT .* FROM "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "price", "quantity"}).
			AddRow(1, 1, 10, 10.00, 2).
			AddRow(2, 1, 11, 5.00, 1))
	mock.ExpectQuery(`SELECT .* FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id", "payment_type", "card_number", "expiry_date"}).
			AddRow(3, 1, "card", "4111111111111111", "12/27"))

	order, err := storage.CreateOrderFromCart(1, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.InDelta(t, 10.00, order.Items[0].Price, 0.0001)
	assert.InDelta(t, 5.00, order.Items[1].Price, 0.0001)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrderFromCart_EmptyCart(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()
	mock.MatchExpectationsInOrder(false)

	storage := NewStorage(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "addresses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "city_id", "name"}).AddRow(2, 1, "Nezavisimosti 12"))
	mock.ExpectQuery(`SELECT .* FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id"}).AddRow(3, 1))
	mock.ExpectQuery(`SELECT .* FROM "carts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id"}).AddRow(4, 1))
	mock.ExpectQuery(`SELECT .* FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "product_id", "quantity"}))
	mock.ExpectRollback()

	_, err := storage.CreateOrderFromCart(1, 2, 3)
	assert.ErrorIs(t, err, errEmptyCart)

	// nothing was inserted and the cart was left untouched
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrderFromCart_MissingAddress(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	storage := NewStorage(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "addresses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "city_id", "name"}))
	mock.ExpectRollback()

	_, err := storage.CreateOrderFromCart(1, 99, 3)
	assert.ErrorIs(t, err, errAddressNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrderFromCart_MissingPayment(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	storage := NewStorage(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "addresses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "city_id", "name"}).AddRow(2, 1, "Nezavisimosti 12"))
	mock.ExpectQuery(`SELECT .* FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id"}))
	mock.ExpectRollback()

	_, err := storage.CreateOrderFromCart(1, 2, 99)
	assert.ErrorIs(t, err, errPaymentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
