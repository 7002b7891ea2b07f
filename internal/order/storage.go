package order

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dkazarev/techstore-service/internal/account"
	"github.com/dkazarev/techstore-service/internal/address"
	"github.com/dkazarev/techstore-service/internal/cart"
)

type Storage interface {
	CreateOrderFromCart(profileID, addressID, paymentID uint) (*Order, error)
	GetOrdersByProfileID(profileID uint) ([]Order, error)
	GetOrderByID(orderID uint) (*Order, error)
}

type OrderStorage struct {
	db *gorm.DB
}

func NewStorage(db *gorm.DB) Storage {
	return &OrderStorage{
		db: db,
	}
}

// CreateOrderFromCart materializes the caller's cart into an order inside a
// single transaction: validate address and payment, snapshot every line's
// current product price into an order item, then drain the cart. Any failed
// step rolls the whole checkout back.
func (s *OrderStorage) CreateOrderFromCart(profileID, addressID, paymentID uint) (*Order, error) {
	var orderID uint

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var addr address.Address
		if err := tx.First(&addr, addressID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errAddressNotFound
			}
			return err
		}

		var payment account.Payment
		err := tx.Where("id = ? AND profile_id = ?", paymentID, profileID).First(&payment).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errPaymentNotFound
			}
			return err
		}

		var userCart cart.Cart
		err = tx.Preload("Items.Product").Where("profile_id = ?", profileID).First(&userCart).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errEmptyCart
			}
			return err
		}
		if userCart.TotalItems() == 0 {
			return errEmptyCart
		}

		newOrder := Order{
			ProfileID: profileID,
			Status:    StatusPending,
			AddressID: addressID,
			PaymentID: paymentID,
		}
		if err := tx.Create(&newOrder).Error; err != nil {
			return fmt.Errorf("failed to create order - %w", err)
		}

		for _, item := range userCart.Items {
			orderItem := OrderItem{
				OrderID:   newOrder.ID,
				ProductID: item.ProductID,
				Price:     item.Product.Price,
				Quantity:  item.Quantity,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return fmt.Errorf("failed to create order item - %w", err)
			}
		}

		if err := tx.Where("cart_id = ?", userCart.ID).Delete(&cart.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart - %w", err)
		}

		orderID = newOrder.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetOrderByID(orderID)
}

func (s *OrderStorage) GetOrdersByProfileID(profileID uint) ([]Order, error) {
	var orders []Order
	err := s.db.
		Preload("Items").
		Preload("Address").
		Preload("Payment").
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders - %w", err)
	}
	return orders, nil
}

func (s *OrderStorage) GetOrderByID(orderID uint) (*Order, error) {
	var order Order
	err := s.db.
		Preload("Items").
		Preload("Address").
		Preload("Payment").
		First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}
