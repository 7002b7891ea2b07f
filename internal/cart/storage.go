package cart

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dkazarev/techstore-service/internal/catalog"
)

type Storage interface {
	GetCartWithItems(profileID uint) (*Cart, error)
	AddItem(profileID, productID uint, quantity int) (*CartItem, error)
	RemoveItem(profileID, itemID uint) error
	ClearItems(profileID uint) error
}

type CartStorage struct {
	db *gorm.DB
}

func NewStorage(db *gorm.DB) Storage {
	return &CartStorage{
		db: db,
	}
}

func (s *CartStorage) getCart(db *gorm.DB, profileID uint) (*Cart, error) {
	var cart Cart
	err := db.Where("profile_id = ?", profileID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func (s *CartStorage) GetCartWithItems(profileID uint) (*Cart, error) {
	var cart Cart
	err := s.db.Preload("Items.Product").Where("profile_id = ?", profileID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// AddItem creates a line for the product or increments an existing one.
// There is no stock check and no quantity cap at add time.
func (s *CartStorage) AddItem(profileID, productID uint, quantity int) (*CartItem, error) {
	var item *CartItem

	err := s.db.Transaction(func(tx *gorm.DB) error {
		cart, err := s.getCart(tx, profileID)
		if err != nil {
			return err
		}

		var product catalog.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errProductNotFound
			}
			return err
		}

		var existing CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&existing).Error
		if err == nil {
			existing.Quantity += quantity
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			existing.Product = product
			item = &existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		created := CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := tx.Create(&created).Error; err != nil {
			return fmt.Errorf("failed to create cart item - %w", err)
		}
		created.Product = product
		item = &created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (s *CartStorage) RemoveItem(profileID, itemID uint) error {
	cart, err := s.getCart(s.db, profileID)
	if err != nil {
		return err
	}

	result := s.db.Where("id = ? AND cart_id = ?", itemID, cart.ID).Delete(&CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errCartItemNotFound
	}
	return nil
}

func (s *CartStorage) ClearItems(profileID uint) error {
	cart, err := s.getCart(s.db, profileID)
	if err != nil {
		return err
	}

	return s.db.Where("cart_id = ?", cart.ID).Delete(&CartItem{}).Error
}
