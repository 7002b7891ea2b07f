package cart

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/dkazarev/techstore-service/pkg/apperror"
)

type CartService interface {
	GetCart(profileID uint) (CartView, error)
	AddItem(profileID, productID uint, quantity int) (*CartItem, error)
	RemoveItem(profileID, itemID uint) error
	Clear(profileID uint) error
}

type cartService struct {
	storage Storage
	logger  *logrus.Entry
}

func NewService(storage Storage, log *logrus.Entry) CartService {
	return &cartService{
		storage: storage,
		logger:  log,
	}
}

func (s *cartService) GetCart(profileID uint) (CartView, error) {
	cart, err := s.storage.GetCartWithItems(profileID)
	if err != nil {
		if errors.Is(err, errCartNotFound) {
			return CartView{}, apperror.NotFound("cart not found")
		}
		return CartView{}, err
	}
	return NewCartView(cart), nil
}

func (s *cartService) AddItem(profileID, productID uint, quantity int) (*CartItem, error) {
	if quantity < 1 {
		return nil, apperror.ValidationFields(map[string]string{
			"quantity": "quantity must be at least 1",
		})
	}

	item, err := s.storage.AddItem(profileID, productID, quantity)
	if err != nil {
		switch {
		case errors.Is(err, errProductNotFound):
			return nil, apperror.Validation("product not found")
		case errors.Is(err, errCartNotFound):
			return nil, apperror.NotFound("cart not found")
		}
		return nil, err
	}
	return item, nil
}

func (s *cartService) RemoveItem(profileID, itemID uint) error {
	err := s.storage.RemoveItem(profileID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, errCartItemNotFound):
			return apperror.NotFound("cart item not found")
		case errors.Is(err, errCartNotFound):
			return apperror.NotFound("cart not found")
		}
		return err
	}
	return nil
}

func (s *cartService) Clear(profileID uint) error {
	err := s.storage.ClearItems(profileID)
	if err != nil {
		if errors.Is(err, errCartNotFound) {
			return apperror.NotFound("cart not found")
		}
		return err
	}
	return nil
}
