package order

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/dkazarev/techstore-service/pkg/apperror"
)

type OrderService interface {
	CreateOrder(profileID, addressID, paymentID uint) (*Order, error)
	GetOrders(profileID uint) ([]Order, error)
	GetOrder(orderID, profileID uint) (*Order, error)
}

type orderService struct {
	storage Storage
	logger  *logrus.Entry
}

func NewService(storage Storage, log *logrus.Entry) OrderService {
	return &orderService{
		storage: storage,
		logger:  log,
	}
}

func (s *orderService) CreateOrder(profileID, addressID, paymentID uint) (*Order, error) {
	order, err := s.storage.CreateOrderFromCart(profileID, addressID, paymentID)
	if err != nil {
		switch {
		case errors.Is(err, errAddressNotFound):
			return nil, apperror.Validation("address not found")
		case errors.Is(err, errPaymentNotFound):
			return nil, apperror.Validation("payment not found")
		case errors.Is(err, errEmptyCart):
			return nil, apperror.Validation("cart is empty")
		}
		return nil, err
	}

	s.logger.Infof("created order %d for profile %d", order.ID, profileID)
	return order, nil
}

func (s *orderService) GetOrders(profileID uint) ([]Order, error) {
	orders, err := s.storage.GetOrdersByProfileID(profileID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}

func (s *orderService) GetOrder(orderID, profileID uint) (*Order, error) {
	order, err := s.storage.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, errOrderNotFound) {
			return nil, apperror.NotFound("order not found")
		}
		return nil, err
	}

	if order.ProfileID != profileID {
		return nil, apperror.Forbidden("you do not have access to this order")
	}

	return order, nil
}
