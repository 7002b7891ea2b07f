package address

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/dkazarev/techstore-service/pkg/apperror"
)

type AddressService interface {
	GetCities() ([]City, error)
	GetAddresses() ([]Address, error)
	GetAddressesByCitySlug(slug string) ([]Address, error)
	GetAddressByID(addressID uint) (*Address, error)
}

type addressService struct {
	storage Storage
	logger  *logrus.Entry
}

func NewService(storage Storage, log *logrus.Entry) AddressService {
	return &addressService{
		storage: storage,
		logger:  log,
	}
}

func (s *addressService) GetCities() ([]City, error) {
	return s.storage.GetCities()
}

func (s *addressService) GetAddresses() ([]Address, error) {
	return s.storage.GetAddresses()
}

func (s *addressService) GetAddressesByCitySlug(slug string) ([]Address, error) {
	city, err := s.storage.GetCityBySlug(slug)
	if err != nil {
		if errors.Is(err, errCityNotFound) {
			return nil, apperror.NotFound("city not found")
		}
		return nil, err
	}

	return s.storage.GetAddressesByCityID(city.ID)
}

func (s *addressService) GetAddressByID(addressID uint) (*Address, error) {
	addr, err := s.storage.GetAddressByID(addressID)
	if err != nil {
		if errors.Is(err, errAddressNotFound) {
			return nil, apperror.NotFound("address not found")
		}
		return nil, err
	}
	return addr, nil
}
