package address

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Storage interface {
	GetCities() ([]City, error)
	GetCityBySlug(slug string) (*City, error)
	GetAddresses() ([]Address, error)
	GetAddressesByCityID(cityID uint) ([]Address, error)
	GetAddressByID(addressID uint) (*Address, error)
}

type AddressStorage struct {
	db *gorm.DB
}

func NewStorage(db *gorm.DB) Storage {
	return &AddressStorage{
		db: db,
	}
}

func (s *AddressStorage) GetCities() ([]City, error) {
	var cities []City
	if err := s.db.Order("name").Find(&cities).Error; err != nil {
		return nil, fmt.Errorf("failed to get cities - %w", err)
	}
	return cities, nil
}

func (s *AddressStorage) GetCityBySlug(slug string) (*City, error) {
	var city City
	err := s.db.Where("slug = ?", slug).First(&city).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errCityNotFound
		}
		return nil, err
	}
	return &city, nil
}

func (s *AddressStorage) GetAddresses() ([]Address, error) {
	var addresses []Address
	if err := s.db.Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to get addresses - %w", err)
	}
	return addresses, nil
}

func (s *AddressStorage) GetAddressesByCityID(cityID uint) ([]Address, error) {
	var addresses []Address
	if err := s.db.Where("city_id = ?", cityID).Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (s *AddressStorage) GetAddressByID(addressID uint) (*Address, error) {
	var addr Address
	err := s.db.First(&addr, addressID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errAddressNotFound
		}
		return nil, err
	}
	return &addr, nil
}
