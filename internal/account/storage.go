package account

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dkazarev/techstore-service/internal/cart"
	"github.com/dkazarev/techstore-service/internal/catalog"
)

type Storage interface {
	CreateAccount(user *User) (*Profile, error)
	GetUserByUsername(username string) (*User, error)
	GetProfileByUserID(userID uint) (*Profile, error)
	GetProfileByID(profileID uint) (*Profile, error)

	CreateSession(session *Session) error
	GetSessionByToken(token string) (*Session, error)
	DeleteSession(token string) error

	GetFavorites(profileID uint) ([]catalog.Product, error)
	AddFavorite(profileID, productID uint) error
	RemoveFavorite(profileID, productID uint) error

	CreatePayment(payment *Payment) (uint, error)
	GetPaymentsByProfileID(profileID uint) ([]Payment, error)
	GetPaymentByID(paymentID, profileID uint) (*Payment, error)
	DeletePayment(paymentID, profileID uint) error
}

type AccountStorage struct {
	db *gorm.DB
}

func NewStorage(db *gorm.DB) Storage {
	return &AccountStorage{
		db: db,
	}
}

// CreateAccount creates the user, its profile and an empty cart as a single
// transaction. A failure at any step rolls back the whole account.
func (s *AccountStorage) CreateAccount(user *User) (*Profile, error) {
	var profile Profile

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errUsernameTaken
		}

		if err := tx.Model(&User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errEmailTaken
		}

		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user - %w", err)
		}

		profile = Profile{UserID: user.ID}
		if err := tx.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to create profile - %w", err)
		}

		if err := tx.Create(&cart.Cart{ProfileID: profile.ID}).Error; err != nil {
			return fmt.Errorf("failed to create cart - %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (s *AccountStorage) GetUserByUsername(username string) (*User, error) {
	var user User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *AccountStorage) GetProfileByUserID(userID uint) (*Profile, error) {
	var profile Profile
	err := s.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (s *AccountStorage) GetProfileByID(profileID uint) (*Profile, error) {
	var profile Profile
	err := s.db.Preload("User").First(&profile, profileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (s *AccountStorage) CreateSession(session *Session) error {
	if err := s.db.Create(session).Error; err != nil {
		return fmt.Errorf("failed to create session - %w", err)
	}
	return nil
}

func (s *AccountStorage) GetSessionByToken(token string) (*Session, error) {
	var session Session
	err := s.db.Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (s *AccountStorage) DeleteSession(token string) error {
	return s.db.Where("token = ?", token).Delete(&Session{}).Error
}

func (s *AccountStorage) GetFavorites(profileID uint) ([]catalog.Product, error) {
	var products []catalog.Product
	err := s.db.
		Joins("JOIN favorite_products ON favorite_products.product_id = products.id").
		Where("favorite_products.profile_id = ?", profileID).
		Order("products.name").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites - %w", err)
	}
	return products, nil
}

// AddFavorite is idempotent: adding a product that is already in the set
// leaves the set unchanged.
func (s *AccountStorage) AddFavorite(profileID, productID uint) error {
	var product catalog.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errProductNotFound
		}
		return err
	}

	var count int64
	err := s.db.Model(&FavoriteProduct{}).
		Where("profile_id = ? AND product_id = ?", profileID, productID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return s.db.Create(&FavoriteProduct{ProfileID: profileID, ProductID: productID}).Error
}

func (s *AccountStorage) RemoveFavorite(profileID, productID uint) error {
	result := s.db.Where("profile_id = ? AND product_id = ?", profileID, productID).
		Delete(&FavoriteProduct{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errFavoriteNotFound
	}
	return nil
}

func (s *AccountStorage) CreatePayment(payment *Payment) (uint, error) {
	if err := s.db.Create(payment).Error; err != nil {
		return 0, fmt.Errorf("failed to create payment - %w", err)
	}
	return payment.ID, nil
}

func (s *AccountStorage) GetPaymentsByProfileID(profileID uint) ([]Payment, error) {
	var payments []Payment
	if err := s.db.Where("profile_id = ?", profileID).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *AccountStorage) GetPaymentByID(paymentID, profileID uint) (*Payment, error) {
	var payment Payment
	err := s.db.Where("id = ? AND profile_id = ?", paymentID, profileID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (s *AccountStorage) DeletePayment(paymentID, profileID uint) error {
	result := s.db.Where("id = ? AND profile_id = ?", paymentID, profileID).Delete(&Payment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errPaymentNotFound
	}
	return nil
}
