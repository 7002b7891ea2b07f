package account

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/dkazarev/techstore-service/internal/catalog"
	"github.com/dkazarev/techstore-service/pkg/apperror"
)

type AccountService interface {
	Register(username, email, password string) (*ProfileView, error)
	Login(username, password string) (*Session, error)
	Logout(token string) error
	Authenticate(token string) (*Session, error)
	GetProfile(profileID uint) (*ProfileView, error)

	GetFavorites(profileID uint) ([]catalog.Product, error)
	AddFavorite(profileID, productID uint) error
	RemoveFavorite(profileID, productID uint) error

	AddPayment(profileID uint, paymentType, cardNumber, expiryDate string) (*Payment, error)
	GetPayments(profileID uint) ([]Payment, error)
	GetPayment(paymentID, profileID uint) (*Payment, error)
	DeletePayment(paymentID, profileID uint) error
}

type accountService struct {
	storage    Storage
	logger     *logrus.Entry
	sessionTTL time.Duration
}

func NewService(storage Storage, log *logrus.Entry, sessionTTL time.Duration) AccountService {
	return &accountService{
		storage:    storage,
		logger:     log,
		sessionTTL: sessionTTL,
	}
}

func (s *accountService) Register(username, email, password string) (*ProfileView, error) {
	fields := map[string]string{}
	if strings.TrimSpace(username) == "" {
		fields["username"] = "username is required"
	}
	if strings.TrimSpace(email) == "" {
		fields["email"] = "email is required"
	}
	if len(password) < 8 {
		fields["password"] = "password must be at least 8 characters"
	}
	if len(fields) > 0 {
		return nil, apperror.ValidationFields(fields)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	profile, err := s.storage.CreateAccount(user)
	if err != nil {
		switch {
		case errors.Is(err, errUsernameTaken):
			return nil, apperror.Conflict("username already taken")
		case errors.Is(err, errEmailTaken):
			return nil, apperror.Conflict("email already in use")
		}
		return nil, err
	}

	s.logger.Infof("registered account %s (profile %d)", username, profile.ID)

	return &ProfileView{
		ID:               profile.ID,
		Username:         user.Username,
		Email:            user.Email,
		FavoriteProducts: []catalog.Product{},
	}, nil
}

func (s *accountService) Login(username, password string) (*Session, error) {
	user, err := s.storage.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, errUserNotFound) {
			return nil, apperror.Unauthorized("invalid username or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("invalid username or password")
	}

	profile, err := s.storage.GetProfileByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	session := &Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ProfileID: profile.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.storage.CreateSession(session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *accountService) Logout(token string) error {
	return s.storage.DeleteSession(token)
}

func (s *accountService) Authenticate(token string) (*Session, error) {
	session, err := s.storage.GetSessionByToken(token)
	if err != nil {
		if errors.Is(err, errSessionNotFound) {
			return nil, apperror.Unauthorized("authentication required")
		}
		return nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		if err := s.storage.DeleteSession(token); err != nil {
			s.logger.Errorf("authenticate: failed to drop expired session - %v", err)
		}
		return nil, apperror.Unauthorized("session expired")
	}

	return session, nil
}

func (s *accountService) GetProfile(profileID uint) (*ProfileView, error) {
	profile, err := s.storage.GetProfileByID(profileID)
	if err != nil {
		if errors.Is(err, errProfileNotFound) {
			return nil, apperror.NotFound("profile not found")
		}
		return nil, err
	}

	favorites, err := s.storage.GetFavorites(profileID)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []catalog.Product{}
	}

	return &ProfileView{
		ID:               profile.ID,
		Username:         profile.User.Username,
		Email:            profile.User.Email,
		City:             profile.CityID,
		FavoriteProducts: favorites,
	}, nil
}

func (s *accountService) GetFavorites(profileID uint) ([]catalog.Product, error) {
	favorites, err := s.storage.GetFavorites(profileID)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []catalog.Product{}
	}
	return favorites, nil
}

func (s *accountService) AddFavorite(profileID, productID uint) error {
	err := s.storage.AddFavorite(profileID, productID)
	if err != nil {
		if errors.Is(err, errProductNotFound) {
			return apperror.NotFound("product not found")
		}
		return err
	}
	return nil
}

func (s *accountService) RemoveFavorite(profileID, productID uint) error {
	err := s.storage.RemoveFavorite(profileID, productID)
	if err != nil {
		if errors.Is(err, errFavoriteNotFound) {
			return apperror.NotFound("product not in favorites")
		}
		return err
	}
	return nil
}

func (s *accountService) AddPayment(profileID uint, paymentType, cardNumber, expiryDate string) (*Payment, error) {
	fields := map[string]string{}
	if strings.TrimSpace(paymentType) == "" {
		fields["payment_type"] = "payment type is required"
	}
	if strings.TrimSpace(cardNumber) == "" {
		fields["card_number"] = "card number is required"
	}
	if strings.TrimSpace(expiryDate) == "" {
		fields["expiry_date"] = "expiry date is required"
	}
	if len(fields) > 0 {
		return nil, apperror.ValidationFields(fields)
	}

	payment := &Payment{
		ProfileID:   profileID,
		PaymentType: paymentType,
		CardNumber:  cardNumber,
		ExpiryDate:  expiryDate,
	}
	if _, err := s.storage.CreatePayment(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *accountService) GetPayments(profileID uint) ([]Payment, error) {
	payments, err := s.storage.GetPaymentsByProfileID(profileID)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []Payment{}
	}
	return payments, nil
}

func (s *accountService) GetPayment(paymentID, profileID uint) (*Payment, error) {
	payment, err := s.storage.GetPaymentByID(paymentID, profileID)
	if err != nil {
		if errors.Is(err, errPaymentNotFound) {
			return nil, apperror.NotFound("payment not found")
		}
		return nil, err
	}
	return payment, nil
}

func (s *accountService) DeletePayment(paymentID, profileID uint) error {
	err := s.storage.DeletePayment(paymentID, profileID)
	if err != nil {
		if errors.Is(err, errPaymentNotFound) {
			return apperror.NotFound("payment not found")
		}
		return err
	}
	return nil
}
