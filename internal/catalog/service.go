package catalog

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/dkazarev/techstore-service/pkg/apperror"
)

type CatalogService interface {
	GetCategories() ([]Category, error)
	GetProducts(search string) ([]Product, error)
	GetProductByID(productID uint) (*Product, error)
	GetProductsByCategory(slug string, filter ProductFilter) ([]Product, error)
	FilterProducts(filter ProductFilter) ([]Product, error)

	GetProductReviews(productID uint) ([]ReviewView, error)
	AddReview(productID, profileID uint, rating int, comment string) (*Review, error)
	DeleteReview(reviewID, productID, profileID uint) error
}

type catalogService struct {
	storage Storage
	logger  *logrus.Entry
}

func NewService(storage Storage, log *logrus.Entry) CatalogService {
	return &catalogService{
		storage: storage,
		logger:  log,
	}
}

func (s *catalogService) GetCategories() ([]Category, error) {
	return s.storage.GetCategories()
}

func (s *catalogService) GetProducts(search string) ([]Product, error) {
	return s.storage.GetProducts(search)
}

func (s *catalogService) GetProductByID(productID uint) (*Product, error) {
	product, err := s.storage.GetProductByID(productID)
	if err != nil {
		if errors.Is(err, errProductNotFound) {
			return nil, apperror.NotFound("product not found")
		}
		return nil, err
	}
	return product, nil
}

// GetProductsByCategory keeps the observed contract of the category listing:
// an empty filtered result is a 404, unlike the plain product list.
func (s *catalogService) GetProductsByCategory(slug string, filter ProductFilter) ([]Product, error) {
	category, err := s.storage.GetCategoryBySlug(slug)
	if err != nil {
		if errors.Is(err, errCategoryNotFound) {
			return nil, apperror.NotFound("category not found")
		}
		return nil, err
	}

	products, err := s.storage.GetProductsFiltered(&category.ID, filter)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperror.NotFound("no products found for this category")
	}
	return products, nil
}

func (s *catalogService) FilterProducts(filter ProductFilter) ([]Product, error) {
	return s.storage.GetProductsFiltered(nil, filter)
}

// GetProductReviews returns NotFound when the product has no reviews,
// matching the rest of the catalog's empty-is-404 listings.
func (s *catalogService) GetProductReviews(productID uint) ([]ReviewView, error) {
	reviews, err := s.storage.GetReviewsByProductID(productID)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, apperror.NotFound("no reviews found for this product")
	}
	return reviews, nil
}

func (s *catalogService) AddReview(productID, profileID uint, rating int, comment string) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperror.ValidationFields(map[string]string{
			"rating": "rating must be between 1 and 5",
		})
	}

	if _, err := s.GetProductByID(productID); err != nil {
		return nil, err
	}

	exists, err := s.storage.ReviewExists(productID, profileID)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Debugf("addReview: duplicate review, product %d profile %d", productID, profileID)
		return nil, apperror.Validation("you have already reviewed this product")
	}

	review := &Review{
		ProductID: productID,
		ProfileID: profileID,
		Rating:    rating,
		Comment:   comment,
	}
	if _, err := s.storage.CreateReview(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *catalogService) DeleteReview(reviewID, productID, profileID uint) error {
	err := s.storage.DeleteReview(reviewID, productID, profileID)
	if err != nil {
		if errors.Is(err, errReviewNotFound) {
			return apperror.NotFound("review not found")
		}
		return err
	}
	return nil
}
