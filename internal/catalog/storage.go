package catalog

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Storage interface {
	GetCategories() ([]Category, error)
	GetCategoryBySlug(slug string) (*Category, error)

	GetProducts(search string) ([]Product, error)
	GetProductByID(productID uint) (*Product, error)
	GetProductsFiltered(categoryID *uint, filter ProductFilter) ([]Product, error)

	GetReviewsByProductID(productID uint) ([]ReviewView, error)
	ReviewExists(productID, profileID uint) (bool, error)
	CreateReview(review *Review) (uint, error)
	DeleteReview(reviewID, productID, profileID uint) error
}

type CatalogStorage struct {
	db *gorm.DB
}

func NewStorage(db *gorm.DB) Storage {
	return &CatalogStorage{
		db: db,
	}
}

func (s *CatalogStorage) GetCategories() ([]Category, error) {
	var categories []Category
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories - %w", err)
	}
	return categories, nil
}

func (s *CatalogStorage) GetCategoryBySlug(slug string) (*Category, error) {
	var category Category
	err := s.db.Where("slug = ?", slug).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (s *CatalogStorage) GetProducts(search string) ([]Product, error) {
	var products []Product

	query := s.db.Order("name")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products - %w", err)
	}
	return products, nil
}

func (s *CatalogStorage) GetProductByID(productID uint) (*Product, error) {
	var product Product
	err := s.db.First(&product, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *CatalogStorage) GetProductsFiltered(categoryID *uint, filter ProductFilter) ([]Product, error) {
	query := s.db.Order("name")

	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if len(filter.Manufacturers) > 0 {
		query = query.Where("manufacturer IN ?", filter.Manufacturers)
	}
	if filter.MinYear != nil {
		query = query.Where("release_year >= ?", *filter.MinYear)
	}
	if filter.MaxYear != nil {
		query = query.Where("release_year <= ?", *filter.MaxYear)
	}

	var products []Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to filter products - %w", err)
	}
	return products, nil
}

func (s *CatalogStorage) GetReviewsByProductID(productID uint) ([]ReviewView, error) {
	var reviews []ReviewView
	err := s.db.Table("reviews").
		Select("reviews.id, reviews.product_id, reviews.profile_id, users.username, reviews.rating, reviews.comment, reviews.created_at, reviews.updated_at").
		Joins("JOIN profiles ON profiles.id = reviews.profile_id").
		Joins("JOIN users ON users.id = profiles.user_id").
		Where("reviews.product_id = ?", productID).
		Order("reviews.created_at DESC").
		Scan(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews - %w", err)
	}
	return reviews, nil
}

func (s *CatalogStorage) ReviewExists(productID, profileID uint) (bool, error) {
	var count int64
	err := s.db.Model(&Review{}).
		Where("product_id = ? AND profile_id = ?", productID, profileID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *CatalogStorage) CreateReview(review *Review) (uint, error) {
	result := s.db.Create(review)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to create review - %w", result.Error)
	}
	return review.ID, nil
}

func (s *CatalogStorage) DeleteReview(reviewID, productID, profileID uint) error {
	result := s.db.Where("id = ? AND product_id = ? AND profile_id = ?", reviewID, productID, profileID).
		Delete(&Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errReviewNotFound
	}
	return nil
}
