package catalog

import "errors"

var (
	errProductNotFound  = errors.New("product not found")
	errCategoryNotFound = errors.New("category not found")
	errReviewNotFound   = errors.New("review not found")
)
