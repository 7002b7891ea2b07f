package address

import "errors"

var (
	errCityNotFound    = errors.New("city not found")
	errAddressNotFound = errors.New("address not found")
)
