package order

import "errors"

var (
	errOrderNotFound   = errors.New("order not found")
	errAddressNotFound = errors.New("address not found")
	errPaymentNotFound = errors.New("payment not found")
	errEmptyCart       = errors.New("cart is empty")
)
