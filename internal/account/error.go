package account

import "errors"

var (
	errUsernameTaken    = errors.New("username already taken")
	errEmailTaken       = errors.New("email already in use")
	errUserNotFound     = errors.New("user not found")
	errProfileNotFound  = errors.New("profile not found")
	errSessionNotFound  = errors.New("session not found")
	errPaymentNotFound  = errors.New("payment not found")
	errFavoriteNotFound = errors.New("product not in favorites")
	errProductNotFound  = errors.New("product not found")
)
