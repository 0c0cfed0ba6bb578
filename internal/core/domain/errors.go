package domain

import "errors"

var ErrUserExists = errors.New("user already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrNotAuthorized = errors.New("you are not authorized to perform this action")
var ErrProductNotFound = errors.New("product not found")
var ErrCategoryNotFound = errors.New("category not found")

// ErrAccountUnavailable is returned by cart operations when the supplied
// credentials do not match an active account. The message deliberately does
// not distinguish a missing user from a deactivated one.
var ErrAccountUnavailable = errors.New("user not found or account not active")

// ErrProductUnavailable is returned by cart operations when the product does
// not exist or is not visible (in_stock=false).
var ErrProductUnavailable = errors.New("product not found or out of stock")
