package service

import "errors"

// ValidationError means caller-supplied data broke a precondition.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError means the referenced record does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// InvalidStateError means the requested transition is not allowed from the
// record's current state.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string { return e.Message }

// UnauthorizedError means the supplied credentials were rejected.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string { return e.Message }

var (
	ErrOrderHasNoItems    = &ValidationError{Message: "Order must have at least one item"}
	ErrItemIncomplete     = &ValidationError{Message: "Item price and quantity must not be null"}
	ErrCancelDelivered    = &InvalidStateError{Message: "Cannot cancel a delivered order"}
	ErrInvalidCredentials = &UnauthorizedError{Message: "Invalid email or password"}
	ErrGoogleAccount      = &UnauthorizedError{Message: "This account was created with Google. Please sign in with Google."}
	ErrUserExists         = &ValidationError{Message: "User already exists with this email"}
	ErrAdminExists        = &ValidationError{Message: "Email already registered"}

	ErrTitleRequired   = &ValidationError{Message: "Title is required"}
	ErrInvalidPrice    = &ValidationError{Message: "Valid price is required"}
	ErrInvalidRating   = &ValidationError{Message: "Rating must be between 1 and 5"}
	ErrNegativeStock   = &ValidationError{Message: "Stock quantity must not be negative"}
	ErrNameRequired    = &ValidationError{Message: "Name is required"}
	ErrMessageRequired = &ValidationError{Message: "Message is required"}
)

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsInvalidState(err error) bool {
	var target *InvalidStateError
	return errors.As(err, &target)
}

func IsUnauthorized(err error) bool {
	var target *UnauthorizedError
	return errors.As(err, &target)
}
