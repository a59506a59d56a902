package services

import "errors"

var (
	// ErrNotFound is returned when the target record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidQuantity is returned when a stock reduction is asked
	// for a non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrInvalidCredentials covers both unknown emails and password
	// mismatches so the two cases are indistinguishable to a caller.
	ErrInvalidCredentials = errors.New("Invalid credentials.")

	// ErrInactiveAccount is returned when credentials check out but the
	// account is disabled.
	ErrInactiveAccount = errors.New("User account is not active.")

	// ErrEmailExists is returned on registration with a taken email.
	ErrEmailExists = errors.New("email already exists")
)

// ValidationError marks a rejected field value on the write path.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
