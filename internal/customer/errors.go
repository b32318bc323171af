package customer

import "errors"

// Domain errors for customers.
var (
	// ErrNotFound indicates the requested customer does not exist.
	ErrNotFound = errors.New("customer not found")

	// Uniqueness violations surfaced from the store.
	ErrEmailTaken = errors.New("email already registered")
	ErrCPFTaken   = errors.New("cpf already registered")
)
