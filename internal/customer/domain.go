// Package customer provides customer registration and lookup.
package customer

import "time"

// Address is embedded in its owning customer record and has no
// independent identity.
type Address struct {
	ZipCode string
	Street  string
}

// Customer represents a person who can hold credits.
type Customer struct {
	ID           int64
	FirstName    string
	LastName     string
	CPF          string
	Income       float64
	Email        string
	PasswordHash string
	Address      Address
	CreatedAt    time.Time
}
