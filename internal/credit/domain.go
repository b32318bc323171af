// Package credit provides credit issuance and retrieval for customers.
package credit

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle of a credit application.
type Status string

const (
	StatusPending  Status = "PENDING"  // Awaiting analysis
	StatusAccepted Status = "ACCEPTED" // Approved and active
	StatusRejected Status = "REJECTED" // Declined
)

// IsValid checks if the status is valid.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// Credit represents a loan issued to a customer, repaid in monthly
// installments. CreditCode is the public identifier; the numeric id
// never leaves the store.
type Credit struct {
	ID                   int64
	CreditCode           uuid.UUID
	CreditValue          float64
	DayFirstInstallment  time.Time
	NumberOfInstallments int
	Status               Status
	CustomerID           int64
	CreatedAt            time.Time
}
