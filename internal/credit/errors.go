package credit

import "errors"

// Domain errors for credits. Ownership violations stay distinct from
// missing records so the transport layer can answer 403 and 404
// respectively.
var (
	// ErrCreditNotFound indicates no credit exists under the given code.
	ErrCreditNotFound = errors.New("credit not found")

	// ErrNotCreditOwner indicates the credit exists but belongs to a
	// different customer.
	ErrNotCreditOwner = errors.New("credit does not belong to customer")

	// ErrFirstInstallmentTooLate rejects repayment schedules starting
	// three months or more from today.
	ErrFirstInstallmentTooLate = errors.New("first installment cannot be later than 3 months from now")
)
