package credit

import (
	"time"

	"github.com/google/uuid"

	"github.com/creditdesk/creditdesk/internal/customer"
)

const dateLayout = "2006-01-02"

// IssueRequest represents a credit application payload.
type IssueRequest struct {
	CreditValue           float64 `json:"credit_value" validate:"required,gt=0"`
	DayFirstOfInstallment string  `json:"day_first_of_installment" validate:"required,datetime=2006-01-02"`
	NumberOfInstallments  int     `json:"number_of_installments" validate:"required,min=1,max=48"`
	CustomerID            int64   `json:"customer_id" validate:"required,gt=0"`
}

// FirstInstallmentDate parses the declared first installment day.
func (r IssueRequest) FirstInstallmentDate() (time.Time, error) {
	return time.Parse(dateLayout, r.DayFirstOfInstallment)
}

// Summary is the list projection of a credit.
type Summary struct {
	CreditCode           uuid.UUID `json:"credit_code"`
	CreditValue          float64   `json:"credit_value"`
	NumberOfInstallments int       `json:"number_of_installments"`
}

// NewSummary maps a credit to its list projection.
func NewSummary(c *Credit) Summary {
	return Summary{
		CreditCode:           c.CreditCode,
		CreditValue:          c.CreditValue,
		NumberOfInstallments: c.NumberOfInstallments,
	}
}

// View represents the full external projection of a credit. The owning
// customer is resolved separately at render time, so its fields stay
// nullable when resolution fails.
type View struct {
	CreditCode           uuid.UUID `json:"credit_code"`
	CreditValue          float64   `json:"credit_value"`
	DayFirstInstallment  string    `json:"day_first_of_installment"`
	NumberOfInstallments int       `json:"number_of_installments"`
	Status               Status    `json:"status"`
	EmailCustomer        *string   `json:"email_customer,omitempty"`
	IncomeCustomer       *float64  `json:"income_customer,omitempty"`
	CustomerID           *int64    `json:"customer_id,omitempty"`
}

// NewView maps a credit and its resolved owner to a view. A nil owner
// leaves the customer fields empty.
func NewView(c *Credit, owner *customer.Customer) View {
	v := View{
		CreditCode:           c.CreditCode,
		CreditValue:          c.CreditValue,
		DayFirstInstallment:  c.DayFirstInstallment.Format(dateLayout),
		NumberOfInstallments: c.NumberOfInstallments,
		Status:               c.Status,
	}
	if owner != nil {
		v.EmailCustomer = &owner.Email
		v.IncomeCustomer = &owner.Income
		v.CustomerID = &owner.ID
	}
	return v
}
