package credit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/creditdesk/creditdesk/internal/customer"
)

// Repayment must start strictly before this many months from today.
const maxFirstInstallmentOffsetMonths = 3

// RepositoryPort describes the persistence operations the service needs.
type RepositoryPort interface {
	Create(ctx context.Context, c *Credit) (*Credit, error)
	GetByCode(ctx context.Context, code uuid.UUID) (*Credit, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]Credit, error)
}

// CustomerResolver resolves credit owners. Satisfied by *customer.Service.
type CustomerResolver interface {
	FindByID(ctx context.Context, id int64) (*customer.Customer, error)
}

// Service implements credit business operations.
type Service struct {
	repo      RepositoryPort
	customers CustomerResolver
	cache     *Cache
	now       func() time.Time
}

// NewService creates a credit service. cache may be nil.
func NewService(repo RepositoryPort, customers CustomerResolver, cache *Cache) *Service {
	return &Service{repo: repo, customers: customers, cache: cache, now: time.Now}
}

// Issue validates the repayment schedule, verifies the applying
// customer exists and persists a new pending credit. Nothing is
// written when any check fails.
func (s *Service) Issue(ctx context.Context, req IssueRequest) (*Credit, error) {
	firstInstallment, err := req.FirstInstallmentDate()
	if err != nil {
		return nil, fmt.Errorf("credit: parse first installment day: %w", err)
	}
	if err := s.checkFirstInstallment(firstInstallment); err != nil {
		return nil, err
	}
	if _, err := s.customers.FindByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	c := &Credit{
		CreditCode:           uuid.New(),
		CreditValue:          req.CreditValue,
		DayFirstInstallment:  firstInstallment,
		NumberOfInstallments: req.NumberOfInstallments,
		Status:               StatusPending,
		CustomerID:           req.CustomerID,
	}
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	// Stale list projections are tolerable, the write already succeeded.
	_ = s.cache.Bump(ctx)
	return created, nil
}

// checkFirstInstallment compares calendar days, so a schedule starting
// exactly three months from today is already too late.
func (s *Service) checkFirstInstallment(day time.Time) error {
	today := s.now()
	limit := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, maxFirstInstallmentOffsetMonths, 0)
	if !day.Before(limit) {
		return ErrFirstInstallmentTooLate
	}
	return nil
}

// ListByCustomer returns the credits issued to the given customer in
// insertion order. An unknown customer simply yields an empty list.
func (s *Service) ListByCustomer(ctx context.Context, customerID int64) ([]Summary, error) {
	key, err := s.cache.BuildKey(ctx, keyCustomerCredits(customerID)...)
	if err != nil {
		return nil, err
	}

	var out []Summary
	err = s.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (any, error) {
		credits, err := s.repo.ListByCustomer(ctx, customerID)
		if err != nil {
			return nil, err
		}
		summaries := make([]Summary, 0, len(credits))
		for i := range credits {
			summaries = append(summaries, NewSummary(&credits[i]))
		}
		return summaries, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByCode fetches a credit by its public code and verifies the
// requesting customer owns it.
func (s *Service) GetByCode(ctx context.Context, code uuid.UUID, customerID int64) (*Credit, error) {
	c, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if c.CustomerID != customerID {
		return nil, fmt.Errorf("%w: credit %s", ErrNotCreditOwner, code)
	}
	return c, nil
}
