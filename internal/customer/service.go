package customer

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// RepositoryPort describes the persistence operations the service needs.
type RepositoryPort interface {
	Create(ctx context.Context, c *Customer) (*Customer, error)
	GetByID(ctx context.Context, id int64) (*Customer, error)
}

// Service implements customer business operations.
type Service struct {
	repo RepositoryPort
}

// NewService creates a customer service.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Register hashes the password and persists a new customer.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Customer, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("customer: hash password: %w", err)
	}

	c := &Customer{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CPF:          req.CPF,
		Income:       req.Income,
		Email:        req.Email,
		PasswordHash: string(hash),
		Address: Address{
			ZipCode: req.ZipCode,
			Street:  req.Street,
		},
	}
	return s.repo.Create(ctx, c)
}

// FindByID returns the customer with the given id. The returned error
// wraps ErrNotFound with the id so callers can report which lookup failed.
func (s *Service) FindByID(ctx context.Context, id int64) (*Customer, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return s.repo.GetByID(ctx, id)
}
