package credit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/creditdesk/creditdesk/internal/platform/db"
)

// Repository persists credits in PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a PostgreSQL-backed credit repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a credit and fills in its generated id.
func (r *Repository) Create(ctx context.Context, c *Credit) (*Credit, error) {
	const query = `
		INSERT INTO credits (credit_code, credit_value, day_first_installment, number_of_installments, status, customer_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	now := time.Now()
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query,
			c.CreditCode, c.CreditValue, c.DayFirstInstallment, c.NumberOfInstallments,
			c.Status, c.CustomerID, now,
		).Scan(&c.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("credit: create: %w", err)
	}
	c.CreatedAt = now
	return c, nil
}

// GetByCode fetches a single credit by its public code.
func (r *Repository) GetByCode(ctx context.Context, code uuid.UUID) (*Credit, error) {
	const query = `
		SELECT id, credit_code, credit_value, day_first_installment, number_of_installments, status, customer_id, created_at
		FROM credits
		WHERE credit_code = $1`

	var c Credit
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&c.ID, &c.CreditCode, &c.CreditValue, &c.DayFirstInstallment,
		&c.NumberOfInstallments, &c.Status, &c.CustomerID, &c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: code %s", ErrCreditNotFound, code)
	}
	if err != nil {
		return nil, fmt.Errorf("credit: get by code: %w", err)
	}
	return &c, nil
}

// ListByCustomer fetches the credits of a customer in insertion order.
func (r *Repository) ListByCustomer(ctx context.Context, customerID int64) ([]Credit, error) {
	const query = `
		SELECT id, credit_code, credit_value, day_first_installment, number_of_installments, status, customer_id, created_at
		FROM credits
		WHERE customer_id = $1
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("credit: list by customer: %w", err)
	}
	defer rows.Close()

	var credits []Credit
	for rows.Next() {
		var c Credit
		if err := rows.Scan(
			&c.ID, &c.CreditCode, &c.CreditValue, &c.DayFirstInstallment,
			&c.NumberOfInstallments, &c.Status, &c.CustomerID, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("credit: scan row: %w", err)
		}
		credits = append(credits, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("credit: iterate rows: %w", err)
	}
	return credits, nil
}
