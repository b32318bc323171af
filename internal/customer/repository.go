package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists customers in PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a PostgreSQL-backed customer repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a customer and fills in its generated id.
func (r *Repository) Create(ctx context.Context, c *Customer) (*Customer, error) {
	const query = `
		INSERT INTO customers (first_name, last_name, cpf, income, email, password_hash, zip_code, street, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	now := time.Now()
	err := r.pool.QueryRow(ctx, query,
		c.FirstName, c.LastName, c.CPF, c.Income, c.Email, c.PasswordHash,
		c.Address.ZipCode, c.Address.Street, now,
	).Scan(&c.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "cpf") {
				return nil, ErrCPFTaken
			}
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("customer: create: %w", err)
	}
	c.CreatedAt = now
	return c, nil
}

// GetByID fetches a single customer by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Customer, error) {
	const query = `
		SELECT id, first_name, last_name, cpf, income, email, password_hash, zip_code, street, created_at
		FROM customers
		WHERE id = $1`

	var c Customer
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.CPF, &c.Income, &c.Email,
		&c.PasswordHash, &c.Address.ZipCode, &c.Address.Street, &c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("customer: get by id: %w", err)
	}
	return &c, nil
}
