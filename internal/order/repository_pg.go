package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// DBPool matches the methods from *pgxpool.Pool that the repository uses.
type DBPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository persists orders in an orders table whose serial primary
// key provides the sequential ids.
type PostgresRepository struct {
	pool DBPool
}

func NewPostgresRepository(pool DBPool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Create(ctx context.Context, o *Order) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO orders (customer_name, email, address, city, state, zip_code, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, o.CustomerName, o.Email, o.Address, o.City, o.State, o.ZipCode, o.Total)
	if err := row.Scan(&o.ID); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Order, error) {
	var o Order
	row := r.pool.QueryRow(ctx, `
		SELECT id, customer_name, email, address, city, state, zip_code, total::text
		FROM orders WHERE id=$1
	`, id)
	err := row.Scan(&o.ID, &o.CustomerName, &o.Email, &o.Address, &o.City, &o.State, &o.ZipCode, &o.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select order: %w", err)
	}
	return &o, nil
}
