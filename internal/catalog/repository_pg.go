package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// DBPool matches the methods from *pgxpool.Pool that the repository uses.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	pool DBPool
}

func NewPostgresRepository(pool DBPool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) All(ctx context.Context) ([]Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, price::text, image FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, id int) (*Product, error) {
	var p Product
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, description, price::text, image FROM products WHERE id=$1`, id)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
