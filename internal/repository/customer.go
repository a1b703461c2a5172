package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/custview/custview/internal/model"
)

const customerColumns = `sno, customer_name, age, phone, location, created_at`

// ListCustomers returns every customer row in store order.
// No filtering, sorting or paging is applied beyond the stable sno order.
func (r *Repository) ListCustomers(ctx context.Context) ([]*model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY sno`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]*model.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

// CountCustomers returns the number of stored customers.
func (r *Repository) CountCustomers(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

// InsertCustomer stores a customer and fills in the generated sno.
// CreatedAt is written as given; a zero value falls back to the column default.
func (r *Repository) InsertCustomer(ctx context.Context, c *model.Customer) error {
	query := `
		INSERT INTO customers (customer_name, age, phone, location, created_at)
		VALUES ($1, $2, $3, $4, COALESCE($5, NOW()))
		RETURNING sno, created_at
	`

	var createdAt any
	if !c.CreatedAt.IsZero() {
		createdAt = c.CreatedAt
	}

	err := r.pool.QueryRow(ctx, query,
		c.CustomerName,
		c.Age,
		c.Phone,
		c.Location,
		createdAt,
	).Scan(&c.Sno, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}

	return nil
}

// scanCustomer scans a row from pgx.Rows into a Customer model.
func scanCustomer(rows pgx.Rows) (*model.Customer, error) {
	var c model.Customer
	err := rows.Scan(
		&c.Sno,
		&c.CustomerName,
		&c.Age,
		&c.Phone,
		&c.Location,
		&c.CreatedAt,
	)
	return &c, err
}
