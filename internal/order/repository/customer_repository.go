package repository

import (
	"context"
	"database/sql"
	"fmt"

	"atelier/internal/domain"
)

type MySQLCustomerRepository struct {
	db *sql.DB
}

func NewMySQLCustomerRepository(db *sql.DB) *MySQLCustomerRepository {
	return &MySQLCustomerRepository{db: db}
}

// Insert runs inside the order-creation transaction; a customer row is never
// created without its order.
func (r *MySQLCustomerRepository) Insert(ctx context.Context, tx *sql.Tx, c domain.Customer) (uint, error) {
	query := `
		INSERT INTO Customers (firstName, lastName, email, phone, address, city, state, zip, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := tx.ExecContext(ctx, query,
		c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.City, c.State, c.Zip, c.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting customer: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}
	return uint(id), nil
}
