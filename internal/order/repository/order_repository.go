package repository

import (
	"context"
	"database/sql"
	"fmt"

	"atelier/internal/domain"
	"atelier/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order, customerID uint) error {
	query := `
		INSERT INTO Orders (id, customerId, paymentMethod, subtotal, tax, deposit, total, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := tx.ExecContext(ctx, query,
		order.ID, customerID, order.PaymentMethod,
		order.Subtotal, order.Tax, order.Deposit, order.Total, order.Status,
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}
	return nil
}

// FindByID loads the order with its owned customer. Items are loaded by the
// item repository.
func (r *MySQLOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
		SELECT o.id, o.paymentMethod, o.subtotal, o.tax, o.deposit, o.total, o.status,
		       o.createdAt, o.updatedAt,
		       c.id, c.firstName, c.lastName, c.email, c.phone, c.address,
		       c.city, c.state, c.zip, c.notes, c.createdAt
		FROM Orders o
		JOIN Customers c ON c.id = o.customerId
		WHERE o.id = ?`

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.PaymentMethod, &order.Subtotal, &order.Tax, &order.Deposit,
		&order.Total, &order.Status, &order.CreatedAt, &order.UpdatedAt,
		&order.Customer.ID, &order.Customer.FirstName, &order.Customer.LastName,
		&order.Customer.Email, &order.Customer.Phone, &order.Customer.Address,
		&order.Customer.City, &order.Customer.State, &order.Customer.Zip,
		&order.Customer.Notes, &order.Customer.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}
	return &order, nil
}

func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE Orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}
	return nil
}
