package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"atelier/internal/domain"
)

type MySQLOrderItemRepository struct {
	db *sql.DB
}

func NewMySQLOrderItemRepository(db *sql.DB) *MySQLOrderItemRepository {
	return &MySQLOrderItemRepository{db: db}
}

func (r *MySQLOrderItemRepository) Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error) {
	var measurements []byte
	if item.Measurements != nil {
		var err error
		measurements, err = json.Marshal(item.Measurements)
		if err != nil {
			return 0, fmt.Errorf("marshaling measurements: %w", err)
		}
	}

	query := `
		INSERT INTO OrderItems (orderId, personName, gender, ageGroup, occasion,
		                        designId, designName, price, sizingMode, sizeLabel, measurements)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := tx.ExecContext(ctx, query,
		item.OrderID, item.PersonName, string(item.Gender), string(item.AgeGroup), item.Occasion,
		item.DesignID, item.DesignName, item.Price, string(item.SizingMode), item.SizeLabel, measurements,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting order item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}
	return uint(id), nil
}

func (r *MySQLOrderItemRepository) ListByOrder(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	query := `
		SELECT id, orderId, personName, gender, ageGroup, occasion,
		       designId, designName, price, sizingMode, sizeLabel, measurements
		FROM OrderItems
		WHERE orderId = ?
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		var gender, ageGroup, sizingMode string
		var measurements []byte

		err := rows.Scan(
			&item.ID, &item.OrderID, &item.PersonName, &gender, &ageGroup, &item.Occasion,
			&item.DesignID, &item.DesignName, &item.Price, &sizingMode, &item.SizeLabel, &measurements,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}

		item.Gender = domain.Gender(gender)
		item.AgeGroup = domain.AgeGroup(ageGroup)
		item.SizingMode = domain.SizingMode(sizingMode)
		if len(measurements) > 0 {
			if err := json.Unmarshal(measurements, &item.Measurements); err != nil {
				return nil, fmt.Errorf("unmarshaling measurements: %w", err)
			}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}
	return items, nil
}
