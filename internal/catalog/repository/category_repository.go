package repository

import (
	"context"
	"database/sql"
	"fmt"

	"atelier/internal/domain"
	"atelier/internal/errors"
)

type MySQLCategoryRepository struct {
	db *sql.DB
}

func NewMySQLCategoryRepository(db *sql.DB) *MySQLCategoryRepository {
	return &MySQLCategoryRepository{db: db}
}

// List returns all categories with their computed product counts.
func (r *MySQLCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT c.id, c.name, c.description, COUNT(p.id), c.createdAt, c.updatedAt
		FROM Categories c
		LEFT JOIN Products p ON p.categoryId = c.id
		GROUP BY c.id, c.name, c.description, c.createdAt, c.updatedAt
		ORDER BY c.name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ProductCount, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}
	return categories, nil
}

func (r *MySQLCategoryRepository) FindByID(ctx context.Context, id int) (*domain.Category, error) {
	query := `SELECT id, name, description, createdAt, updatedAt FROM Categories WHERE id = ?`

	var c domain.Category
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("category with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying category by id: %w", err)
	}
	return &c, nil
}

func (r *MySQLCategoryRepository) Insert(ctx context.Context, c domain.Category) (int, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO Categories (name, description) VALUES (?, ?)`,
		c.Name, c.Description,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}
	return int(id), nil
}

func (r *MySQLCategoryRepository) Update(ctx context.Context, c domain.Category) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE Categories SET name = ?, description = ? WHERE id = ?`,
		c.Name, c.Description, c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("category with id %d not found", c.ID))
	}
	return nil
}

func (r *MySQLCategoryRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM Categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("category with id %d not found", id))
	}
	return nil
}
