package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"atelier/internal/domain"
	"atelier/internal/errors"
)

type ProductFilter struct {
	CategoryID *int
	Gender     *domain.Gender
	Featured   *bool
}

type MySQLProductRepository struct {
	db *sql.DB
}

func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{db: db}
}

const productColumns = `id, name, description, price, images, categoryId, gender,
	       sizes, materials, inStock, featured, createdAt, updatedAt`

// List returns products matching every provided filter, newest first. Absent
// filters impose no constraint.
func (r *MySQLProductRepository) List(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM Products WHERE 1=1`
	var args []interface{}

	if filter.CategoryID != nil {
		query += " AND categoryId = ?"
		args = append(args, *filter.CategoryID)
	}
	if filter.Gender != nil {
		query += " AND gender = ?"
		args = append(args, string(*filter.Gender))
	}
	if filter.Featured != nil {
		query += " AND featured = ?"
		args = append(args, *filter.Featured)
	}
	query += " ORDER BY createdAt DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}
	return products, nil
}

func (r *MySQLProductRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM Products WHERE id = ?`

	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MySQLProductRepository) Insert(ctx context.Context, p domain.Product) (int, error) {
	images, sizes, materials, err := marshalLists(p)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO Products (name, description, price, images, categoryId, gender,
		                      sizes, materials, inStock, featured)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Description, p.Price, images, p.CategoryID, string(p.Gender),
		sizes, materials, p.InStock, p.Featured,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}
	return int(id), nil
}

func (r *MySQLProductRepository) Update(ctx context.Context, p domain.Product) error {
	images, sizes, materials, err := marshalLists(p)
	if err != nil {
		return err
	}

	query := `
		UPDATE Products
		SET name = ?, description = ?, price = ?, images = ?, categoryId = ?,
		    gender = ?, sizes = ?, materials = ?, inStock = ?, featured = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Description, p.Price, images, p.CategoryID, string(p.Gender),
		sizes, materials, p.InStock, p.Featured, p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", p.ID))
	}
	return nil
}

func (r *MySQLProductRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM Products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	return nil
}

// CountByCategory backs the category deletion guard.
func (r *MySQLProductRepository) CountByCategory(ctx context.Context, categoryID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM Products WHERE categoryId = ?`, categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting products by category: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var p domain.Product
	var gender string
	var images, sizes, materials []byte

	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &images, &p.CategoryID, &gender,
		&sizes, &materials, &p.InStock, &p.Featured, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return p, err
	}
	if err != nil {
		return p, fmt.Errorf("scanning product row: %w", err)
	}

	p.Gender = domain.Gender(gender)
	for _, col := range []struct {
		data []byte
		dest *[]string
	}{
		{images, &p.Images},
		{sizes, &p.Sizes},
		{materials, &p.Materials},
	} {
		if len(col.data) == 0 {
			continue
		}
		if err := json.Unmarshal(col.data, col.dest); err != nil {
			return p, fmt.Errorf("unmarshaling product list column: %w", err)
		}
	}
	return p, nil
}

func marshalLists(p domain.Product) (images, sizes, materials []byte, err error) {
	if images, err = json.Marshal(p.Images); err != nil {
		return nil, nil, nil, fmt.Errorf("marshaling images: %w", err)
	}
	if sizes, err = json.Marshal(p.Sizes); err != nil {
		return nil, nil, nil, fmt.Errorf("marshaling sizes: %w", err)
	}
	if materials, err = json.Marshal(p.Materials); err != nil {
		return nil, nil, nil, fmt.Errorf("marshaling materials: %w", err)
	}
	return images, sizes, materials, nil
}
