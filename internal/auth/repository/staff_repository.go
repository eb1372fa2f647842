package repository

import (
	"context"
	"database/sql"
	"fmt"

	"atelier/internal/domain"
	"atelier/internal/errors"
)

type MySQLStaffRepository struct {
	db *sql.DB
}

func NewMySQLStaffRepository(db *sql.DB) *MySQLStaffRepository {
	return &MySQLStaffRepository{db: db}
}

func (r *MySQLStaffRepository) FindByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	query := `
		SELECT id, email, passwordHash, name, createdAt
		FROM StaffUsers
		WHERE email = ?
	`

	var staff domain.StaffUser
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&staff.ID, &staff.Email, &staff.PasswordHash, &staff.Name, &staff.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("staff user %s not found", email))
	}
	if err != nil {
		return nil, fmt.Errorf("querying staff user by email: %w", err)
	}

	return &staff, nil
}
