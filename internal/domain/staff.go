package domain

import "time"

type StaffUser struct {
	ID           uint
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}
