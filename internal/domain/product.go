package domain

import "time"

type Product struct {
	ID          int
	Name        string
	Description string
	Price       float64
	Images      []string
	CategoryID  int
	Gender      Gender
	Sizes       []string
	Materials   []string
	InStock     bool
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Category struct {
	ID          int
	Name        string
	Description string
	// ProductCount is computed at read time, never stored.
	ProductCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
