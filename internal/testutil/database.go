// Package testutil holds helpers for repository integration tests. They
// expect a local MySQL with an `atelier_test` database and skip otherwise.
package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/atelier_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	// Children first so foreign keys do not block the deletes.
	tables := []string{"OrderItems", "Orders", "Customers", "Products", "Categories", "StaffUsers"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

func SetupTestTables(t *testing.T, db *sql.DB) {
	createCategoriesTable := `
	CREATE TABLE IF NOT EXISTS Categories (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description TEXT,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createProductsTable := `
	CREATE TABLE IF NOT EXISTS Products (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		price DECIMAL(10,2) NOT NULL,
		images JSON,
		categoryId INT NOT NULL,
		gender VARCHAR(10) NOT NULL,
		sizes JSON,
		materials JSON,
		inStock TINYINT(1) NOT NULL DEFAULT 1,
		featured TINYINT(1) NOT NULL DEFAULT 0,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_category (categoryId),
		INDEX idx_gender (gender)
	)`

	createCustomersTable := `
	CREATE TABLE IF NOT EXISTS Customers (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		firstName VARCHAR(100) NOT NULL,
		lastName VARCHAR(100) NOT NULL,
		email VARCHAR(150) NOT NULL,
		phone VARCHAR(30) NOT NULL,
		address VARCHAR(255) NOT NULL,
		city VARCHAR(100) NOT NULL,
		state VARCHAR(50) NOT NULL,
		zip VARCHAR(20) NOT NULL,
		notes TEXT,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS Orders (
		id VARCHAR(32) NOT NULL PRIMARY KEY,
		customerId INT UNSIGNED NOT NULL,
		paymentMethod VARCHAR(30) NOT NULL,
		subtotal DECIMAL(10,2) NOT NULL,
		tax DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		deposit DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		total DECIMAL(10,2) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		FOREIGN KEY (customerId) REFERENCES Customers(id),
		INDEX idx_status (status)
	)`

	createOrderItemsTable := `
	CREATE TABLE IF NOT EXISTS OrderItems (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		orderId VARCHAR(32) NOT NULL,
		personName VARCHAR(100) NOT NULL,
		gender VARCHAR(10) NOT NULL,
		ageGroup VARCHAR(10) NOT NULL,
		occasion VARCHAR(100),
		designId VARCHAR(64) NOT NULL,
		designName VARCHAR(255) NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		sizingMode VARCHAR(10) NOT NULL,
		sizeLabel VARCHAR(10),
		measurements JSON,
		FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
		INDEX idx_order (orderId)
	)`

	createStaffUsersTable := `
	CREATE TABLE IF NOT EXISTS StaffUsers (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(150) NOT NULL UNIQUE,
		passwordHash VARCHAR(100) NOT NULL,
		name VARCHAR(100) NOT NULL,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"Categories", createCategoriesTable},
		{"Products", createProductsTable},
		{"Customers", createCustomersTable},
		{"Orders", createOrdersTable},
		{"OrderItems", createOrderItemsTable},
		{"StaffUsers", createStaffUsersTable},
	}

	for _, tbl := range tables {
		if _, err := db.Exec(tbl.query); err != nil {
			t.Fatalf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
