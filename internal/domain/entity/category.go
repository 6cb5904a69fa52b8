// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryNames is the fixed set of categories seeded at startup.
// Categories are shared across all users.
var DefaultCategoryNames = []string{
	"Food",
	"Transport",
	"Utilities",
	"Entertainment",
	"Healthcare",
	"Shopping",
	"Other",
}

// Category represents an expense category in the Expense Tracker system.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string) *Category {
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}
