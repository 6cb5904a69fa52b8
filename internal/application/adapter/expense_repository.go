// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseFilter represents the filtering criteria for expense queries.
// Every query is scoped to UserID; the remaining fields are optional.
type ExpenseFilter struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// ExpensePagination represents pagination parameters for expense queries.
// Page is 1-indexed.
type ExpensePagination struct {
	Page  int
	Limit int
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByIDAndUser retrieves an expense by ID scoped to its owning user.
	// A miss for any reason, including foreign ownership, is ErrExpenseNotFound.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error)

	// Update persists changes to an existing expense.
	Update(ctx context.Context, expense *entity.Expense) error

	// DeleteByIDAndUser removes an expense scoped to its owning user.
	// Deleting a record not owned by userID is ErrExpenseNotFound.
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error

	// FindByFilter retrieves expenses matching the filter, ordered by date
	// descending, with their categories joined. A page past the end of the
	// result set yields an empty page, not an error.
	FindByFilter(ctx context.Context, filter ExpenseFilter, pagination ExpensePagination) (*entity.ExpenseListResult, error)

	// FindAllByUser retrieves every expense owned by the user with categories
	// joined, ordered by date descending. Used for CSV export.
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ExpenseWithCategory, error)
}
