// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single expense record owned by exactly one user.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Description string
	Date        time.Time // calendar date, midnight UTC
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity. The date is truncated to a
// calendar date; no time component is stored.
func NewExpense(
	userID uuid.UUID,
	categoryID uuid.UUID,
	amount decimal.Decimal,
	description string,
	date time.Time,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: description,
		Date:        TruncateToDate(date),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Revise returns a copy of the expense with the mutable fields replaced.
// Ownership never changes: the user reference is carried over untouched.
func (e *Expense) Revise(categoryID uuid.UUID, amount decimal.Decimal, description string, date time.Time) *Expense {
	revised := *e
	revised.CategoryID = categoryID
	revised.Amount = amount
	revised.Description = description
	revised.Date = TruncateToDate(date)
	revised.UpdatedAt = time.Now().UTC()
	return &revised
}

// TruncateToDate drops the time component, keeping the calendar date in UTC.
func TruncateToDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ExpenseWithCategory pairs an expense with its category for listings.
type ExpenseWithCategory struct {
	Expense  *Expense
	Category *Category
}

// ExpenseListResult represents one page of a filtered expense listing.
type ExpenseListResult struct {
	Expenses   []*ExpenseWithCategory
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
