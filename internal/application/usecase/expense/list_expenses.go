// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

const (
	// DefaultPageSize is the page size used when the caller does not ask
	// for one.
	DefaultPageSize = 10
	// MaxPageSize caps the page size a caller may request.
	MaxPageSize = 100

	dateLayout = "2006-01-02"
)

// ListExpensesInput represents the input for listing expenses. StartDate and
// EndDate are raw YYYY-MM-DD strings; empty means unset.
type ListExpensesInput struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	StartDate  string
	EndDate    string
	Page       int
	Limit      int
}

// ExpenseItem represents a single expense in the listing output.
type ExpenseItem struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	Amount       decimal.Decimal
	Description  string
	Date         time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses   []*ExpenseItem
	Pagination PaginationOutput
}

// ListExpensesUseCase handles filtered, paginated expense listing.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense listing. Results are ordered by date
// descending. Pagination is 1-indexed; a page past the last one comes back
// empty rather than failing.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	startDate, err := parseDate(input.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(input.EndDate)
	if err != nil {
		return nil, err
	}

	filter := adapter.ExpenseFilter{
		UserID:     input.UserID,
		CategoryID: input.CategoryID,
		StartDate:  startDate,
		EndDate:    endDate,
	}

	result, err := uc.expenseRepo.FindByFilter(ctx, filter, adapter.ExpensePagination{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	items := make([]*ExpenseItem, len(result.Expenses))
	for i, ewc := range result.Expenses {
		item := &ExpenseItem{
			ID:          ewc.Expense.ID,
			CategoryID:  ewc.Expense.CategoryID,
			Amount:      ewc.Expense.Amount,
			Description: ewc.Expense.Description,
			Date:        ewc.Expense.Date,
			CreatedAt:   ewc.Expense.CreatedAt,
			UpdatedAt:   ewc.Expense.UpdatedAt,
		}
		if ewc.Category != nil {
			item.CategoryName = ewc.Category.Name
		}
		items[i] = item
	}

	return &ListExpensesOutput{
		Expenses: items,
		Pagination: PaginationOutput{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}, nil
}

// parseDate parses an optional YYYY-MM-DD string.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidDateFormat,
			"date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidDateFormat,
		)
	}
	d := entity.TruncateToDate(t)
	return &d, nil
}
