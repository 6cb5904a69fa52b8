// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// recentExpenseLimit is how many recent expenses the dashboard shows.
const recentExpenseLimit = 5

// GetDashboardInput represents the input for the dashboard overview.
type GetDashboardInput struct {
	UserID uuid.UUID
}

// RecentExpense represents one entry of the dashboard's recent list.
type RecentExpense struct {
	ID           uuid.UUID       `json:"id"`
	CategoryName string          `json:"category_name"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	Date         time.Time       `json:"date"`
}

// GetDashboardOutput represents the dashboard overview payload.
type GetDashboardOutput struct {
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	MonthExpenses decimal.Decimal `json:"month_expenses"`
	Recent        []RecentExpense `json:"recent_expenses"`
	ExpenseData   *ExpenseData    `json:"expense_data"`
}

// GetDashboardUseCase assembles the dashboard overview: all-time and
// current-month totals, the most recent expenses, and the chart payload.
type GetDashboardUseCase struct {
	reportRepo  adapter.ReportRepository
	expenseRepo adapter.ExpenseRepository
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	reportRepo adapter.ReportRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		reportRepo:  reportRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute retrieves the dashboard overview for the given user.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	total, err := uc.reportRepo.SumByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense total: %w", err)
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	monthTotal, err := uc.reportRepo.SumByDateRange(ctx, input.UserID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get current month total: %w", err)
	}

	recentResult, err := uc.expenseRepo.FindByFilter(ctx,
		adapter.ExpenseFilter{UserID: input.UserID},
		adapter.ExpensePagination{Page: 1, Limit: recentExpenseLimit},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent expenses: %w", err)
	}

	recent := make([]RecentExpense, len(recentResult.Expenses))
	for i, ewc := range recentResult.Expenses {
		recent[i] = RecentExpense{
			ID:          ewc.Expense.ID,
			Amount:      ewc.Expense.Amount,
			Description: ewc.Expense.Description,
			Date:        ewc.Expense.Date,
		}
		if ewc.Category != nil {
			recent[i].CategoryName = ewc.Category.Name
		}
	}

	expenseData, err := buildExpenseData(ctx, uc.reportRepo, input.UserID, now.Year())
	if err != nil {
		return nil, err
	}

	return &GetDashboardOutput{
		TotalExpenses: total,
		MonthExpenses: monthTotal,
		Recent:        recent,
		ExpenseData:   expenseData,
	}, nil
}
