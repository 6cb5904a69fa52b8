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

// GetExpenseDataInput represents the input for the chart data aggregation.
// A zero Year means the current calendar year.
type GetExpenseDataInput struct {
	UserID uuid.UUID
	Year   int
}

// ExpenseData is the chart-ready aggregation payload. Categories and
// CategoryAmounts are parallel sequences in one consistent order (total
// descending); categories without expenses are omitted. MonthlyAmounts is
// dense: exactly 12 entries, zero-filled, aligned with Months.
type ExpenseData struct {
	Categories      []string          `json:"categories"`
	CategoryAmounts []decimal.Decimal `json:"category_amounts"`
	MonthlyAmounts  []decimal.Decimal `json:"monthly_amounts"`
	Months          []string          `json:"months"`
}

// GetExpenseDataUseCase computes the category breakdown and monthly series
// for dashboard charts.
type GetExpenseDataUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewGetExpenseDataUseCase creates a new GetExpenseDataUseCase instance.
func NewGetExpenseDataUseCase(reportRepo adapter.ReportRepository) *GetExpenseDataUseCase {
	return &GetExpenseDataUseCase{
		reportRepo: reportRepo,
	}
}

// Execute retrieves the chart data for the given user.
func (uc *GetExpenseDataUseCase) Execute(ctx context.Context, input GetExpenseDataInput) (*ExpenseData, error) {
	return buildExpenseData(ctx, uc.reportRepo, input.UserID, input.Year)
}

// buildExpenseData assembles the chart payload. Shared with the dashboard
// use case so both surfaces report identical numbers.
func buildExpenseData(ctx context.Context, repo adapter.ReportRepository, userID uuid.UUID, year int) (*ExpenseData, error) {
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	totals, err := repo.CategoryTotals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}

	categories := make([]string, len(totals))
	categoryAmounts := make([]decimal.Decimal, len(totals))
	for i, ct := range totals {
		categories[i] = ct.CategoryName
		categoryAmounts[i] = ct.Total
	}

	rows, err := repo.AmountsByYear(ctx, userID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses for year %d: %w", year, err)
	}

	buckets := bucketByMonth(rows)

	return &ExpenseData{
		Categories:      categories,
		CategoryAmounts: categoryAmounts,
		MonthlyAmounts:  buckets.totals[:],
		Months:          MonthNames[:],
	}, nil
}
