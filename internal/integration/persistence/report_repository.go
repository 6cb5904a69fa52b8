package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// reportRepository implements the adapter.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) adapter.ReportRepository {
	return &reportRepository{db: db}
}

// CategoryTotals sums amounts grouped by category name, ordered by total
// descending. Categories with no expenses are omitted.
func (r *reportRepository) CategoryTotals(ctx context.Context, userID uuid.UUID) ([]adapter.CategoryTotal, error) {
	var rows []struct {
		CategoryName string
		Total        decimal.Decimal
	}

	err := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Select("categories.name AS category_name, SUM(expenses.amount) AS total").
		Joins("JOIN categories ON categories.id = expenses.category_id").
		Where("expenses.user_id = ?", userID).
		Group("categories.name").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses by category: %w", err)
	}

	totals := make([]adapter.CategoryTotal, len(rows))
	for i, row := range rows {
		totals[i] = adapter.CategoryTotal{
			CategoryName: row.CategoryName,
			Total:        row.Total,
		}
	}

	return totals, nil
}

// AmountsByYear returns the date and amount of every expense the user
// recorded in the given calendar year.
func (r *reportRepository) AmountsByYear(ctx context.Context, userID uuid.UUID, year int) ([]adapter.DatedAmount, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	var rows []struct {
		Date   time.Time
		Amount decimal.Decimal
	}

	err := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Select("date, amount").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for year %d: %w", year, err)
	}

	amounts := make([]adapter.DatedAmount, len(rows))
	for i, row := range rows {
		amounts[i] = adapter.DatedAmount{
			Date:   row.Date,
			Amount: row.Amount,
		}
	}

	return amounts, nil
}

// SumByUser returns the all-time total of the user's expenses.
func (r *reportRepository) SumByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	return r.sum(r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("user_id = ?", userID))
}

// SumByDateRange returns the total of the user's expenses within the
// inclusive date range.
func (r *reportRepository) SumByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	return r.sum(r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end))
}

// sum runs a COALESCE'd SUM over the prepared query so an empty result
// set yields zero instead of NULL.
func (r *reportRepository) sum(query *gorm.DB) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}

	if err := query.Select("COALESCE(SUM(amount), 0) AS total").Scan(&row).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return row.Total, nil
}
