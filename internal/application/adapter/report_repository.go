// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryTotal represents one bucket of the per-category aggregation.
type CategoryTotal struct {
	CategoryName string
	Total        decimal.Decimal
}

// DatedAmount is a single expense amount with its calendar date, the raw
// material for month bucketing done in the application layer.
type DatedAmount struct {
	Date   time.Time
	Amount decimal.Decimal
}

// ReportRepository defines the interface for aggregation queries. All
// operations are scoped to a single user.
type ReportRepository interface {
	// CategoryTotals sums amounts grouped by category name across all of the
	// user's expenses, ordered by total descending. Categories with no
	// expenses are omitted.
	CategoryTotals(ctx context.Context, userID uuid.UUID) ([]CategoryTotal, error)

	// AmountsByYear returns the date and amount of every expense the user
	// recorded in the given calendar year.
	AmountsByYear(ctx context.Context, userID uuid.UUID, year int) ([]DatedAmount, error)

	// SumByUser returns the all-time total of the user's expenses.
	SumByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)

	// SumByDateRange returns the total of the user's expenses with
	// start <= date <= end.
	SumByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
}
