// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// GetMonthlySummaryInput represents the input for the monthly report.
type GetMonthlySummaryInput struct {
	UserID uuid.UUID
	Year   int
}

// MonthSummary represents one month of the report.
type MonthSummary struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// GetMonthlySummaryOutput represents the output of the monthly report:
// always exactly 12 entries, January first, empty months zero-filled.
type GetMonthlySummaryOutput struct {
	Year   int            `json:"year"`
	Months []MonthSummary `json:"months"`
}

// GetMonthlySummaryUseCase computes the per-month totals and counts used by
// the reports page.
type GetMonthlySummaryUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewGetMonthlySummaryUseCase creates a new GetMonthlySummaryUseCase instance.
func NewGetMonthlySummaryUseCase(reportRepo adapter.ReportRepository) *GetMonthlySummaryUseCase {
	return &GetMonthlySummaryUseCase{
		reportRepo: reportRepo,
	}
}

// Execute retrieves the monthly summary for the given year. A zero year
// means the current year.
func (uc *GetMonthlySummaryUseCase) Execute(ctx context.Context, input GetMonthlySummaryInput) (*GetMonthlySummaryOutput, error) {
	year := input.Year
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	if year < 1 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportYear,
			"report year must be positive",
			domainerror.ErrInvalidReportYear,
		)
	}

	rows, err := uc.reportRepo.AmountsByYear(ctx, input.UserID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses for year %d: %w", year, err)
	}

	buckets := bucketByMonth(rows)

	months := make([]MonthSummary, 12)
	for i := range months {
		months[i] = MonthSummary{
			Month: MonthNames[i],
			Total: buckets.totals[i],
			Count: buckets.counts[i],
		}
	}

	return &GetMonthlySummaryOutput{
		Year:   year,
		Months: months,
	}, nil
}
