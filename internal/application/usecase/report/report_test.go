package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// fakeReportRepository serves canned aggregation rows.
type fakeReportRepository struct {
	totals  []adapter.CategoryTotal
	amounts []adapter.DatedAmount
	total   decimal.Decimal
	ranged  decimal.Decimal
}

func (f *fakeReportRepository) CategoryTotals(ctx context.Context, userID uuid.UUID) ([]adapter.CategoryTotal, error) {
	return f.totals, nil
}

func (f *fakeReportRepository) AmountsByYear(ctx context.Context, userID uuid.UUID, year int) ([]adapter.DatedAmount, error) {
	return f.amounts, nil
}

func (f *fakeReportRepository) SumByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	return f.total, nil
}

func (f *fakeReportRepository) SumByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	return f.ranged, nil
}

func day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
}

func TestGetMonthlySummaryUseCase(t *testing.T) {
	t.Run("twelve entries January first, empty months zero-filled", func(t *testing.T) {
		repo := &fakeReportRepository{
			amounts: []adapter.DatedAmount{
				{Date: day(time.March, 5), Amount: decimal.RequireFromString("10.00")},
				{Date: day(time.March, 20), Amount: decimal.RequireFromString("15.50")},
				{Date: day(time.December, 1), Amount: decimal.RequireFromString("99.99")},
			},
		}
		uc := NewGetMonthlySummaryUseCase(repo)

		output, err := uc.Execute(context.Background(), GetMonthlySummaryInput{
			UserID: uuid.New(),
			Year:   2024,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Months) != 12 {
			t.Fatalf("expected 12 months, got %d", len(output.Months))
		}
		if output.Months[0].Month != "January" {
			t.Errorf("expected January first, got %s", output.Months[0].Month)
		}
		if output.Months[11].Month != "December" {
			t.Errorf("expected December last, got %s", output.Months[11].Month)
		}

		march := output.Months[2]
		if !march.Total.Equal(decimal.RequireFromString("25.50")) {
			t.Errorf("expected March total 25.50, got %s", march.Total)
		}
		if march.Count != 2 {
			t.Errorf("expected March count 2, got %d", march.Count)
		}

		for _, i := range []int{0, 1, 3, 4, 5, 6, 7, 8, 9, 10} {
			if !output.Months[i].Total.IsZero() {
				t.Errorf("expected %s total zero, got %s", output.Months[i].Month, output.Months[i].Total)
			}
			if output.Months[i].Count != 0 {
				t.Errorf("expected %s count zero, got %d", output.Months[i].Month, output.Months[i].Count)
			}
		}
	})

	t.Run("bucket totals sum to the year total", func(t *testing.T) {
		rows := []adapter.DatedAmount{
			{Date: day(time.January, 3), Amount: decimal.RequireFromString("12.50")},
			{Date: day(time.January, 28), Amount: decimal.RequireFromString("7.25")},
			{Date: day(time.April, 14), Amount: decimal.RequireFromString("100.00")},
			{Date: day(time.September, 9), Amount: decimal.RequireFromString("0.01")},
			{Date: day(time.December, 31), Amount: decimal.RequireFromString("3.99")},
		}
		uc := NewGetMonthlySummaryUseCase(&fakeReportRepository{amounts: rows})

		output, err := uc.Execute(context.Background(), GetMonthlySummaryInput{
			UserID: uuid.New(),
			Year:   2024,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		yearTotal := decimal.Zero
		for _, row := range rows {
			yearTotal = yearTotal.Add(row.Amount)
		}
		bucketSum := decimal.Zero
		count := 0
		for _, m := range output.Months {
			bucketSum = bucketSum.Add(m.Total)
			count += m.Count
		}
		if !bucketSum.Equal(yearTotal) {
			t.Errorf("bucket totals sum to %s, year total is %s", bucketSum, yearTotal)
		}
		if count != len(rows) {
			t.Errorf("bucket counts sum to %d, expected %d", count, len(rows))
		}

		// Adding one expense moves the sum by exactly that amount.
		added := adapter.DatedAmount{Date: day(time.July, 4), Amount: decimal.RequireFromString("19.95")}
		uc = NewGetMonthlySummaryUseCase(&fakeReportRepository{amounts: append(rows, added)})
		output, err = uc.Execute(context.Background(), GetMonthlySummaryInput{
			UserID: uuid.New(),
			Year:   2024,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		newSum := decimal.Zero
		for _, m := range output.Months {
			newSum = newSum.Add(m.Total)
		}
		if !newSum.Sub(bucketSum).Equal(added.Amount) {
			t.Errorf("expected sum to grow by %s, grew by %s", added.Amount, newSum.Sub(bucketSum))
		}
	})

	t.Run("year with no expenses still yields 12 zero entries", func(t *testing.T) {
		uc := NewGetMonthlySummaryUseCase(&fakeReportRepository{})

		output, err := uc.Execute(context.Background(), GetMonthlySummaryInput{
			UserID: uuid.New(),
			Year:   2019,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Months) != 12 {
			t.Fatalf("expected 12 months, got %d", len(output.Months))
		}
		for _, m := range output.Months {
			if !m.Total.IsZero() || m.Count != 0 {
				t.Errorf("expected %s to be empty, got total %s count %d", m.Month, m.Total, m.Count)
			}
		}
	})

	t.Run("zero year means current year", func(t *testing.T) {
		uc := NewGetMonthlySummaryUseCase(&fakeReportRepository{})

		output, err := uc.Execute(context.Background(), GetMonthlySummaryInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Year != time.Now().UTC().Year() {
			t.Errorf("expected current year, got %d", output.Year)
		}
	})

	t.Run("negative year rejected", func(t *testing.T) {
		uc := NewGetMonthlySummaryUseCase(&fakeReportRepository{})

		_, err := uc.Execute(context.Background(), GetMonthlySummaryInput{
			UserID: uuid.New(),
			Year:   -3,
		})
		if !errors.Is(err, domainerror.ErrInvalidReportYear) {
			t.Errorf("expected ErrInvalidReportYear, got %v", err)
		}
	})
}

func TestGetExpenseDataUseCase(t *testing.T) {
	t.Run("category arrays parallel and sparse", func(t *testing.T) {
		repo := &fakeReportRepository{
			totals: []adapter.CategoryTotal{
				{CategoryName: "Transport", Total: decimal.RequireFromString("45.00")},
				{CategoryName: "Food", Total: decimal.RequireFromString("35.50")},
			},
			amounts: []adapter.DatedAmount{
				{Date: day(time.January, 5), Amount: decimal.RequireFromString("35.50")},
				{Date: day(time.June, 1), Amount: decimal.RequireFromString("45.00")},
			},
		}
		uc := NewGetExpenseDataUseCase(repo)

		data, err := uc.Execute(context.Background(), GetExpenseDataInput{
			UserID: uuid.New(),
			Year:   2024,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(data.Categories) != len(data.CategoryAmounts) {
			t.Fatalf("parallel arrays out of sync: %d names, %d amounts",
				len(data.Categories), len(data.CategoryAmounts))
		}
		if len(data.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(data.Categories))
		}
		if data.Categories[0] != "Transport" {
			t.Errorf("expected Transport first, got %s", data.Categories[0])
		}
		if !data.CategoryAmounts[0].Equal(decimal.RequireFromString("45.00")) {
			t.Errorf("expected amount 45.00 first, got %s", data.CategoryAmounts[0])
		}
	})

	t.Run("monthly series dense with 12 entries", func(t *testing.T) {
		repo := &fakeReportRepository{
			amounts: []adapter.DatedAmount{
				{Date: day(time.June, 1), Amount: decimal.RequireFromString("45.00")},
			},
		}
		uc := NewGetExpenseDataUseCase(repo)

		data, err := uc.Execute(context.Background(), GetExpenseDataInput{
			UserID: uuid.New(),
			Year:   2024,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(data.MonthlyAmounts) != 12 {
			t.Fatalf("expected 12 monthly amounts, got %d", len(data.MonthlyAmounts))
		}
		if len(data.Months) != 12 {
			t.Fatalf("expected 12 month names, got %d", len(data.Months))
		}
		if !data.MonthlyAmounts[5].Equal(decimal.RequireFromString("45.00")) {
			t.Errorf("expected June amount 45.00, got %s", data.MonthlyAmounts[5])
		}
		for i, amount := range data.MonthlyAmounts {
			if i == 5 {
				continue
			}
			if !amount.IsZero() {
				t.Errorf("expected %s to be zero, got %s", data.Months[i], amount)
			}
		}
	})

	t.Run("no expenses yields empty category arrays", func(t *testing.T) {
		uc := NewGetExpenseDataUseCase(&fakeReportRepository{})

		data, err := uc.Execute(context.Background(), GetExpenseDataInput{
			UserID: uuid.New(),
			Year:   2024,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(data.Categories) != 0 {
			t.Errorf("expected no categories, got %d", len(data.Categories))
		}
		if len(data.MonthlyAmounts) != 12 {
			t.Errorf("expected 12 monthly amounts even with no data, got %d", len(data.MonthlyAmounts))
		}
	})
}
