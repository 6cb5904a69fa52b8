package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// fakeExpenseRepository feeds the dashboard its recent-expense page.
type fakeExpenseRepository struct {
	result *entity.ExpenseListResult

	gotPagination adapter.ExpensePagination
}

func (f *fakeExpenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return nil
}

func (f *fakeExpenseRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	return nil, nil
}

func (f *fakeExpenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	return nil
}

func (f *fakeExpenseRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	return nil
}

func (f *fakeExpenseRepository) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter, pagination adapter.ExpensePagination) (*entity.ExpenseListResult, error) {
	f.gotPagination = pagination
	return f.result, nil
}

func (f *fakeExpenseRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ExpenseWithCategory, error) {
	return nil, nil
}

func TestGetDashboardUseCase(t *testing.T) {
	userID := uuid.New()
	food := entity.NewCategory("Food")

	expenses := make([]*entity.ExpenseWithCategory, 2)
	for i := range expenses {
		exp := entity.NewExpense(userID, food.ID, decimal.RequireFromString("12.00"), "coffee",
			time.Date(2024, time.May, 10+i, 0, 0, 0, 0, time.UTC))
		expenses[i] = &entity.ExpenseWithCategory{Expense: exp, Category: food}
	}

	reportRepo := &fakeReportRepository{
		total:  decimal.RequireFromString("150.00"),
		ranged: decimal.RequireFromString("24.00"),
	}
	expenseRepo := &fakeExpenseRepository{
		result: &entity.ExpenseListResult{Expenses: expenses, Total: 2, Page: 1, Limit: 5, TotalPages: 1},
	}

	uc := NewGetDashboardUseCase(reportRepo, expenseRepo)

	output, err := uc.Execute(context.Background(), GetDashboardInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("totals come from the aggregates", func(t *testing.T) {
		if !output.TotalExpenses.Equal(decimal.RequireFromString("150.00")) {
			t.Errorf("expected total 150.00, got %s", output.TotalExpenses)
		}
		if !output.MonthExpenses.Equal(decimal.RequireFromString("24.00")) {
			t.Errorf("expected month total 24.00, got %s", output.MonthExpenses)
		}
	})

	t.Run("recent list carries category names", func(t *testing.T) {
		if len(output.Recent) != 2 {
			t.Fatalf("expected 2 recent expenses, got %d", len(output.Recent))
		}
		for _, r := range output.Recent {
			if r.CategoryName != "Food" {
				t.Errorf("expected category Food, got %s", r.CategoryName)
			}
		}
	})

	t.Run("recent list asks for the first five", func(t *testing.T) {
		if expenseRepo.gotPagination.Page != 1 || expenseRepo.gotPagination.Limit != 5 {
			t.Errorf("expected page 1 limit 5, got page %d limit %d",
				expenseRepo.gotPagination.Page, expenseRepo.gotPagination.Limit)
		}
	})

	t.Run("chart payload included", func(t *testing.T) {
		if output.ExpenseData == nil {
			t.Fatal("expected expense data")
		}
		if len(output.ExpenseData.MonthlyAmounts) != 12 {
			t.Errorf("expected 12 monthly amounts, got %d", len(output.ExpenseData.MonthlyAmounts))
		}
	})
}
