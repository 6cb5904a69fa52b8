package expense

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// fakeExpenseRepository is an in-memory expense store with user scoping.
type fakeExpenseRepository struct {
	expenses map[uuid.UUID]*entity.Expense
}

func newFakeExpenseRepository() *fakeExpenseRepository {
	return &fakeExpenseRepository{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (f *fakeExpenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	f.expenses[expense.ID] = expense
	return nil
}

func (f *fakeExpenseRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	exp, ok := f.expenses[id]
	if !ok || exp.UserID != userID {
		return nil, domainerror.ErrExpenseNotFound
	}
	return exp, nil
}

func (f *fakeExpenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	existing, ok := f.expenses[expense.ID]
	if !ok || existing.UserID != expense.UserID {
		return domainerror.ErrExpenseNotFound
	}
	f.expenses[expense.ID] = expense
	return nil
}

func (f *fakeExpenseRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	exp, ok := f.expenses[id]
	if !ok || exp.UserID != userID {
		return domainerror.ErrExpenseNotFound
	}
	delete(f.expenses, id)
	return nil
}

func (f *fakeExpenseRepository) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter, pagination adapter.ExpensePagination) (*entity.ExpenseListResult, error) {
	var matched []*entity.ExpenseWithCategory
	for _, exp := range f.expenses {
		if exp.UserID != filter.UserID {
			continue
		}
		if filter.CategoryID != nil && exp.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.StartDate != nil && exp.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && exp.Date.After(*filter.EndDate) {
			continue
		}
		matched = append(matched, &entity.ExpenseWithCategory{Expense: exp})
	}

	total := int64(len(matched))
	start := (pagination.Page - 1) * pagination.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + pagination.Limit
	if end > len(matched) {
		end = len(matched)
	}

	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))

	return &entity.ExpenseListResult{
		Expenses:   matched[start:end],
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

func (f *fakeExpenseRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ExpenseWithCategory, error) {
	var result []*entity.ExpenseWithCategory
	for _, exp := range f.expenses {
		if exp.UserID == userID {
			result = append(result, &entity.ExpenseWithCategory{Expense: exp})
		}
	}
	return result, nil
}

// fakeCategoryRepository holds a fixed category set.
type fakeCategoryRepository struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepository(categories ...*entity.Category) *fakeCategoryRepository {
	repo := &fakeCategoryRepository{categories: make(map[uuid.UUID]*entity.Category)}
	for _, c := range categories {
		repo.categories[c.ID] = c
	}
	return repo
}

func (f *fakeCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	if c, ok := f.categories[id]; ok {
		return c, nil
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (f *fakeCategoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var result []*entity.Category
	for _, c := range f.categories {
		result = append(result, c)
	}
	return result, nil
}

func TestCreateExpenseUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	food := entity.NewCategory("Food")

	newUseCase := func() (*CreateExpenseUseCase, *fakeExpenseRepository) {
		repo := newFakeExpenseRepository()
		return NewCreateExpenseUseCase(repo, newFakeCategoryRepository(food)), repo
	}

	t.Run("successful creation", func(t *testing.T) {
		uc, repo := newUseCase()

		output, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:      userID,
			CategoryID:  food.ID,
			Amount:      decimal.RequireFromString("12.50"),
			Description: "lunch",
			Date:        time.Date(2024, time.January, 5, 14, 30, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Expense.UserID != userID {
			t.Error("expense not bound to the creating user")
		}
		if !output.Expense.Date.Equal(time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected date truncated to midnight, got %s", output.Expense.Date)
		}
		if len(repo.expenses) != 1 {
			t.Error("expense was not persisted")
		}
	})

	t.Run("zero date defaults to today", func(t *testing.T) {
		uc, _ := newUseCase()

		output, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:     userID,
			CategoryID: food.ID,
			Amount:     decimal.RequireFromString("5.00"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		today := entity.TruncateToDate(time.Now().UTC())
		if !output.Expense.Date.Equal(today) {
			t.Errorf("expected today %s, got %s", today, output.Expense.Date)
		}
	})

	t.Run("amount below minimum rejected", func(t *testing.T) {
		uc, _ := newUseCase()

		for _, amount := range []string{"0", "-5.00", "0.005"} {
			_, err := uc.Execute(ctx, CreateExpenseInput{
				UserID:     userID,
				CategoryID: food.ID,
				Amount:     decimal.RequireFromString(amount),
			})
			if !errors.Is(err, domainerror.ErrInvalidExpenseAmount) {
				t.Errorf("amount %s: expected ErrInvalidExpenseAmount, got %v", amount, err)
			}
		}
	})

	t.Run("description too long rejected", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:      userID,
			CategoryID:  food.ID,
			Amount:      decimal.RequireFromString("10.00"),
			Description: strings.Repeat("x", MaxDescriptionLength+1),
		})
		if !errors.Is(err, domainerror.ErrDescriptionTooLong) {
			t.Errorf("expected ErrDescriptionTooLong, got %v", err)
		}
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:     userID,
			CategoryID: uuid.New(),
			Amount:     decimal.RequireFromString("10.00"),
		})
		if !errors.Is(err, domainerror.ErrCategoryNotFoundForExpense) {
			t.Errorf("expected ErrCategoryNotFoundForExpense, got %v", err)
		}
	})
}

func TestUpdateExpenseUseCase(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()
	food := entity.NewCategory("Food")

	setup := func() (*UpdateExpenseUseCase, *entity.Expense) {
		repo := newFakeExpenseRepository()
		exp := entity.NewExpense(owner, food.ID, decimal.RequireFromString("10.00"), "old",
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
		repo.expenses[exp.ID] = exp
		return NewUpdateExpenseUseCase(repo, newFakeCategoryRepository(food)), exp
	}

	t.Run("owner can update", func(t *testing.T) {
		uc, exp := setup()

		output, err := uc.Execute(ctx, UpdateExpenseInput{
			ExpenseID:   exp.ID,
			UserID:      owner,
			CategoryID:  food.ID,
			Amount:      decimal.RequireFromString("20.00"),
			Description: "new",
			Date:        time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Expense.Description != "new" {
			t.Errorf("expected description new, got %s", output.Expense.Description)
		}
		if output.Expense.UserID != owner {
			t.Error("ownership must not change on update")
		}
	})

	t.Run("foreign expense reported as not found", func(t *testing.T) {
		uc, exp := setup()

		_, err := uc.Execute(ctx, UpdateExpenseInput{
			ExpenseID:  exp.ID,
			UserID:     other,
			CategoryID: food.ID,
			Amount:     decimal.RequireFromString("20.00"),
		})
		if !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Errorf("expected ErrExpenseNotFound, got %v", err)
		}
	})

	t.Run("zero date keeps the existing date", func(t *testing.T) {
		uc, exp := setup()

		output, err := uc.Execute(ctx, UpdateExpenseInput{
			ExpenseID:  exp.ID,
			UserID:     owner,
			CategoryID: food.ID,
			Amount:     decimal.RequireFromString("15.00"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Expense.Date.Equal(exp.Date) {
			t.Errorf("expected date to stay %s, got %s", exp.Date, output.Expense.Date)
		}
	})
}

func TestDeleteExpenseUseCase(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()
	food := entity.NewCategory("Food")

	repo := newFakeExpenseRepository()
	exp := entity.NewExpense(owner, food.ID, decimal.RequireFromString("10.00"), "bye",
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	repo.expenses[exp.ID] = exp

	uc := NewDeleteExpenseUseCase(repo)

	t.Run("foreign delete reported as not found", func(t *testing.T) {
		err := uc.Execute(ctx, DeleteExpenseInput{ExpenseID: exp.ID, UserID: other})
		if !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Errorf("expected ErrExpenseNotFound, got %v", err)
		}
	})

	t.Run("owner can delete", func(t *testing.T) {
		if err := uc.Execute(ctx, DeleteExpenseInput{ExpenseID: exp.ID, UserID: owner}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("second delete reported as not found", func(t *testing.T) {
		err := uc.Execute(ctx, DeleteExpenseInput{ExpenseID: exp.ID, UserID: owner})
		if !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Errorf("expected ErrExpenseNotFound, got %v", err)
		}
	})
}

func TestListExpensesUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	food := entity.NewCategory("Food")

	repo := newFakeExpenseRepository()
	for i := 0; i < 3; i++ {
		exp := entity.NewExpense(userID, food.ID, decimal.RequireFromString("10.00"), "item",
			time.Date(2024, time.January, 1+i, 0, 0, 0, 0, time.UTC))
		repo.expenses[exp.ID] = exp
	}

	uc := NewListExpensesUseCase(repo)

	t.Run("defaults applied", func(t *testing.T) {
		output, err := uc.Execute(ctx, ListExpensesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Pagination.Page != 1 {
			t.Errorf("expected default page 1, got %d", output.Pagination.Page)
		}
		if output.Pagination.Limit != DefaultPageSize {
			t.Errorf("expected default limit %d, got %d", DefaultPageSize, output.Pagination.Limit)
		}
		if len(output.Expenses) != 3 {
			t.Errorf("expected 3 expenses, got %d", len(output.Expenses))
		}
	})

	t.Run("page past the end is empty not an error", func(t *testing.T) {
		output, err := uc.Execute(ctx, ListExpensesInput{UserID: userID, Page: 9})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Expenses) != 0 {
			t.Errorf("expected empty page, got %d expenses", len(output.Expenses))
		}
		if output.Pagination.Total != 3 {
			t.Errorf("expected total 3, got %d", output.Pagination.Total)
		}
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, ListExpensesInput{UserID: userID, StartDate: "01/05/2024"})
		if !errors.Is(err, domainerror.ErrInvalidDateFormat) {
			t.Errorf("expected ErrInvalidDateFormat, got %v", err)
		}

		_, err = uc.Execute(ctx, ListExpensesInput{UserID: userID, EndDate: "yesterday"})
		if !errors.Is(err, domainerror.ErrInvalidDateFormat) {
			t.Errorf("expected ErrInvalidDateFormat, got %v", err)
		}
	})

	t.Run("date filter bounds results", func(t *testing.T) {
		output, err := uc.Execute(ctx, ListExpensesInput{
			UserID:    userID,
			StartDate: "2024-01-02",
			EndDate:   "2024-01-02",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Expenses) != 1 {
			t.Errorf("expected 1 expense, got %d", len(output.Expenses))
		}
	})

	t.Run("limit capped at maximum", func(t *testing.T) {
		output, err := uc.Execute(ctx, ListExpensesInput{UserID: userID, Limit: 5000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Pagination.Limit != MaxPageSize {
			t.Errorf("expected limit capped at %d, got %d", MaxPageSize, output.Pagination.Limit)
		}
	})
}
