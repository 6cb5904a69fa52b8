package persistence

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{db: db}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseModelFromEntity(expense)

	if err := r.db.WithContext(ctx).Create(expenseModel).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

// FindByIDAndUser retrieves an expense by ID scoped to its owning user.
func (r *expenseRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel

	err := r.db.WithContext(ctx).
		First(&expenseModel, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	return expenseModel.ToEntity(), nil
}

// Update persists changes to an existing expense.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseModelFromEntity(expense)

	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("id = ? AND user_id = ?", expense.ID, expense.UserID).
		Updates(map[string]interface{}{
			"category_id": expenseModel.CategoryID,
			"amount":      expenseModel.Amount,
			"description": expenseModel.Description,
			"date":        expenseModel.Date,
			"updated_at":  expenseModel.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}

	return nil
}

// DeleteByIDAndUser removes an expense scoped to its owning user.
func (r *expenseRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}

	return nil
}

// FindByFilter retrieves one page of expenses matching the filter, with
// categories preloaded, ordered by date descending.
func (r *expenseRepository) FindByFilter(
	ctx context.Context,
	filter adapter.ExpenseFilter,
	pagination adapter.ExpensePagination,
) (*entity.ExpenseListResult, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count expenses: %w", err)
	}

	offset := (pagination.Page - 1) * pagination.Limit

	var expenseModels []model.ExpenseModel
	err := query.
		Preload("Category").
		Order("date DESC, created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&expenseModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	expenses := make([]*entity.ExpenseWithCategory, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntityWithCategory()
	}

	totalPages := int(math.Ceil(float64(total) / float64(pagination.Limit)))

	return &entity.ExpenseListResult{
		Expenses:   expenses,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// FindAllByUser retrieves every expense owned by the user with categories
// preloaded, ordered by date descending.
func (r *expenseRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ExpenseWithCategory, error) {
	var expenseModels []model.ExpenseModel

	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&expenseModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for export: %w", err)
	}

	expenses := make([]*entity.ExpenseWithCategory, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntityWithCategory()
	}

	return expenses, nil
}
