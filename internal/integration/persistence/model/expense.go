package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseModel represents an expense row in the database.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Description string          `gorm:"type:varchar(500)"`
	Date        time.Time       `gorm:"type:date;index;not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	Category CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for the expense model.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts the model to a domain entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		UserID:      m.UserID,
		CategoryID:  m.CategoryID,
		Amount:      m.Amount,
		Description: m.Description,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToEntityWithCategory converts the model and its preloaded category
// to a combined entity.
func (m *ExpenseModel) ToEntityWithCategory() *entity.ExpenseWithCategory {
	return &entity.ExpenseWithCategory{
		Expense:  m.ToEntity(),
		Category: m.Category.ToEntity(),
	}
}

// ExpenseModelFromEntity converts a domain entity to a model.
func ExpenseModelFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          expense.ID,
		UserID:      expense.UserID,
		CategoryID:  expense.CategoryID,
		Amount:      expense.Amount,
		Description: expense.Description,
		Date:        expense.Date,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}
