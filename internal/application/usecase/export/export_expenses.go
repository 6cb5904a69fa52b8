// Package export contains the CSV export use case.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// csvHeader is the literal column order of the export.
var csvHeader = []string{"Date", "Category", "Amount", "Description"}

// ExportExpensesInput represents the input for the CSV export.
type ExportExpensesInput struct {
	UserID uuid.UUID
}

// ExportExpensesOutput represents the output of the CSV export.
type ExportExpensesOutput struct {
	Content []byte
}

// ExportExpensesUseCase serializes a user's expenses to CSV.
type ExportExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewExportExpensesUseCase creates a new ExportExpensesUseCase instance.
func NewExportExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ExportExpensesUseCase {
	return &ExportExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute fetches the user's expenses ordered by date descending and renders
// them as CSV.
func (uc *ExportExpensesUseCase) Execute(ctx context.Context, input ExportExpensesInput) (*ExportExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindAllByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for export: %w", err)
	}

	content, err := WriteCSV(expenses)
	if err != nil {
		return nil, err
	}

	return &ExportExpensesOutput{Content: content}, nil
}

// WriteCSV renders expenses in the order given: a header row, then one row
// per expense. Dates are YYYY-MM-DD, amounts carry two decimal places, and
// a missing description stays an empty field.
func WriteCSV(expenses []*entity.ExpenseWithCategory) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, ewc := range expenses {
		categoryName := ""
		if ewc.Category != nil {
			categoryName = ewc.Category.Name
		}
		row := []string{
			ewc.Expense.Date.Format("2006-01-02"),
			categoryName,
			ewc.Expense.Amount.StringFixed(2),
			ewc.Expense.Description,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}
