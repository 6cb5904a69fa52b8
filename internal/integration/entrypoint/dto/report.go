package dto

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/report"
)

// ExpenseDataResponse represents the chart payload. Categories and
// CategoryAmounts are parallel; MonthlyAmounts always has 12 entries
// aligned with Months.
type ExpenseDataResponse struct {
	Categories      []string          `json:"categories"`
	CategoryAmounts []decimal.Decimal `json:"category_amounts"`
	MonthlyAmounts  []decimal.Decimal `json:"monthly_amounts"`
	Months          []string          `json:"months"`
}

// MonthSummaryResponse represents one month of the reports page.
type MonthSummaryResponse struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// MonthlySummaryResponse represents the response for the monthly report.
type MonthlySummaryResponse struct {
	Year   int                    `json:"year"`
	Months []MonthSummaryResponse `json:"months"`
}

// DashboardResponse represents the dashboard overview payload.
type DashboardResponse struct {
	TotalExpenses  decimal.Decimal         `json:"total_expenses"`
	MonthExpenses  decimal.Decimal         `json:"month_expenses"`
	RecentExpenses []RecentExpenseResponse `json:"recent_expenses"`
	ExpenseData    ExpenseDataResponse     `json:"expense_data"`
}

// RecentExpenseResponse represents one entry of the dashboard recent list.
type RecentExpenseResponse struct {
	ID           string          `json:"id"`
	CategoryName string          `json:"category_name"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	Date         string          `json:"date"`
}

// ToExpenseDataResponse converts the aggregation payload to a DTO.
func ToExpenseDataResponse(data *report.ExpenseData) ExpenseDataResponse {
	return ExpenseDataResponse{
		Categories:      data.Categories,
		CategoryAmounts: data.CategoryAmounts,
		MonthlyAmounts:  data.MonthlyAmounts,
		Months:          data.Months,
	}
}

// ToMonthlySummaryResponse converts the monthly report output to a DTO.
func ToMonthlySummaryResponse(output *report.GetMonthlySummaryOutput) MonthlySummaryResponse {
	months := make([]MonthSummaryResponse, len(output.Months))
	for i, m := range output.Months {
		months[i] = MonthSummaryResponse{
			Month: m.Month,
			Total: m.Total,
			Count: m.Count,
		}
	}

	return MonthlySummaryResponse{
		Year:   output.Year,
		Months: months,
	}
}

// ToDashboardResponse converts the dashboard output to a DTO.
func ToDashboardResponse(output *report.GetDashboardOutput) DashboardResponse {
	recent := make([]RecentExpenseResponse, len(output.Recent))
	for i, r := range output.Recent {
		recent[i] = RecentExpenseResponse{
			ID:           r.ID.String(),
			CategoryName: r.CategoryName,
			Amount:       r.Amount,
			Description:  r.Description,
			Date:         r.Date.Format("2006-01-02"),
		}
	}

	return DashboardResponse{
		TotalExpenses:  output.TotalExpenses,
		MonthExpenses:  output.MonthExpenses,
		RecentExpenses: recent,
		ExpenseData:    ToExpenseDataResponse(output.ExpenseData),
	}
}
