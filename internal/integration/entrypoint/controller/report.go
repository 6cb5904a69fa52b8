package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/export"
	"github.com/expense-tracker/backend/internal/application/usecase/report"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles dashboard, report and export endpoints.
type ReportController struct {
	dashboardUseCase   *report.GetDashboardUseCase
	summaryUseCase     *report.GetMonthlySummaryUseCase
	expenseDataUseCase *report.GetExpenseDataUseCase
	exportUseCase      *export.ExportExpensesUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	dashboardUseCase *report.GetDashboardUseCase,
	summaryUseCase *report.GetMonthlySummaryUseCase,
	expenseDataUseCase *report.GetExpenseDataUseCase,
	exportUseCase *export.ExportExpensesUseCase,
) *ReportController {
	return &ReportController{
		dashboardUseCase:   dashboardUseCase,
		summaryUseCase:     summaryUseCase,
		expenseDataUseCase: expenseDataUseCase,
		exportUseCase:      exportUseCase,
	}
}

// Dashboard handles GET /dashboard requests.
func (c *ReportController) Dashboard(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthorized(ctx)
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), report.GetDashboardInput{
		UserID: userID,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// MonthlySummary handles GET /reports requests. The year query parameter
// defaults to the current year.
func (c *ReportController) MonthlySummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthorized(ctx)
		return
	}

	year, err := c.parseYear(ctx)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), report.GetMonthlySummaryInput{
		UserID: userID,
		Year:   year,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output))
}

// ExpenseData handles GET /reports/expense-data requests, serving the
// chart-ready aggregation payload.
func (c *ReportController) ExpenseData(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthorized(ctx)
		return
	}

	year, err := c.parseYear(ctx)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	output, err := c.expenseDataUseCase.Execute(ctx.Request.Context(), report.GetExpenseDataInput{
		UserID: userID,
		Year:   year,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseDataResponse(output))
}

// ExportCSV handles GET /expenses/export requests, streaming the user's
// full expense history as a CSV attachment.
func (c *ReportController) ExportCSV(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		c.unauthorized(ctx)
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), export.ExportExpensesInput{
		UserID: userID,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	filename := fmt.Sprintf("expenses_%s.csv", time.Now().UTC().Format("20060102"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Data(http.StatusOK, "text/csv", output.Content)
}

// parseYear reads the optional year query parameter. Zero means the
// current year, resolved downstream.
func (c *ReportController) parseYear(ctx *gin.Context) (int, error) {
	raw := ctx.Query("year")
	if raw == "" {
		return 0, nil
	}

	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 {
		return 0, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportYear,
			"year must be a positive integer",
			domainerror.ErrInvalidReportYear,
		)
	}

	return year, nil
}

func (c *ReportController) unauthorized(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Authentication required",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// handleReportError maps report errors to HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
