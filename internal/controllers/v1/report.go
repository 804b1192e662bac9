package v1

import (
	"net/http"

	"github.com/hearth-budget/backend/internal/httputil"
	"github.com/hearth-budget/backend/internal/models"
	"github.com/hearth-budget/backend/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/options", OptionsReports)
	r.GET("/options", GetReportOptions)

	r.OPTIONS("/history", OptionsReports)
	r.GET("/history", GetHistory)

	r.OPTIONS("/budget", OptionsReports)
	r.GET("/budget", GetBudgetTable)

	r.OPTIONS("/trends", OptionsReports)
	r.GET("/trends", GetTrends)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/options [options]
func OptionsReports(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Report options
// @Description	Returns the months and years that have transactions, for the caller's selection state
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	ReportOptionsResponse
// @Failure		400		{object}	ReportOptionsResponse
// @Failure		500		{object}	ReportOptionsResponse
// @Param			owner	query		string	true	"Owning user"
// @Param			ref		query		string	false	"Reference date in YYYY-MM-DD format. Defaults to today."
// @Router			/v1/reports/options [get]
func GetReportOptions(c *gin.Context) {
	owner, err := ownerFromQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ReportOptionsResponse{Error: &s})
		return
	}

	ref, err := refDate(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ReportOptionsResponse{Error: &s})
		return
	}

	snapshot, err := loadSnapshot(owner)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportOptionsResponse{Error: &s})
		return
	}

	data := ReportOptions{
		Months:               report.DistinctMonths(snapshot.Transactions),
		Years:                report.DistinctYears(snapshot.Transactions),
		DaysRemainingInMonth: report.DaysRemainingInMonth(ref),
	}

	c.JSON(http.StatusOK, ReportOptionsResponse{Data: &data})
}

// @Summary		History report
// @Description	Returns a month's transactions grouped by category, with totals and the month's budget
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	HistoryResponse
// @Failure		400		{object}	HistoryResponse
// @Failure		500		{object}	HistoryResponse
// @Param			owner	query		string	true	"Owning user"
// @Param			month	query		string	true	"Month in YYYY-MM format"
// @Router			/v1/reports/history [get]
func GetHistory(c *gin.Context) {
	owner, err := ownerFromQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, HistoryResponse{Error: &s})
		return
	}

	month, err := monthParam(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, HistoryResponse{Error: &s})
		return
	}

	snapshot, err := loadSnapshot(owner)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HistoryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{Data: report.BuildHistory(snapshot, month)})
}

// @Summary		Budget report
// @Description	Returns the budget-vs-actual table for a month, including the trailing six month average
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	BudgetTableResponse
// @Failure		400		{object}	BudgetTableResponse
// @Failure		500		{object}	BudgetTableResponse
// @Param			owner	query		string	true	"Owning user"
// @Param			month	query		string	true	"Month in YYYY-MM format"
// @Param			ref		query		string	false	"Reference date in YYYY-MM-DD format. Defaults to today."
// @Router			/v1/reports/budget [get]
func GetBudgetTable(c *gin.Context) {
	owner, err := ownerFromQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetTableResponse{Error: &s})
		return
	}

	month, err := monthParam(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetTableResponse{Error: &s})
		return
	}

	ref, err := refDate(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetTableResponse{Error: &s})
		return
	}

	snapshot, err := loadSnapshot(owner)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetTableResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BudgetTableResponse{Data: report.BuildBudgetTable(snapshot, month, ref)})
}

// @Summary		Trend report
// @Description	Compares the two most recently completed months per category and summarizes income, expenses and savings
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	TrendsResponse
// @Failure		400		{object}	TrendsResponse
// @Failure		500		{object}	TrendsResponse
// @Param			owner	query		string	true	"Owning user"
// @Param			years	query		string	false	"Comma separated list of years. Defaults to all years with transactions."
// @Param			ref		query		string	false	"Reference date in YYYY-MM-DD format. Defaults to today."
// @Router			/v1/reports/trends [get]
func GetTrends(c *gin.Context) {
	owner, err := ownerFromQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TrendsResponse{Error: &s})
		return
	}

	years, err := yearsParam(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TrendsResponse{Error: &s})
		return
	}

	ref, err := refDate(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TrendsResponse{Error: &s})
		return
	}

	snapshot, err := loadSnapshot(owner)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TrendsResponse{Error: &s})
		return
	}

	data := report.BuildTrends(snapshot, years, ref)
	c.JSON(http.StatusOK, TrendsResponse{Data: &data})
}

// loadSnapshot reads everything the reporting engine needs for one owner.
// Soft-deleted transactions are excluded by gorm already.
func loadSnapshot(owner uuid.UUID) (report.Snapshot, error) {
	var transactions []models.Transaction
	err := models.DB.
		Where(&models.Transaction{OwnerID: owner}).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return report.Snapshot{}, err
	}

	var categories []models.Category
	err = models.DB.
		Where(&models.Category{OwnerID: owner}).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return report.Snapshot{}, err
	}

	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}

	var settings []models.CategorySettings
	err = models.DB.
		Where(&models.CategorySettings{OwnerID: owner}).
		Find(&settings).Error
	if err != nil {
		return report.Snapshot{}, err
	}

	classifications := make(map[string]report.Classification, len(settings))
	for _, s := range settings {
		classifications[s.Category] = report.Classification{
			IsSavings: s.IsSavings,
			IsIncome:  s.IsIncome,
		}
	}

	var budgets []models.Budget
	err = models.DB.
		Where(&models.Budget{OwnerID: owner}).
		Find(&budgets).Error
	if err != nil {
		return report.Snapshot{}, err
	}

	return report.Snapshot{
		Transactions: transactions,
		Categories:   names,
		Settings:     classifications,
		Budgets:      budgets,
	}, nil
}
