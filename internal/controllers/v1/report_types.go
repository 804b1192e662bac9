package v1

import (
	"strconv"
	"strings"
	"time"

	"github.com/hearth-budget/backend/internal/report"
	"github.com/hearth-budget/backend/internal/types"

	"github.com/gin-gonic/gin"
)

// ReportOptions drives the caller's month and year selection state.
type ReportOptions struct {
	Months               []types.Month `json:"months"` // Months with transactions, most recent first
	Years                []int         `json:"years"`  // Years with transactions, ascending
	DaysRemainingInMonth int           `json:"daysRemainingInMonth"`
}

type ReportOptionsResponse struct {
	Data  *ReportOptions `json:"data"`  // The selection options
	Error *string        `json:"error"` // The error, if any occurred
}

type HistoryResponse struct {
	Data  []report.CategoryGroup `json:"data"`  // Transactions of the month, grouped by category
	Error *string                `json:"error"` // The error, if any occurred
}

type BudgetTableResponse struct {
	Data  []report.BudgetRow `json:"data"`  // One row per category
	Error *string            `json:"error"` // The error, if any occurred
}

type TrendsResponse struct {
	Data  *report.TrendReport `json:"data"`  // Month-over-month comparison and summary
	Error *string             `json:"error"` // The error, if any occurred
}

// refDate parses the optional ref query parameter, defaulting to the
// current time. Reports never depend on the clock directly so that a
// caller can reproduce any past report.
func refDate(c *gin.Context) (time.Time, error) {
	param := c.Query("ref")
	if param == "" {
		return time.Now().UTC(), nil
	}

	ref, err := time.ParseInLocation("2006-01-02", param, time.UTC)
	if err != nil {
		return time.Time{}, errRefInvalid
	}

	return ref, nil
}

// yearsParam parses the optional years query parameter, a comma separated
// list. An empty parameter selects all years.
func yearsParam(c *gin.Context) ([]int, error) {
	param := c.Query("years")
	if param == "" {
		return nil, nil
	}

	parts := strings.Split(param, ",")
	years := make([]int, 0, len(parts))
	for _, part := range parts {
		year, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errYearsInvalid
		}
		years = append(years, year)
	}

	return years, nil
}

// monthParam parses the mandatory month query parameter.
func monthParam(c *gin.Context) (types.Month, error) {
	param := c.Query("month")
	if param == "" {
		return types.Month{}, errMonthRequired
	}

	return types.ParseMonth(param)
}
