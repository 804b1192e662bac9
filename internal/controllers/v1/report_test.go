package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/hearth-budget/backend/internal/controllers/v1"
	"github.com/hearth-budget/backend/internal/types"
	"github.com/hearth-budget/backend/test"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedReportData creates one owner with transactions in two months, a
// budget and classified categories.
func (suite *TestSuiteStandard) seedReportData() uuid.UUID {
	owner := uuid.New()

	salary := suite.createTestCategory(v1.CategoryEditable{OwnerID: owner, Name: "Salary"})
	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/categories/%s/income", salary.ID), v1.FlagEditable{Value: true})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	suite.createTestCategory(v1.CategoryEditable{OwnerID: owner, Name: "Groceries"})

	suite.createTestBudget(v1.BudgetEditable{
		OwnerID:  owner,
		Category: "Groceries",
		Month:    types.NewMonth(2024, 2),
		Amount:   decimal.NewFromInt(400),
	})

	for _, editable := range []v1.TransactionEditable{
		{OwnerID: owner, Category: "Salary", Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(5000), Person: "Roger"},
		{OwnerID: owner, Category: "Groceries", Date: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(300), Person: "Raegan"},
		{OwnerID: owner, Category: "Groceries", Date: time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(150), Person: "Both"},
	} {
		suite.createTestTransaction(editable)
	}

	return owner
}

func (suite *TestSuiteStandard) TestReportOptions() {
	owner := suite.seedReportData()

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/reports/options?owner=%s&ref=2024-03-15", owner), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ReportOptionsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	require.Len(suite.T(), response.Data.Months, 2)
	assert.True(suite.T(), response.Data.Months[0].Equal(types.NewMonth(2024, 2)), "months are most recent first")
	assert.Equal(suite.T(), []int{2024}, response.Data.Years)
	assert.Equal(suite.T(), 16, response.Data.DaysRemainingInMonth)
}

func (suite *TestSuiteStandard) TestReportOwnerRequired() {
	for _, path := range []string{
		"/v1/reports/options",
		"/v1/reports/history?month=2024-02",
		"/v1/reports/budget?month=2024-02",
		"/v1/reports/trends",
	} {
		recorder := test.Request(suite.T(), suite.router, http.MethodGet, path, nil)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestReportHistory() {
	owner := suite.seedReportData()

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/reports/history?owner=%s&month=2024-02", owner), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.HistoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Groceries", response.Data[0].Category)
	assert.Equal(suite.T(), "Salary", response.Data[1].Category)

	groceries := response.Data[0]
	assert.True(suite.T(), groceries.Total.Equal(decimal.NewFromInt(300)))
	require.NotNil(suite.T(), groceries.Budget)
	assert.True(suite.T(), groceries.Budget.Equal(decimal.NewFromInt(400)))
}

func (suite *TestSuiteStandard) TestReportHistoryMonthRequired() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/reports/history?owner=%s", uuid.New()), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestReportBudget() {
	owner := suite.seedReportData()

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/reports/budget?owner=%s&month=2024-02&ref=2024-03-15", owner), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetTableResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 2)

	groceries := response.Data[0]
	assert.Equal(suite.T(), "Groceries", groceries.Category)
	assert.True(suite.T(), groceries.Actual.Equal(decimal.NewFromInt(300)))
	assert.True(suite.T(), groceries.Budget.Equal(decimal.NewFromInt(400)))
	assert.Equal(suite.T(), "met", string(groceries.Status))

	// (300 + 150) / 2 active months
	assert.True(suite.T(), groceries.SixMonthAverage.Equal(decimal.NewFromInt(225)), "average is %s", groceries.SixMonthAverage)

	salary := response.Data[1]
	assert.True(suite.T(), salary.IsIncome)
	assert.Equal(suite.T(), "", string(salary.Status), "no budget means no status")
}

func (suite *TestSuiteStandard) TestReportTrends() {
	owner := suite.seedReportData()

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/reports/trends?owner=%s&ref=2024-03-15", owner), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TrendsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.CurrentMonth.Equal(types.NewMonth(2024, 2)))
	assert.True(suite.T(), response.Data.PreviousMonth.Equal(types.NewMonth(2024, 1)))

	summary := response.Data.Summary
	assert.True(suite.T(), summary.Income.Equal(decimal.NewFromInt(5000)))
	assert.True(suite.T(), summary.Expenses.Equal(decimal.NewFromInt(450)))
	assert.True(suite.T(), summary.Net.Equal(decimal.NewFromInt(4550)))
}

func (suite *TestSuiteStandard) TestReportTrendsYearsInvalid() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/reports/trends?owner=%s&years=last", uuid.New()), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestReportRefInvalid() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/reports/options?owner=%s&ref=yesterday", uuid.New()), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
