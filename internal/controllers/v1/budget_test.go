package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/hearth-budget/backend/internal/controllers/v1"
	"github.com/hearth-budget/backend/internal/types"
	"github.com/hearth-budget/backend/test"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetCreate() {
	budget := suite.createTestBudget(v1.BudgetEditable{
		Category: "Groceries",
		Month:    types.NewMonth(2024, 3),
		Amount:   decimal.NewFromInt(400),
	})

	assert.NotEqual(suite.T(), uuid.Nil, budget.ID)
	assert.True(suite.T(), budget.Amount.Equal(decimal.NewFromInt(400)))
}

func (suite *TestSuiteStandard) TestBudgetCreateDuplicateMonth() {
	owner := uuid.New()
	suite.createTestBudget(v1.BudgetEditable{
		OwnerID:  owner,
		Category: "Groceries",
		Month:    types.NewMonth(2024, 3),
	})

	// A second budget for the same category and month is rejected
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/budgets", []v1.BudgetEditable{
		{OwnerID: owner, Category: "Groceries", Month: types.NewMonth(2024, 3), Amount: decimal.NewFromInt(1)},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetMonthFilter() {
	owner := uuid.New()
	suite.createTestBudget(v1.BudgetEditable{OwnerID: owner, Category: "Groceries", Month: types.NewMonth(2024, 3)})
	suite.createTestBudget(v1.BudgetEditable{OwnerID: owner, Category: "Groceries", Month: types.NewMonth(2024, 4)})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/budgets?owner=%s&month=2024-03", owner), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.True(suite.T(), response.Data[0].Month.Equal(types.NewMonth(2024, 3)))
}

func (suite *TestSuiteStandard) TestBudgetUpdate() {
	budget := suite.createTestBudget(v1.BudgetEditable{Amount: decimal.NewFromInt(100)})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/budgets/%s", budget.ID), map[string]any{
		"amount": 250,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromInt(250)))
}

func (suite *TestSuiteStandard) TestBudgetDelete() {
	budget := suite.createTestBudget(v1.BudgetEditable{})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("/v1/budgets/%s", budget.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/budgets/%s", budget.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
