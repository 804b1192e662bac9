package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/hearth-budget/backend/internal/controllers/v1"
	"github.com/hearth-budget/backend/test"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTransactionOptions() {
	recorder := test.Request(suite.T(), suite.router, http.MethodOptions, "/v1/transactions", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestTransactionCreate() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{
		Category: "Groceries",
		Place:    "Corner Store",
		Amount:   decimal.NewFromFloat(42.5),
		Person:   "Roger",
	})

	assert.NotEqual(suite.T(), uuid.Nil, transaction.ID)
	assert.True(suite.T(), transaction.Amount.Equal(decimal.NewFromFloat(42.5)))
}

func (suite *TestSuiteStandard) TestTransactionCreateInvalid() {
	// Negative amounts are rejected, the per-resource error is reported
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/transactions", []v1.TransactionEditable{
		{Category: "Groceries", Amount: decimal.NewFromInt(-1)},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.NotNil(suite.T(), response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestTransactionCreateBrokenBody() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/transactions", `{ "broken`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionGetFilters() {
	owner := uuid.New()

	suite.createTestTransaction(v1.TransactionEditable{
		OwnerID:  owner,
		Category: "Groceries",
		Person:   "Roger",
		Date:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(10),
	})
	suite.createTestTransaction(v1.TransactionEditable{
		OwnerID:  owner,
		Category: "Rent",
		Person:   "Both",
		Date:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(1200),
	})
	// Different owner
	suite.createTestTransaction(v1.TransactionEditable{
		Category: "Groceries",
		Amount:   decimal.NewFromInt(99),
	})

	tests := []struct {
		query string
		count int
	}{
		{fmt.Sprintf("owner=%s", owner), 2},
		{fmt.Sprintf("owner=%s&category=Groceries", owner), 1},
		{fmt.Sprintf("owner=%s&month=2024-02", owner), 1},
		{fmt.Sprintf("owner=%s&person=Both", owner), 1},
		{fmt.Sprintf("owner=%s&month=2023-01", owner), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodGet, fmt.Sprintf("/v1/transactions?%s", tt.query), nil)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionGetMonthInvalid() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions?month=notamonth", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionPagination() {
	owner := uuid.New()

	for i := 0; i < 5; i++ {
		suite.createTestTransaction(v1.TransactionEditable{
			OwnerID: owner,
			Date:    time.Date(2024, 3, i+1, 0, 0, 0, 0, time.UTC),
			Amount:  decimal.NewFromInt(int64(i + 1)),
		})
	}

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/transactions?owner=%s&offset=2&limit=2", owner), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 2)
	require.NotNil(suite.T(), response.Pagination)
	assert.Equal(suite.T(), int64(5), response.Pagination.Total)
	assert.Equal(suite.T(), uint(2), response.Pagination.Offset)
	assert.Equal(suite.T(), 2, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestTransactionGetSingle() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{Amount: decimal.NewFromInt(10)})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), transaction.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestTransactionNotFound() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions/6a25dec4-fabd-4ad4-ad09-73a2b5e18da1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionInvalidID() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions/notauuid", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionUpdate() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{
		Place:  "Corner Store",
		Amount: decimal.NewFromInt(10),
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", transaction.ID), map[string]any{
		"notes": "updated",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Unset fields keep their value
	assert.Equal(suite.T(), "updated", response.Data.Notes)
	assert.Equal(suite.T(), "Corner Store", response.Data.Place)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromInt(10)))
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{Amount: decimal.NewFromInt(10)})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", transaction.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// The transaction is gone from the API
	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
