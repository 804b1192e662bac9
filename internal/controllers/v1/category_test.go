package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/hearth-budget/backend/internal/controllers/v1"
	"github.com/hearth-budget/backend/test"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoryCreate() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries", Note: "Food"})

	assert.NotEqual(suite.T(), uuid.Nil, category.ID)
	assert.Equal(suite.T(), "Groceries", category.Name)

	// New categories are unclassified
	assert.False(suite.T(), category.IsSavings)
	assert.False(suite.T(), category.IsIncome)
}

func (suite *TestSuiteStandard) TestCategoryCreateDuplicateName() {
	owner := uuid.New()
	suite.createTestCategory(v1.CategoryEditable{OwnerID: owner, Name: "Groceries"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/categories", []v1.CategoryEditable{
		{OwnerID: owner, Name: "Groceries"},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryListSorted() {
	owner := uuid.New()
	suite.createTestCategory(v1.CategoryEditable{OwnerID: owner, Name: "Rent"})
	suite.createTestCategory(v1.CategoryEditable{OwnerID: owner, Name: "Groceries"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/categories?owner=%s", owner), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Groceries", response.Data[0].Name)
	assert.Equal(suite.T(), "Rent", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestCategoryUpdate() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/categories/%s", category.ID), map[string]any{
		"note": "Food and household supplies",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Groceries", response.Data.Name)
	assert.Equal(suite.T(), "Food and household supplies", response.Data.Note)
}

func (suite *TestSuiteStandard) TestCategoryDelete() {
	category := suite.createTestCategory(v1.CategoryEditable{})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("/v1/categories/%s", category.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/categories/%s", category.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryFlags() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Dividends"})

	// Set the savings flag
	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/categories/%s/savings", category.ID), v1.FlagEditable{Value: true})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.IsSavings)
	assert.False(suite.T(), response.Data.IsIncome)

	// Setting the income flag preserves the savings flag
	recorder = test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/categories/%s/income", category.ID), v1.FlagEditable{Value: true})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.IsSavings)
	assert.True(suite.T(), response.Data.IsIncome)

	// Clearing the savings flag preserves the income flag
	recorder = test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/categories/%s/savings", category.ID), v1.FlagEditable{Value: false})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.False(suite.T(), response.Data.IsSavings)
	assert.True(suite.T(), response.Data.IsIncome)

	// The flags are visible on the regular GET as well
	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/categories/%s", category.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.False(suite.T(), response.Data.IsSavings)
	assert.True(suite.T(), response.Data.IsIncome)
}

func (suite *TestSuiteStandard) TestCategoryFlagNotFound() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, "/v1/categories/6a25dec4-fabd-4ad4-ad09-73a2b5e18da1/savings", v1.FlagEditable{Value: true})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
