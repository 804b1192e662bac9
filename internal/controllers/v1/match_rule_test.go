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

func (suite *TestSuiteStandard) TestMatchRuleCreate() {
	rule := suite.createTestMatchRule(v1.MatchRuleEditable{
		Priority: 1,
		Match:    "Corner Store*",
		Category: "Groceries",
	})

	assert.NotEqual(suite.T(), uuid.Nil, rule.ID)
	assert.Equal(suite.T(), "Corner Store*", rule.Match)
}

func (suite *TestSuiteStandard) TestMatchRuleListOrderedByPriority() {
	owner := uuid.New()
	suite.createTestMatchRule(v1.MatchRuleEditable{OwnerID: owner, Priority: 2, Match: "B*", Category: "Second"})
	suite.createTestMatchRule(v1.MatchRuleEditable{OwnerID: owner, Priority: 1, Match: "A*", Category: "First"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/match-rules?owner=%s", owner), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "First", response.Data[0].Category)
	assert.Equal(suite.T(), "Second", response.Data[1].Category)
}

func (suite *TestSuiteStandard) TestMatchRuleUpdate() {
	rule := suite.createTestMatchRule(v1.MatchRuleEditable{Match: "Cnr Store*", Category: "Groceries"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/match-rules/%s", rule.ID), map[string]any{
		"match": "Corner Store*",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Corner Store*", response.Data.Match)
	assert.Equal(suite.T(), "Groceries", response.Data.Category)
}

func (suite *TestSuiteStandard) TestMatchRuleDelete() {
	rule := suite.createTestMatchRule(v1.MatchRuleEditable{})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("/v1/match-rules/%s", rule.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/match-rules/%s", rule.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
