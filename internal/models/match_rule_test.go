package models_test

import (
	"github.com/hearth-budget/backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestMatchRuleTrimWhitespace() {
	rule := models.MatchRule{
		OwnerID:  uuid.New(),
		Priority: 1,
		Match:    " Corner Store* ",
		Category: " Groceries ",
	}
	require.Nil(suite.T(), models.DB.Create(&rule).Error)

	assert.Equal(suite.T(), "Corner Store*", rule.Match)
	assert.Equal(suite.T(), "Groceries", rule.Category)
}

func (suite *TestSuiteStandard) TestMatchRuleCategoryRequired() {
	err := models.DB.Create(&models.MatchRule{Match: "*"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryRequired)
}
