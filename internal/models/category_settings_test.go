package models_test

import (
	"github.com/hearth-budget/backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSetIsSavingsCreatesRecord() {
	owner := uuid.New()

	settings, err := models.SetIsSavings(models.DB, owner, "401k", true)
	require.Nil(suite.T(), err)

	assert.True(suite.T(), settings.IsSavings)
	assert.False(suite.T(), settings.IsIncome)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.CategorySettings{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestSetFlagPreservesOtherFlag() {
	owner := uuid.New()

	_, err := models.SetIsSavings(models.DB, owner, "Dividends", true)
	require.Nil(suite.T(), err)

	// Setting the income flag must not touch the savings flag
	settings, err := models.SetIsIncome(models.DB, owner, "Dividends", true)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), settings.IsSavings)
	assert.True(suite.T(), settings.IsIncome)

	// Clearing one flag keeps the other
	settings, err = models.SetIsSavings(models.DB, owner, "Dividends", false)
	require.Nil(suite.T(), err)
	assert.False(suite.T(), settings.IsSavings)
	assert.True(suite.T(), settings.IsIncome)

	// Still exactly one record for the category
	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.CategorySettings{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestSetFlagPerOwner() {
	_, err := models.SetIsIncome(models.DB, uuid.New(), "Salary", true)
	require.Nil(suite.T(), err)

	_, err = models.SetIsIncome(models.DB, uuid.New(), "Salary", true)
	require.Nil(suite.T(), err)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.CategorySettings{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(2), count)
}

func (suite *TestSuiteStandard) TestCategorySettingsCategoryRequired() {
	err := models.DB.Create(&models.CategorySettings{Category: " "}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryRequired)
}
