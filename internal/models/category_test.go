package models_test

import (
	"github.com/hearth-budget/backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	category := models.Category{
		OwnerID: uuid.New(),
		Name:    "\t Groceries   ",
		Note:    " Some more whitespace in the note    ",
	}
	require.Nil(suite.T(), models.DB.Create(&category).Error)

	assert.Equal(suite.T(), "Groceries", category.Name)
	assert.Equal(suite.T(), "Some more whitespace in the note", category.Note)
}

func (suite *TestSuiteStandard) TestCategoryNameRequired() {
	err := models.DB.Create(&models.Category{Name: "  "}).Error
	assert.ErrorIs(suite.T(), err, models.ErrNameRequired)
}

func (suite *TestSuiteStandard) TestCategoryNameUniquePerOwner() {
	owner := uuid.New()

	require.Nil(suite.T(), models.DB.Create(&models.Category{OwnerID: owner, Name: "Groceries"}).Error)

	err := models.DB.Create(&models.Category{OwnerID: owner, Name: "Groceries"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)

	// The same name is fine for another owner
	err = models.DB.Create(&models.Category{OwnerID: uuid.New(), Name: "Groceries"}).Error
	assert.Nil(suite.T(), err)
}
