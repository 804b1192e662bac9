package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrCategoryNameNotUnique     = errors.New("the category name must be unique per owner")
	ErrCategorySettingsNotUnique = errors.New("there can only be one settings record per owner and category")
	ErrBudgetMonthNotUnique      = errors.New("you can not create multiple budgets for the same category and month")

	ErrAmountNegative   = errors.New("the amount must not be negative")
	ErrCategoryRequired = errors.New("the category must be set")
	ErrNameRequired     = errors.New("the name must be set")
	ErrMonthRequired    = errors.New("the month must be set")
)
