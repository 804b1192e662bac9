package models

import (
	"strings"

	"github.com/hearth-budget/backend/internal/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the planned spending ceiling for one category in one month.
//
// The unique index guarantees at most one budget per owner, category and
// month, so "which record wins" can never come up in reporting.
type Budget struct {
	DefaultModel
	OwnerID  uuid.UUID       `json:"ownerId" gorm:"uniqueIndex:budget_owner_category_month"`
	Category string          `json:"category" gorm:"uniqueIndex:budget_owner_category_month"`
	Month    types.Month     `json:"month" gorm:"uniqueIndex:budget_owner_category_month" example:"2024-03-01T00:00:00.000000Z"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) (err error) {
	b.Category = strings.TrimSpace(b.Category)

	if b.Category == "" {
		return ErrCategoryRequired
	}

	if b.Month.IsZero() {
		return ErrMonthRequired
	}

	if b.Amount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}
