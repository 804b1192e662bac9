package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents a single expense or income record.
type Transaction struct {
	DefaultModel
	OwnerID   uuid.UUID       `json:"ownerId" gorm:"index"` // The user the transaction belongs to
	Date      time.Time       `json:"date"`                 // Day the transaction happened, stored as UTC midnight
	Category  string          `json:"category"`             // Name of the category, a loose reference
	Place     string          `json:"place"`                // Where the money was spent or earned
	Amount    decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Person    string          `json:"person"`                 // Who the transaction is attributed to
	Notes     string          `json:"notes"`                  // Free text notes
	DeletedAt gorm.DeletedAt  `json:"deletedAt" gorm:"index"` // Soft delete, reports never see deleted transactions
}

// BeforeSave
//   - normalizes the date to UTC midnight of its calendar day
//   - trims whitespace from string fields
//   - rejects negative amounts and empty categories
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Category = strings.TrimSpace(t.Category)
	t.Place = strings.TrimSpace(t.Place)
	t.Person = strings.TrimSpace(t.Person)
	t.Notes = strings.TrimSpace(t.Notes)

	if t.Category == "" {
		return ErrCategoryRequired
	}

	if t.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	}

	// Time of day carries no meaning, only the calendar day does
	year, month, day := t.Date.Date()
	t.Date = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return nil
}

// AfterFind enforces UTC on the date so that month bucketing is stable.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}
