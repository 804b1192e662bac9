package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRule maps imported transactions to a category by globbing on the
// place field. Rules are applied in ascending priority order, the first
// match wins.
type MatchRule struct {
	DefaultModel
	OwnerID  uuid.UUID `json:"ownerId" gorm:"index"`
	Priority uint      `json:"priority" example:"1"`
	Match    string    `json:"match" example:"Corner Store*"` // Glob pattern matched against the place
	Category string    `json:"category" example:"Groceries"`  // Category to set when the pattern matches
}

func (r *MatchRule) BeforeSave(_ *gorm.DB) (err error) {
	r.Match = strings.TrimSpace(r.Match)
	r.Category = strings.TrimSpace(r.Category)

	if r.Category == "" {
		return ErrCategoryRequired
	}

	return nil
}
