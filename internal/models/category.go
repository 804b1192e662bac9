package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a user defined spending or income label.
//
// Transactions and budgets reference categories by name, not by ID. A
// transaction citing a category without a Category record is tolerated
// everywhere.
type Category struct {
	DefaultModel
	OwnerID uuid.UUID `json:"ownerId" gorm:"uniqueIndex:category_owner_name"`
	Name    string    `json:"name" gorm:"uniqueIndex:category_owner_name" example:"Groceries"`
	Note    string    `json:"note,omitempty"`
}

func (c *Category) BeforeSave(_ *gorm.DB) (err error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	if c.Name == "" {
		return ErrNameRequired
	}

	return nil
}
