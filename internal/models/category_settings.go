package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategorySettings is the income/savings classification of a category.
//
// A missing record means the category is neither income nor savings.
type CategorySettings struct {
	DefaultModel
	OwnerID   uuid.UUID `json:"ownerId" gorm:"uniqueIndex:settings_owner_category"`
	Category  string    `json:"category" gorm:"uniqueIndex:settings_owner_category"`
	IsSavings bool      `json:"isSavings"`
	IsIncome  bool      `json:"isIncome"`
}

func (s *CategorySettings) BeforeSave(_ *gorm.DB) (err error) {
	s.Category = strings.TrimSpace(s.Category)

	if s.Category == "" {
		return ErrCategoryRequired
	}

	return nil
}

// SetIsSavings sets the savings flag for a category, creating the settings
// record if it does not exist. The income flag keeps its current value.
func SetIsSavings(db *gorm.DB, owner uuid.UUID, category string, value bool) (CategorySettings, error) {
	return setFlag(db, owner, category, func(s *CategorySettings) {
		s.IsSavings = value
	})
}

// SetIsIncome sets the income flag for a category, creating the settings
// record if it does not exist. The savings flag keeps its current value.
func SetIsIncome(db *gorm.DB, owner uuid.UUID, category string, value bool) (CategorySettings, error) {
	return setFlag(db, owner, category, func(s *CategorySettings) {
		s.IsIncome = value
	})
}

func setFlag(db *gorm.DB, owner uuid.UUID, category string, update func(*CategorySettings)) (CategorySettings, error) {
	var settings CategorySettings

	err := db.Where(CategorySettings{OwnerID: owner, Category: category}).
		FirstOrInit(&settings).Error
	if err != nil {
		return CategorySettings{}, err
	}

	update(&settings)

	err = db.Save(&settings).Error
	if err != nil {
		return CategorySettings{}, err
	}

	return settings, nil
}
