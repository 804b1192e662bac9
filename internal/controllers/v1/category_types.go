package v1

import (
	"github.com/hearth-budget/backend/internal/models"
	hb_uuid "github.com/hearth-budget/backend/internal/uuid"

	"github.com/google/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	OwnerID uuid.UUID `json:"ownerId" example:"d1b4b4c2-9c57-4c24-b1e3-47c1e2f2a4ef"`
	Name    string    `json:"name" example:"Groceries"`
	Note    string    `json:"note" example:"Food and household supplies" default:""`
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		OwnerID: editable.OwnerID,
		Name:    editable.Name,
		Note:    editable.Note,
	}
}

type Category struct {
	models.DefaultModel
	CategoryEditable

	// Classification flags from the settings record, false when no record exists
	IsSavings bool `json:"isSavings" example:"false"`
	IsIncome  bool `json:"isIncome" example:"false"`
}

func newCategory(model models.Category, settings models.CategorySettings) Category {
	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			OwnerID: model.OwnerID,
			Name:    model.Name,
			Note:    model.Note,
		},
		IsSavings: settings.IsSavings,
		IsIncome:  settings.IsIncome,
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`  // List of categories
	Error *string    `json:"error"` // The error, if any occurred
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`  // List of the created categories or their respective error
	Error *string            `json:"error"` // The error, if any occurred
}

func (t *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`  // Data for the category
	Error *string   `json:"error"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Owner hb_uuid.UUID `form:"owner"` // By owning user
	Name  string       `form:"name"`  // By exact name
}

// FlagEditable is the request body for the savings and income flag endpoints.
type FlagEditable struct {
	Value bool `json:"value" example:"true"`
}
