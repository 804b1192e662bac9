package v1

import (
	"github.com/hearth-budget/backend/internal/models"
	"github.com/hearth-budget/backend/internal/types"
	hb_uuid "github.com/hearth-budget/backend/internal/uuid"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	OwnerID  uuid.UUID       `json:"ownerId" example:"d1b4b4c2-9c57-4c24-b1e3-47c1e2f2a4ef"`
	Category string          `json:"category" example:"Groceries"`
	Month    types.Month     `json:"month" example:"2024-03-01T00:00:00.000000Z"`
	Amount   decimal.Decimal `json:"amount" example:"400" minimum:"0"`
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		OwnerID:  editable.OwnerID,
		Category: editable.Category,
		Month:    editable.Month,
		Amount:   editable.Amount,
	}
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
}

func newBudget(model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			OwnerID:  model.OwnerID,
			Category: model.Category,
			Month:    model.Month,
			Amount:   model.Amount,
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`  // List of budgets
	Error *string  `json:"error"` // The error, if any occurred
}

type BudgetCreateResponse struct {
	Data  []BudgetResponse `json:"data"`  // List of the created budgets or their respective error
	Error *string          `json:"error"` // The error, if any occurred
}

func (t *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`  // Data for the budget
	Error *string `json:"error"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Owner    hb_uuid.UUID `form:"owner"`    // By owning user
	Category string       `form:"category"` // By category name
	Month    string       `form:"month"`    // By month in YYYY-MM format
}

// month returns the parsed month filter or the zero Month when unset.
func (f BudgetQueryFilter) month() (types.Month, error) {
	if f.Month == "" {
		return types.Month{}, nil
	}

	return types.ParseMonth(f.Month)
}
