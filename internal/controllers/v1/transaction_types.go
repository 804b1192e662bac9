package v1

import (
	"time"

	"github.com/hearth-budget/backend/internal/models"
	"github.com/hearth-budget/backend/internal/types"
	hb_uuid "github.com/hearth-budget/backend/internal/uuid"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	OwnerID  uuid.UUID       `json:"ownerId" example:"d1b4b4c2-9c57-4c24-b1e3-47c1e2f2a4ef"`
	Date     time.Time       `json:"date" example:"2024-03-05T00:00:00Z"`
	Category string          `json:"category" example:"Groceries"`
	Place    string          `json:"place" example:"Corner Store"`
	Amount   decimal.Decimal `json:"amount" example:"42" minimum:"0"`
	Person   string          `json:"person" example:"Roger"`
	Notes    string          `json:"notes" example:"Weekly shop" default:""`
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		OwnerID:  editable.OwnerID,
		Date:     editable.Date,
		Category: editable.Category,
		Place:    editable.Place,
		Amount:   editable.Amount,
		Person:   editable.Person,
		Notes:    editable.Notes,
	}
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
}

func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			OwnerID:  model.OwnerID,
			Date:     model.Date,
			Category: model.Category,
			Place:    model.Place,
			Amount:   model.Amount,
			Person:   model.Person,
			Notes:    model.Notes,
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`       // List of transactions
	Error      *string       `json:"error"`      // The error, if any occurred
	Pagination *Pagination   `json:"pagination"` // Pagination information
}

type TransactionCreateResponse struct {
	Data  []TransactionResponse `json:"data"`  // List of the created transactions or their respective error
	Error *string               `json:"error"` // The error, if any occurred
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`  // Data for the transaction
	Error *string      `json:"error"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Owner    hb_uuid.UUID `form:"owner"`                      // By owning user
	Category string       `form:"category"`                   // By category name
	Month    string       `form:"month"`                      // By month in YYYY-MM format
	Person   string       `form:"person"`                     // By person
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first transaction returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of transactions to return. Defaults to 50.
}

// month returns the parsed month filter or the zero Month when unset.
func (f TransactionQueryFilter) month() (types.Month, error) {
	if f.Month == "" {
		return types.Month{}, nil
	}

	return types.ParseMonth(f.Month)
}
