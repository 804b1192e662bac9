package v1

import (
	"github.com/hearth-budget/backend/internal/models"
	hb_uuid "github.com/hearth-budget/backend/internal/uuid"

	"github.com/google/uuid"
)

// MatchRuleEditable represents all user configurable parameters
type MatchRuleEditable struct {
	OwnerID  uuid.UUID `json:"ownerId" example:"d1b4b4c2-9c57-4c24-b1e3-47c1e2f2a4ef"`
	Priority uint      `json:"priority" example:"1"`
	Match    string    `json:"match" example:"Corner Store*"`
	Category string    `json:"category" example:"Groceries"`
}

func (editable MatchRuleEditable) model() models.MatchRule {
	return models.MatchRule{
		OwnerID:  editable.OwnerID,
		Priority: editable.Priority,
		Match:    editable.Match,
		Category: editable.Category,
	}
}

type MatchRule struct {
	models.DefaultModel
	MatchRuleEditable
}

func newMatchRule(model models.MatchRule) MatchRule {
	return MatchRule{
		DefaultModel: model.DefaultModel,
		MatchRuleEditable: MatchRuleEditable{
			OwnerID:  model.OwnerID,
			Priority: model.Priority,
			Match:    model.Match,
			Category: model.Category,
		},
	}
}

type MatchRuleListResponse struct {
	Data  []MatchRule `json:"data"`  // List of match rules
	Error *string     `json:"error"` // The error, if any occurred
}

type MatchRuleCreateResponse struct {
	Data  []MatchRuleResponse `json:"data"`  // List of the created match rules or their respective error
	Error *string             `json:"error"` // The error, if any occurred
}

func (t *MatchRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, MatchRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MatchRuleResponse struct {
	Data  *MatchRule `json:"data"`  // Data for the match rule
	Error *string    `json:"error"` // The error, if any occurred
}

type MatchRuleQueryFilter struct {
	Owner    hb_uuid.UUID `form:"owner"`    // By owning user
	Category string       `form:"category"` // By category the rule sets
	Match    string       `form:"match"`    // By exact match pattern
}
