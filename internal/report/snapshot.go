// Package report implements the aggregation and reporting engine.
//
// Every function in this package is a pure computation over an immutable
// snapshot of one owner's data: callers own all state, the package holds
// none. Inputs are never mutated and results are freshly allocated, so
// concurrent calls are safe by construction.
package report

import (
	"github.com/hearth-budget/backend/internal/models"
)

// The persons recognized by the person split calculations. Transactions
// attributed to anyone else still count towards aggregate totals but are
// left out of the splits.
const (
	PersonRoger  = "Roger"
	PersonRaegan = "Raegan"
	PersonBoth   = "Both"
)

// KnownPerson reports whether p is one of the recognized persons.
func KnownPerson(p string) bool {
	return p == PersonRoger || p == PersonRaegan || p == PersonBoth
}

// Classification is the income/savings flag pair of a category.
type Classification struct {
	IsSavings bool `json:"isSavings"`
	IsIncome  bool `json:"isIncome"`
}

// Snapshot is a read-only view of one owner's data, as handed over by the
// persistence layer. Transactions must already be filtered to non-deleted
// records.
type Snapshot struct {
	Transactions []models.Transaction
	Categories   []string                  // names of all registered categories
	Settings     map[string]Classification // classification per category name
	Budgets      []models.Budget
}

// Classify returns the classification for a category. Categories without
// a settings record are neither income nor savings.
func Classify(category string, settings map[string]Classification) Classification {
	if c, ok := settings[category]; ok {
		return c
	}
	return Classification{}
}
