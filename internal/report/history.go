package report

import (
	"slices"
	"strings"

	"github.com/hearth-budget/backend/internal/models"
	"github.com/hearth-budget/backend/internal/types"

	"github.com/shopspring/decimal"
)

// CategoryGroup is one category's transactions for a month.
type CategoryGroup struct {
	Category     string               `json:"category"`
	Total        decimal.Decimal      `json:"total"`
	Budget       *decimal.Decimal     `json:"budget"` // nil when no budget record exists, distinct from a zero budget
	Transactions []models.Transaction `json:"transactions"`
}

// BuildHistory groups the given month's transactions by category.
//
// Transactions within a group are ordered by date descending; ties keep
// their original input order so that output is reproducible. Groups are
// ordered by category name. A month without transactions yields an empty
// result.
func BuildHistory(s Snapshot, month types.Month) []CategoryGroup {
	byCategory := make(map[string][]models.Transaction)
	for _, t := range s.Transactions {
		if !month.Contains(t.Date) {
			continue
		}
		byCategory[t.Category] = append(byCategory[t.Category], t)
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	slices.SortFunc(names, strings.Compare)

	groups := make([]CategoryGroup, 0, len(names))
	for _, name := range names {
		transactions := byCategory[name]

		total := decimal.Zero
		for _, t := range transactions {
			total = total.Add(t.Amount)
		}

		slices.SortStableFunc(transactions, func(a, b models.Transaction) int {
			return b.Date.Compare(a.Date)
		})

		groups = append(groups, CategoryGroup{
			Category:     name,
			Total:        total,
			Budget:       budgetAmount(s.Budgets, name, month),
			Transactions: transactions,
		})
	}

	return groups
}

// budgetAmount returns the budget amount for a category and month, or nil
// when no budget record exists. Uniqueness of (category, month) is
// guaranteed by the persistence layer.
func budgetAmount(budgets []models.Budget, category string, month types.Month) *decimal.Decimal {
	for _, b := range budgets {
		if b.Category == category && b.Month.Equal(month) {
			amount := b.Amount
			return &amount
		}
	}
	return nil
}
