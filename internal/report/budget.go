package report

import (
	"slices"
	"strings"
	"time"

	"github.com/hearth-budget/backend/internal/models"
	"github.com/hearth-budget/backend/internal/types"

	"github.com/shopspring/decimal"
)

// BudgetRowStatus classifies how a category's actual spend relates to its
// budget. Rows without spend or without a nonzero budget stay unclassified.
type BudgetRowStatus string

const (
	BudgetRowStatusNone     BudgetRowStatus = ""
	BudgetRowStatusMet      BudgetRowStatus = "met"
	BudgetRowStatusExceeded BudgetRowStatus = "exceeded"
)

// BudgetRow is one category's line in the budget-vs-actual table.
type BudgetRow struct {
	Category        string          `json:"category"`
	IsSavings       bool            `json:"isSavings"`
	IsIncome        bool            `json:"isIncome"`
	SixMonthAverage decimal.Decimal `json:"sixMonthAverage"`
	Budget          decimal.Decimal `json:"budget"` // 0 when no budget record exists
	Actual          decimal.Decimal `json:"actual"`
	Status          BudgetRowStatus `json:"status,omitempty"`
}

// BuildBudgetTable computes the budget-vs-actual table for a month.
//
// The table covers the union of all registered categories and every
// category that appears in the month's transactions, so spend in an
// unregistered category still surfaces. The six-month average is always
// relative to the reference date, not the selected month.
func BuildBudgetTable(s Snapshot, month types.Month, ref time.Time) []BudgetRow {
	actuals := make(map[string]decimal.Decimal)
	for _, t := range s.Transactions {
		if !month.Contains(t.Date) {
			continue
		}
		actuals[t.Category] = actuals[t.Category].Add(t.Amount)
	}

	candidates := make(map[string]bool)
	for _, name := range s.Categories {
		candidates[name] = true
	}
	for name := range actuals {
		candidates[name] = true
	}

	names := make([]string, 0, len(candidates))
	for name := range candidates {
		names = append(names, name)
	}
	slices.SortFunc(names, strings.Compare)

	rows := make([]BudgetRow, 0, len(names))
	for _, name := range names {
		actual := actuals[name]

		budget := decimal.Zero
		if amount := budgetAmount(s.Budgets, name, month); amount != nil {
			budget = *amount
		}

		classification := Classify(name, s.Settings)

		rows = append(rows, BudgetRow{
			Category:        name,
			IsSavings:       classification.IsSavings,
			IsIncome:        classification.IsIncome,
			SixMonthAverage: SixMonthAverage(s.Transactions, name, ref),
			Budget:          budget,
			Actual:          actual,
			Status:          budgetRowStatus(budget, actual),
		})
	}

	return rows
}

// budgetRowStatus implements the status thresholds: a row is only
// classified when a nonzero budget exists and there was actual spend.
// Zero spend under a positive budget is not "met".
func budgetRowStatus(budget, actual decimal.Decimal) BudgetRowStatus {
	if !budget.IsPositive() || !actual.IsPositive() {
		return BudgetRowStatusNone
	}

	if actual.LessThanOrEqual(budget) {
		return BudgetRowStatusMet
	}

	return BudgetRowStatusExceeded
}

// SixMonthAverage computes the rolling average spend for a category over
// the six complete months preceding the reference date's month.
//
// The divisor is the number of window months that actually had
// transactions, not a fixed six. A category billed every other month is
// averaged over its active months instead of being diluted, and a
// category with no activity in the window averages to zero.
func SixMonthAverage(transactions []models.Transaction, category string, ref time.Time) decimal.Decimal {
	windowEnd := types.MonthOf(ref)         // exclusive, the in-progress month never counts
	windowStart := windowEnd.AddDate(0, -6) // inclusive

	totals := make(map[types.Month]decimal.Decimal)
	for _, t := range transactions {
		if t.Category != category {
			continue
		}

		m := types.MonthOf(t.Date)
		if m.Before(windowStart) || !m.Before(windowEnd) {
			continue
		}

		totals[m] = totals[m].Add(t.Amount)
	}

	if len(totals) == 0 {
		return decimal.Zero
	}

	sum := decimal.Zero
	for _, total := range totals {
		sum = sum.Add(total)
	}

	return sum.Div(decimal.NewFromInt(int64(len(totals)))).Round(0)
}
