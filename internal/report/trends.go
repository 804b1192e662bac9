package report

import (
	"slices"
	"strings"
	"time"

	"github.com/hearth-budget/backend/internal/models"
	"github.com/hearth-budget/backend/internal/types"

	"github.com/shopspring/decimal"
)

// TrendRow compares one category's totals between the two most recently
// completed months.
type TrendRow struct {
	Category      string          `json:"category"`
	Previous      decimal.Decimal `json:"previous"`
	Current       decimal.Decimal `json:"current"`
	Delta         decimal.Decimal `json:"delta"`
	PercentChange *int64          `json:"percentChange"` // nil when the previous month had no spend
}

// PersonSplit attributes an amount across the household.
//
// The "Both" bucket counts half towards each person for the percentage.
// Raegan's percentage absorbs the rounding remainder so the two always add
// up to 100 (or are both 0 when there is nothing to split).
type PersonSplit struct {
	Roger         decimal.Decimal `json:"roger"`
	Raegan        decimal.Decimal `json:"raegan"`
	Both          decimal.Decimal `json:"both"`
	RogerPercent  int64           `json:"rogerPercent"`
	RaeganPercent int64           `json:"raeganPercent"`
}

// Summary holds the year-filtered income/expense/savings totals.
//
// Income takes precedence over savings: a category flagged as both counts
// towards income only. Expenses are everything that is not income, which
// includes savings.
type Summary struct {
	Years        []int           `json:"years"`
	Income       decimal.Decimal `json:"income"`
	Expenses     decimal.Decimal `json:"expenses"`
	Savings      decimal.Decimal `json:"savings"`
	Net          decimal.Decimal `json:"net"`
	IncomeSplit  PersonSplit     `json:"incomeSplit"`
	ExpenseSplit PersonSplit     `json:"expenseSplit"`
}

// TrendReport is the combined month-over-month and summary report.
type TrendReport struct {
	CurrentMonth   types.Month `json:"currentMonth"`
	PreviousMonth  types.Month `json:"previousMonth"`
	MonthOverMonth []TrendRow  `json:"monthOverMonth"`
	Summary        Summary     `json:"summary"`
}

// BuildTrends compares the two most recently completed months per
// category and summarizes income, expenses and savings over the selected
// years. An empty year selection means all years present in the snapshot.
func BuildTrends(s Snapshot, selectedYears []int, ref time.Time) TrendReport {
	current, previous := LastTwoCompleteMonths(ref)

	return TrendReport{
		CurrentMonth:   current,
		PreviousMonth:  previous,
		MonthOverMonth: monthOverMonth(s.Transactions, current, previous),
		Summary:        summarize(s, selectedYears),
	}
}

func monthOverMonth(transactions []models.Transaction, current, previous types.Month) []TrendRow {
	currentTotals := make(map[string]decimal.Decimal)
	previousTotals := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		switch {
		case current.Contains(t.Date):
			currentTotals[t.Category] = currentTotals[t.Category].Add(t.Amount)
		case previous.Contains(t.Date):
			previousTotals[t.Category] = previousTotals[t.Category].Add(t.Amount)
		}
	}

	names := make(map[string]bool)
	for name := range currentTotals {
		names[name] = true
	}
	for name := range previousTotals {
		names[name] = true
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	slices.SortFunc(sorted, strings.Compare)

	rows := make([]TrendRow, 0, len(sorted))
	for _, name := range sorted {
		currentTotal := currentTotals[name]
		previousTotal := previousTotals[name]

		delta := currentTotal.Sub(previousTotal)
		if delta.IsZero() {
			continue
		}

		row := TrendRow{
			Category: name,
			Previous: previousTotal,
			Current:  currentTotal,
			Delta:    delta,
		}

		// A change from a zero base has no meaningful percentage
		if !previousTotal.IsZero() {
			change := delta.Div(previousTotal).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
			row.PercentChange = &change
		}

		rows = append(rows, row)
	}

	return rows
}

func summarize(s Snapshot, selectedYears []int) Summary {
	years := selectedYears
	if len(years) == 0 {
		years = DistinctYears(s.Transactions)
	}

	inYears := make(map[int]bool, len(years))
	for _, y := range years {
		inYears[y] = true
	}

	summary := Summary{Years: years}

	for _, t := range s.Transactions {
		if !inYears[t.Date.Year()] {
			continue
		}

		classification := Classify(t.Category, s.Settings)

		if classification.IsIncome {
			summary.Income = summary.Income.Add(t.Amount)
			summary.IncomeSplit = addToSplit(summary.IncomeSplit, t)
			continue
		}

		summary.Expenses = summary.Expenses.Add(t.Amount)
		summary.ExpenseSplit = addToSplit(summary.ExpenseSplit, t)

		if classification.IsSavings {
			summary.Savings = summary.Savings.Add(t.Amount)
		}
	}

	summary.Net = summary.Income.Sub(summary.Expenses)
	summary.IncomeSplit = withPercentages(summary.IncomeSplit)
	summary.ExpenseSplit = withPercentages(summary.ExpenseSplit)

	return summary
}

func addToSplit(split PersonSplit, t models.Transaction) PersonSplit {
	switch t.Person {
	case PersonRoger:
		split.Roger = split.Roger.Add(t.Amount)
	case PersonRaegan:
		split.Raegan = split.Raegan.Add(t.Amount)
	case PersonBoth:
		split.Both = split.Both.Add(t.Amount)
	}
	// Unknown persons are counted in the aggregate totals only

	return split
}

func withPercentages(split PersonSplit) PersonSplit {
	total := split.Roger.Add(split.Raegan).Add(split.Both)
	if total.IsZero() {
		return split
	}

	half := decimal.NewFromFloat(0.5)
	rogerShare := split.Roger.Add(split.Both.Mul(half))

	split.RogerPercent = rogerShare.Div(total).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	split.RaeganPercent = 100 - split.RogerPercent

	return split
}
