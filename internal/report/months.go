package report

import (
	"slices"
	"time"

	"github.com/hearth-budget/backend/internal/models"
	"github.com/hearth-budget/backend/internal/types"
)

// DistinctMonths returns every month that has at least one transaction,
// most recent first. This drives month selection lists.
func DistinctMonths(transactions []models.Transaction) []types.Month {
	seen := make(map[types.Month]bool)
	for _, t := range transactions {
		seen[types.MonthOf(t.Date)] = true
	}

	months := make([]types.Month, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}

	slices.SortFunc(months, func(a, b types.Month) int {
		if a.After(b) {
			return -1
		}
		if b.After(a) {
			return 1
		}
		return 0
	})

	return months
}

// DistinctYears returns every year that has at least one transaction,
// in ascending order.
func DistinctYears(transactions []models.Transaction) []int {
	seen := make(map[int]bool)
	for _, t := range transactions {
		seen[t.Date.Year()] = true
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}

	slices.Sort(years)
	return years
}

// LastTwoCompleteMonths returns the most recently completed month and the
// month before that, relative to the reference date. The in-progress month
// is deliberately excluded so that a partial month is never compared
// against a complete one.
func LastTwoCompleteMonths(ref time.Time) (current, previous types.Month) {
	current = types.MonthOf(ref).AddDate(0, -1)
	previous = current.AddDate(0, -1)
	return current, previous
}

// DaysRemainingInMonth returns the number of calendar days between the
// reference date and the end of its month.
func DaysRemainingInMonth(ref time.Time) int {
	year, month, day := ref.Date()
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, ref.Location()).Day()
	return lastDay - day
}
