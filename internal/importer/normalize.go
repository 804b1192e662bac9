// Package importer turns spreadsheet exports into transactions.
package importer

import (
	"errors"
	"strings"
	"time"

	"github.com/hearth-budget/backend/internal/report"

	"github.com/shopspring/decimal"
)

// Row is a normalized import row, ready to be persisted as a transaction.
type Row struct {
	Line     int // line number in the source file
	Category string
	Date     time.Time
	Place    string
	Amount   decimal.Decimal
	Person   string
}

var (
	ErrTooFewFields    = errors.New("the row must have at least five fields: category, date, place, amount, person")
	ErrCategoryMissing = errors.New("the category field must not be empty")
	ErrDateMissing     = errors.New("the date field must not be empty")
	ErrDateInvalid     = errors.New("the date could not be parsed, use MM/DD/YYYY or YYYY-MM-DD")
	ErrPlaceMissing    = errors.New("the place field must not be empty")
	ErrPersonMissing   = errors.New("the person field must not be empty")
	ErrPersonUnknown   = errors.New("the person must be Roger, Raegan or Both")
)

// Field positions in an import row. Additional fields are ignored.
const (
	fieldCategory = iota
	fieldDate
	fieldPlace
	fieldAmount
	fieldPerson
	fieldCount
)

// NormalizeRow validates and coerces the raw fields of one imported row.
//
// An unparseable amount becomes zero instead of rejecting the row; all
// other validation failures reject it.
func NormalizeRow(fields []string) (Row, error) {
	if len(fields) < fieldCount {
		return Row{}, ErrTooFewFields
	}

	category := strings.TrimSpace(fields[fieldCategory])
	if category == "" {
		return Row{}, ErrCategoryMissing
	}

	place := strings.TrimSpace(fields[fieldPlace])
	if place == "" {
		return Row{}, ErrPlaceMissing
	}

	person := strings.TrimSpace(fields[fieldPerson])
	if person == "" {
		return Row{}, ErrPersonMissing
	}
	if !report.KnownPerson(person) {
		return Row{}, ErrPersonUnknown
	}

	date, err := parseDate(strings.TrimSpace(fields[fieldDate]))
	if err != nil {
		return Row{}, err
	}

	return Row{
		Category: category,
		Date:     date,
		Place:    place,
		Amount:   parseAmount(fields[fieldAmount]),
		Person:   person,
	}, nil
}

// parseDate accepts MM/DD/YYYY and YYYY-MM-DD. Both formats resolve to
// the same calendar date at UTC midnight.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, ErrDateMissing
	}

	for _, layout := range []string{"01/02/2006", "2006-01-02"} {
		date, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return date, nil
		}
	}

	return time.Time{}, ErrDateInvalid
}

// parseAmount strips currency symbols, thousands separators and quotes
// before parsing. Anything that still does not parse is treated as zero.
func parseAmount(s string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '$', ',', '"', '\'', ' ':
			return -1
		}
		return r
	}, s)

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}

	return amount
}
