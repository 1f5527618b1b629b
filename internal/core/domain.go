package core

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DefaultCategories is the fallback expense category list used when the
// settings store is empty or unreachable.
var DefaultCategories = []string{
	"Gas",
	"Groceries",
	"Packaging",
	"Wages",
	"Rice Mill",
	"Miscellaneous",
}

type (
	Money struct {
		Cents int64
	}

	// SaleRow is a raw sales entry exactly as the store holds it. Fields
	// stay strings; parsing happens at aggregation time and bad cells
	// degrade instead of failing the row set.
	SaleRow struct {
		Date        string
		Customer    string
		Quantity    string
		UnitPrice   string
		TotalAmount string
		Timestamp   string
	}

	// ExpenseRow is a raw expense entry as the store holds it.
	ExpenseRow struct {
		Date        string
		Category    string
		Description string
		Amount      string
		Timestamp   string
	}
)

func (m Money) Add(o Money) Money {
	return Money{Cents: m.Cents + o.Cents}
}

func (m Money) Sub(o Money) Money {
	return Money{Cents: m.Cents - o.Cents}
}

// MarshalJSON emits the decimal value ("1234.5"), not the cent count.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(m.Cents)/100.0, 'f', -1, 64)), nil
}

// FromFloat converts a unit amount to Money with half-up rounding.
func FromFloat(f float64) Money {
	return Money{Cents: int64(math.Round(f * 100.0))}
}

// dateLayouts are tried in order when parsing row dates. The store keeps
// dates as entered, so a few human formats are tolerated besides ISO.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// ParseDate parses a row date cell. Returns false when no layout matches.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthKey derives the grouping key ("Jan 2026") for a row date.
// Rows with unparseable dates carry no key and are dropped from aggregation.
func MonthKey(date string) (string, bool) {
	t, ok := ParseDate(date)
	if !ok {
		return "", false
	}
	return t.Format("Jan 2006"), true
}

// ParseMonthKey turns a month key back into the first instant of that month.
// Chronological ordering of keys must go through this; the strings themselves
// do not sort by date.
func ParseMonthKey(key string) (time.Time, bool) {
	t, err := time.Parse("Jan 2006", strings.TrimSpace(key))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseAmount converts a free-form amount cell to Money. Currency symbols
// and thousands separators are stripped first; anything still unparseable
// counts as zero rather than an error.
func ParseAmount(s string) Money {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return Money{}
	}
	return FromFloat(f)
}
