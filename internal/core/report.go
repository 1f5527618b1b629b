package core

import (
	"sort"
	"strings"
	"time"
)

// Aggregation output is typed with ordered (name, amount) pair lists rather
// than nested maps. Order is first-seen row order at every level, which is
// also what the JSON payload preserves.
type (
	NamedAmount struct {
		Name   string `json:"name"`
		Amount Money  `json:"amount"`
	}

	MonthlySales struct {
		Month     string        `json:"month"`
		Total     Money         `json:"total"`
		Customers []NamedAmount `json:"customers"`
	}

	CategoryBreakdown struct {
		Name  string        `json:"name"`
		Total Money         `json:"total"`
		Items []NamedAmount `json:"items"`
	}

	MonthlyExpenses struct {
		Month      string              `json:"month"`
		Total      Money               `json:"total"`
		Categories []CategoryBreakdown `json:"categories"`
	}

	ProfitPoint struct {
		Month  string `json:"month"`
		Profit Money  `json:"profit"`
	}
)

// AggregateSales groups raw sales rows into monthly summaries keyed by
// "Jan 2006". Rows with unparseable dates are dropped; missing customers
// fall back to "Unknown"; unparseable amounts count as zero.
func AggregateSales(rows []SaleRow) []MonthlySales {
	var out []MonthlySales
	monthIdx := map[string]int{}
	custIdx := map[string]map[string]int{}

	for _, r := range rows {
		month, ok := MonthKey(r.Date)
		if !ok {
			continue
		}
		customer := strings.TrimSpace(r.Customer)
		if customer == "" {
			customer = "Unknown"
		}
		amount := ParseAmount(r.TotalAmount)

		i, seen := monthIdx[month]
		if !seen {
			i = len(out)
			monthIdx[month] = i
			custIdx[month] = map[string]int{}
			out = append(out, MonthlySales{Month: month})
		}
		out[i].Total = out[i].Total.Add(amount)

		ci, seen := custIdx[month][customer]
		if !seen {
			ci = len(out[i].Customers)
			custIdx[month][customer] = ci
			out[i].Customers = append(out[i].Customers, NamedAmount{Name: customer})
		}
		out[i].Customers[ci].Amount = out[i].Customers[ci].Amount.Add(amount)
	}
	return out
}

// AggregateExpenses groups raw expense rows by month, then category, then
// normalized description. Missing categories fall back to "Uncategorized";
// blank descriptions normalize to "general".
func AggregateExpenses(rows []ExpenseRow) []MonthlyExpenses {
	var out []MonthlyExpenses
	monthIdx := map[string]int{}
	catIdx := map[string]map[string]int{}
	itemIdx := map[string]map[string]map[string]int{}

	for _, r := range rows {
		month, ok := MonthKey(r.Date)
		if !ok {
			continue
		}
		category := strings.TrimSpace(r.Category)
		if category == "" {
			category = "Uncategorized"
		}
		description := NormalizeDescription(r.Description)
		amount := ParseAmount(r.Amount)

		i, seen := monthIdx[month]
		if !seen {
			i = len(out)
			monthIdx[month] = i
			catIdx[month] = map[string]int{}
			itemIdx[month] = map[string]map[string]int{}
			out = append(out, MonthlyExpenses{Month: month})
		}
		out[i].Total = out[i].Total.Add(amount)

		ci, seen := catIdx[month][category]
		if !seen {
			ci = len(out[i].Categories)
			catIdx[month][category] = ci
			itemIdx[month][category] = map[string]int{}
			out[i].Categories = append(out[i].Categories, CategoryBreakdown{Name: category})
		}
		cat := &out[i].Categories[ci]
		cat.Total = cat.Total.Add(amount)

		di, seen := itemIdx[month][category][description]
		if !seen {
			di = len(cat.Items)
			itemIdx[month][category][description] = di
			cat.Items = append(cat.Items, NamedAmount{Name: description})
		}
		cat.Items[di].Amount = cat.Items[di].Amount.Add(amount)
	}
	return out
}

// NormalizeDescription trims and lowercases an expense description,
// defaulting blank input to "general".
func NormalizeDescription(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "general"
	}
	return s
}

// ProfitSeries computes sales minus expenses for every month present in
// either summary list, sorted chronologically ascending.
func ProfitSeries(sales []MonthlySales, expenses []MonthlyExpenses) []ProfitPoint {
	salesBy := map[string]Money{}
	expensesBy := map[string]Money{}
	var months []string
	seen := map[string]bool{}

	for _, s := range sales {
		salesBy[s.Month] = s.Total
		if !seen[s.Month] {
			seen[s.Month] = true
			months = append(months, s.Month)
		}
	}
	for _, e := range expenses {
		expensesBy[e.Month] = e.Total
		if !seen[e.Month] {
			seen[e.Month] = true
			months = append(months, e.Month)
		}
	}

	sort.SliceStable(months, func(a, b int) bool {
		ta, _ := ParseMonthKey(months[a])
		tb, _ := ParseMonthKey(months[b])
		return ta.Before(tb)
	})

	out := make([]ProfitPoint, 0, len(months))
	for _, m := range months {
		out = append(out, ProfitPoint{
			Month:  m,
			Profit: salesBy[m].Sub(expensesBy[m]),
		})
	}
	return out
}

// PickMonth selects the month a report should open on: the calendar month of
// now when it appears in either summary, otherwise the chronologically
// latest month available, otherwise "".
func PickMonth(sales []MonthlySales, expenses []MonthlyExpenses, now time.Time) string {
	current := now.Format("Jan 2006")
	var latest string
	var latestTime time.Time

	consider := func(month string) bool {
		if month == current {
			return true
		}
		if t, ok := ParseMonthKey(month); ok && (latest == "" || t.After(latestTime)) {
			latest = month
			latestTime = t
		}
		return false
	}
	for _, s := range sales {
		if consider(s.Month) {
			return current
		}
	}
	for _, e := range expenses {
		if consider(e.Month) {
			return current
		}
	}
	return latest
}
