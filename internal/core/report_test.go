package core

import (
	"reflect"
	"testing"
	"time"
)

func TestAggregateExpensesGroupsByCategoryAndDescription(t *testing.T) {
	rows := []ExpenseRow{
		{Date: "2026-01-05", Category: "Gas", Description: "", Amount: "100"},
		{Date: "2026-01-20", Category: "Gas", Description: "Diesel", Amount: "50"},
	}
	got := AggregateExpenses(rows)
	if len(got) != 1 {
		t.Fatalf("expected 1 month, got %d", len(got))
	}
	m := got[0]
	if m.Month != "Jan 2026" {
		t.Fatalf("month = %q, want Jan 2026", m.Month)
	}
	if m.Total.Cents != 15000 {
		t.Fatalf("month total = %d cents, want 15000", m.Total.Cents)
	}
	if len(m.Categories) != 1 || m.Categories[0].Name != "Gas" {
		t.Fatalf("unexpected categories: %+v", m.Categories)
	}
	gas := m.Categories[0]
	if gas.Total.Cents != 15000 {
		t.Fatalf("category total = %d cents, want 15000", gas.Total.Cents)
	}
	wantItems := []NamedAmount{
		{Name: "general", Amount: Money{Cents: 10000}},
		{Name: "diesel", Amount: Money{Cents: 5000}},
	}
	if !reflect.DeepEqual(gas.Items, wantItems) {
		t.Fatalf("items = %+v, want %+v", gas.Items, wantItems)
	}
}

func TestAggregateSalesSameMonthTwoCustomers(t *testing.T) {
	rows := []SaleRow{
		{Date: "2026-03-02", Customer: "Sharma Stores", TotalAmount: "1200"},
		{Date: "2026-03-15", Customer: "Verma Traders", TotalAmount: "800"},
		{Date: "2026-03-20", Customer: "Sharma Stores", TotalAmount: "300"},
	}
	got := AggregateSales(rows)
	if len(got) != 1 {
		t.Fatalf("expected 1 month, got %d", len(got))
	}
	m := got[0]
	if m.Month != "Mar 2026" {
		t.Fatalf("month = %q, want Mar 2026", m.Month)
	}
	want := []NamedAmount{
		{Name: "Sharma Stores", Amount: Money{Cents: 150000}},
		{Name: "Verma Traders", Amount: Money{Cents: 80000}},
	}
	if !reflect.DeepEqual(m.Customers, want) {
		t.Fatalf("customers = %+v, want %+v", m.Customers, want)
	}
	if m.Total.Cents != 230000 {
		t.Fatalf("total = %d cents, want 230000", m.Total.Cents)
	}
}

func TestAggregateDropsUnparseableDates(t *testing.T) {
	sales := AggregateSales([]SaleRow{
		{Date: "garbage", Customer: "X", TotalAmount: "500"},
		{Date: "", Customer: "Y", TotalAmount: "500"},
		{Date: "2026-01-01", Customer: "Z", TotalAmount: "500"},
	})
	if len(sales) != 1 || sales[0].Total.Cents != 50000 {
		t.Fatalf("expected only the valid row aggregated, got %+v", sales)
	}
	expenses := AggregateExpenses([]ExpenseRow{
		{Date: "??", Category: "Gas", Amount: "10"},
	})
	if len(expenses) != 0 {
		t.Fatalf("expected no months, got %+v", expenses)
	}
}

func TestAggregateDefaultsMissingNames(t *testing.T) {
	sales := AggregateSales([]SaleRow{
		{Date: "2026-02-01", Customer: "  ", TotalAmount: "100"},
	})
	if sales[0].Customers[0].Name != "Unknown" {
		t.Fatalf("customer = %q, want Unknown", sales[0].Customers[0].Name)
	}
	expenses := AggregateExpenses([]ExpenseRow{
		{Date: "2026-02-01", Category: "", Description: "x", Amount: "100"},
	})
	if expenses[0].Categories[0].Name != "Uncategorized" {
		t.Fatalf("category = %q, want Uncategorized", expenses[0].Categories[0].Name)
	}
}

// Per-month sums must line up at every level of the expense breakdown.
func TestAggregateTotalsAreConsistent(t *testing.T) {
	rows := []ExpenseRow{
		{Date: "2026-01-03", Category: "Gas", Description: "diesel", Amount: "100"},
		{Date: "2026-01-04", Category: "Gas", Description: "petrol", Amount: "200.50"},
		{Date: "2026-01-09", Category: "Wages", Description: "loading", Amount: "700"},
		{Date: "2026-02-01", Category: "Wages", Description: "", Amount: "450"},
	}
	for _, m := range AggregateExpenses(rows) {
		var monthSum int64
		for _, cat := range m.Categories {
			var itemSum int64
			for _, it := range cat.Items {
				itemSum += it.Amount.Cents
			}
			if itemSum != cat.Total.Cents {
				t.Fatalf("%s/%s: item sum %d != category total %d", m.Month, cat.Name, itemSum, cat.Total.Cents)
			}
			monthSum += cat.Total.Cents
		}
		if monthSum != m.Total.Cents {
			t.Fatalf("%s: category sum %d != month total %d", m.Month, monthSum, m.Total.Cents)
		}
	}

	sales := []SaleRow{
		{Date: "2026-01-03", Customer: "A", TotalAmount: "100"},
		{Date: "2026-01-05", Customer: "B", TotalAmount: "250"},
		{Date: "2026-01-07", Customer: "A", TotalAmount: "50"},
	}
	for _, m := range AggregateSales(sales) {
		var sum int64
		for _, c := range m.Customers {
			sum += c.Amount.Cents
		}
		if sum != m.Total.Cents {
			t.Fatalf("%s: customer sum %d != month total %d", m.Month, sum, m.Total.Cents)
		}
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	rows := []ExpenseRow{
		{Date: "2026-01-05", Category: "Gas", Description: "", Amount: "100"},
		{Date: "2026-02-20", Category: "Wages", Description: "Loading", Amount: "50"},
		{Date: "bad", Category: "Gas", Amount: "10"},
	}
	first := AggregateExpenses(rows)
	second := AggregateExpenses(rows)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("aggregation not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestProfitSeriesSortedChronologically(t *testing.T) {
	sales := AggregateSales([]SaleRow{
		{Date: "2026-03-01", Customer: "A", TotalAmount: "500"},
		{Date: "2025-12-10", Customer: "B", TotalAmount: "100"},
	})
	expenses := AggregateExpenses([]ExpenseRow{
		{Date: "2026-01-05", Category: "Gas", Amount: "40"},
		{Date: "2026-03-05", Category: "Gas", Amount: "200"},
	})
	got := ProfitSeries(sales, expenses)
	wantMonths := []string{"Dec 2025", "Jan 2026", "Mar 2026"}
	if len(got) != len(wantMonths) {
		t.Fatalf("expected %d points, got %+v", len(wantMonths), got)
	}
	for i, p := range got {
		if p.Month != wantMonths[i] {
			t.Fatalf("point %d month = %q, want %q", i, p.Month, wantMonths[i])
		}
	}
	if got[0].Profit.Cents != 10000 {
		t.Fatalf("Dec 2025 profit = %d cents, want 10000", got[0].Profit.Cents)
	}
	if got[1].Profit.Cents != -4000 {
		t.Fatalf("Jan 2026 profit = %d cents, want -4000", got[1].Profit.Cents)
	}
	if got[2].Profit.Cents != 30000 {
		t.Fatalf("Mar 2026 profit = %d cents, want 30000", got[2].Profit.Cents)
	}
}

func TestPickMonth(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	sales := AggregateSales([]SaleRow{
		{Date: "2026-03-01", Customer: "A", TotalAmount: "10"},
		{Date: "2026-01-01", Customer: "A", TotalAmount: "10"},
	})
	if got := PickMonth(sales, nil, now); got != "Mar 2026" {
		t.Fatalf("expected current month, got %q", got)
	}

	// Current month absent: latest available wins.
	older := AggregateSales([]SaleRow{
		{Date: "2025-11-01", Customer: "A", TotalAmount: "10"},
		{Date: "2026-01-01", Customer: "A", TotalAmount: "10"},
	})
	if got := PickMonth(older, nil, now); got != "Jan 2026" {
		t.Fatalf("expected latest month, got %q", got)
	}

	// Expense months count too.
	expenses := AggregateExpenses([]ExpenseRow{
		{Date: "2026-02-01", Category: "Gas", Amount: "10"},
	})
	if got := PickMonth(nil, expenses, now); got != "Feb 2026" {
		t.Fatalf("expected Feb 2026, got %q", got)
	}

	if got := PickMonth(nil, nil, now); got != "" {
		t.Fatalf("expected empty pick, got %q", got)
	}
}
