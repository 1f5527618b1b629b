package google

import (
	"context"
	"testing"
)

func TestRowsFromValues(t *testing.T) {
	values := [][]any{
		{"Date", "Customer", "Quantity", "Unit Price", "Total Amount", "Timestamp"},
		{"2026-01-05", "Sharma Stores", "10", "25", "250", "05 Jan 2026, 10:00:00"},
		{"2026-01-06", "Verma Traders", "2"}, // short row
		{"", "", "", "", "", ""},             // blank row dropped
	}
	rows := rowsFromValues(values)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["Customer"] != "Sharma Stores" || rows[0]["Total Amount"] != "250" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
	if rows[1]["Unit Price"] != "" {
		t.Fatalf("short row not padded: %v", rows[1])
	}
}

func TestRowsFromValuesHeaderOnly(t *testing.T) {
	if rows := rowsFromValues([][]any{{"Date", "Amount"}}); rows != nil {
		t.Fatalf("expected nil, got %v", rows)
	}
	if rows := rowsFromValues(nil); rows != nil {
		t.Fatalf("expected nil for empty grid, got %v", rows)
	}
}

func TestSaleAndExpenseFromRow(t *testing.T) {
	rows := rowsFromValues([][]any{
		{"Date", "Category", "Description", "Amount", "Timestamp"},
		{"2026-01-05", "Gas", "Diesel", "100", "ts"},
	})
	e := expenseFromRow(rows[0])
	if e.Date != "2026-01-05" || e.Category != "Gas" || e.Description != "Diesel" || e.Amount != "100" || e.Timestamp != "ts" {
		t.Fatalf("unexpected expense row: %+v", e)
	}

	rows = rowsFromValues([][]any{
		{"Date", "Customer", "Quantity", "Unit Price", "Total Amount", "Timestamp"},
		{"2026-01-05", "X", "4", "25", "100", "ts"},
	})
	s := saleFromRow(rows[0])
	if s.Customer != "X" || s.Quantity != "4" || s.UnitPrice != "25" || s.TotalAmount != "100" {
		t.Fatalf("unexpected sale row: %+v", s)
	}
}

func TestNewRequiresSpreadsheetID(t *testing.T) {
	if _, err := New(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for missing spreadsheet id")
	}
}
