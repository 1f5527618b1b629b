package http

import (
	"testing"
)

func TestValidateExpense(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		wantErrs   []string
		wantAmount string
	}{
		{
			name:       "valid with numeric amount",
			data:       map[string]any{"date": "2026-01-15", "category": "Gas", "amount": 150.0},
			wantAmount: "150",
		},
		{
			name:       "valid with string amount",
			data:       map[string]any{"date": "2026-01-15", "category": "Gas", "amount": "99.50"},
			wantAmount: "99.5",
		},
		{
			name:     "missing date",
			data:     map[string]any{"category": "Gas", "amount": 10.0},
			wantErrs: []string{"date"},
		},
		{
			name:     "missing category",
			data:     map[string]any{"date": "2026-01-15", "amount": 10.0},
			wantErrs: []string{"category"},
		},
		{
			name:     "non-numeric amount",
			data:     map[string]any{"date": "2026-01-15", "category": "Gas", "amount": "abc"},
			wantErrs: []string{"amount"},
		},
		{
			name:     "zero amount",
			data:     map[string]any{"date": "2026-01-15", "category": "Gas", "amount": 0.0},
			wantErrs: []string{"amount"},
		},
		{
			name:     "negative amount",
			data:     map[string]any{"date": "2026-01-15", "category": "Gas", "amount": -5.0},
			wantErrs: []string{"amount"},
		},
		{
			name:     "everything missing",
			data:     map[string]any{},
			wantErrs: []string{"date", "category", "amount"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, errs := validateExpense(tt.data)
			if len(tt.wantErrs) > 0 {
				for _, field := range tt.wantErrs {
					if len(errs[field]) == 0 {
						t.Errorf("expected error on %q, got %v", field, errs)
					}
				}
				return
			}
			if len(errs) > 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if row.Amount != tt.wantAmount {
				t.Errorf("Amount = %q, want %q", row.Amount, tt.wantAmount)
			}
		})
	}
}

func TestValidateExpenseDescriptionOptional(t *testing.T) {
	row, errs := validateExpense(map[string]any{
		"date": "2026-01-15", "category": "Gas", "amount": 10.0,
	})
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if row.Description != "" {
		t.Errorf("Description = %q, want empty", row.Description)
	}
}

func TestValidateSale(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]any
		wantErrs []string
	}{
		{
			name: "valid",
			data: map[string]any{
				"date": "2026-01-20", "customer": "Sharma Traders",
				"quantity": 25.0, "unitPrice": 42.5, "totalAmount": 1062.5,
			},
		},
		{
			name: "missing customer",
			data: map[string]any{
				"date":     "2026-01-20",
				"quantity": 25.0, "unitPrice": 42.5, "totalAmount": 1062.5,
			},
			wantErrs: []string{"customer"},
		},
		{
			name: "zero quantity",
			data: map[string]any{
				"date": "2026-01-20", "customer": "Sharma Traders",
				"quantity": 0.0, "unitPrice": 42.5, "totalAmount": 1062.5,
			},
			wantErrs: []string{"quantity"},
		},
		{
			name: "missing numeric fields",
			data: map[string]any{
				"date": "2026-01-20", "customer": "Sharma Traders",
			},
			wantErrs: []string{"quantity", "unitPrice", "totalAmount"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, errs := validateSale(tt.data)
			if len(tt.wantErrs) > 0 {
				for _, field := range tt.wantErrs {
					if len(errs[field]) == 0 {
						t.Errorf("expected error on %q, got %v", field, errs)
					}
				}
				return
			}
			if len(errs) > 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if row.Customer != "Sharma Traders" {
				t.Errorf("Customer = %q", row.Customer)
			}
			if row.TotalAmount != "1062.5" {
				t.Errorf("TotalAmount = %q", row.TotalAmount)
			}
		})
	}
}

// Posted totals are stored as given even when they disagree with
// quantity times unit price.
func TestValidateSaleTotalNotRecomputed(t *testing.T) {
	row, errs := validateSale(map[string]any{
		"date": "2026-01-20", "customer": "Sharma Traders",
		"quantity": 10.0, "unitPrice": 40.0, "totalAmount": 999.0,
	})
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if row.TotalAmount != "999" {
		t.Errorf("TotalAmount = %q, want 999", row.TotalAmount)
	}
}
