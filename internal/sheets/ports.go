package sheets

import (
	"context"

	"khata/internal/core"
)

// Sheet titles and header layouts for the spreadsheet store. Every backend
// keeps rows under these names with these columns.
const (
	SalesSheet    = "Sales"
	ExpensesSheet = "Expenses"
	SettingsSheet = "Settings"
)

var (
	SalesHeader    = []string{"Date", "Customer", "Quantity", "Unit Price", "Total Amount", "Timestamp"}
	ExpensesHeader = []string{"Date", "Category", "Description", "Amount", "Timestamp"}
	SettingsHeader = []string{"Expense Categories"}
)

// Row maps column names to cell values for a single sheet row.
type Row map[string]string

// Ports for outbound adapters.
type (
	SaleAppender interface {
		AppendSale(ctx context.Context, s core.SaleRow) error
	}

	ExpenseAppender interface {
		AppendExpense(ctx context.Context, e core.ExpenseRow) error
	}

	// ReportReader returns all raw rows for aggregation.
	ReportReader interface {
		ListSales(ctx context.Context) ([]core.SaleRow, error)
		ListExpenses(ctx context.Context) ([]core.ExpenseRow, error)
	}

	// CategoryReader returns the configured expense category list.
	CategoryReader interface {
		ListCategories(ctx context.Context) ([]string, error)
	}
)
