package backend

import (
	"context"

	"khata/internal/sheets"
)

// Store is the unified backend interface covering all row operations
type Store interface {
	sheets.SaleAppender
	sheets.ExpenseAppender
	sheets.ReportReader
	sheets.CategoryReader
}

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// Result contains the store instance and optional cleanup function
type Result struct {
	Store   Store
	Cleanup CleanupFunc
}

// Factory creates stores based on configuration
type Factory interface {
	// Create builds a store instance for the configured backend type
	Create(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for store creation
type Config struct {
	// Backend type
	Type Type

	// SQLite specific
	SQLiteDBPath string

	// Google Sheets specific
	GoogleSheetID string
}

// Type represents the type of backend
type Type string

const (
	SQLiteType Type = "sqlite"
	SheetsType Type = "sheets"
	MemoryType Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case SQLiteType, SheetsType, MemoryType:
		return true
	default:
		return false
	}
}
