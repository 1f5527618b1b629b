package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"khata/internal/core"
	ports "khata/internal/sheets"

	_ "modernc.org/sqlite"
)

// SQLiteRepository holds the same named-sheet rows as the spreadsheet
// backend, one table per sheet. Local/dev alternative to Google Sheets.
type SQLiteRepository struct {
	db *sql.DB
}

// Ensure interface conformance
var (
	_ ports.SaleAppender    = (*SQLiteRepository)(nil)
	_ ports.ExpenseAppender = (*SQLiteRepository)(nil)
	_ ports.ReportReader    = (*SQLiteRepository)(nil)
	_ ports.CategoryReader  = (*SQLiteRepository)(nil)
)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SQLiteRepository) AppendSale(ctx context.Context, s core.SaleRow) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sales (date, customer, quantity, unit_price, total_amount, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.Date, s.Customer, s.Quantity, s.UnitPrice, s.TotalAmount, s.Timestamp)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) AppendExpense(ctx context.Context, e core.ExpenseRow) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (date, category, description, amount, timestamp)
		 VALUES (?, ?, ?, ?, ?)`,
		e.Date, e.Category, e.Description, e.Amount, e.Timestamp)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListSales(ctx context.Context) ([]core.SaleRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, customer, quantity, unit_price, total_amount, timestamp
		 FROM sales ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select sales: %w", err)
	}
	defer rows.Close()

	var out []core.SaleRow
	for rows.Next() {
		var s core.SaleRow
		if err := rows.Scan(&s.Date, &s.Customer, &s.Quantity, &s.UnitPrice, &s.TotalAmount, &s.Timestamp); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) ListExpenses(ctx context.Context) ([]core.ExpenseRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, category, description, amount, timestamp
		 FROM expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select expenses: %w", err)
	}
	defer rows.Close()

	var out []core.ExpenseRow
	for rows.Next() {
		var e core.ExpenseRow
		if err := rows.Scan(&e.Date, &e.Category, &e.Description, &e.Amount, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT expense_category FROM settings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// SeedCategories inserts any missing categories, keeping existing rows.
func (r *SQLiteRepository) SeedCategories(ctx context.Context, cats []string) error {
	for _, c := range cats {
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO settings (expense_category) VALUES (?)`, c); err != nil {
			return fmt.Errorf("seed category %q: %w", c, err)
		}
	}
	return nil
}
