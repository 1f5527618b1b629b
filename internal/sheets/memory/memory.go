package memory

import (
	"context"
	"strings"
	"sync"

	"khata/internal/core"
	ports "khata/internal/sheets"
)

// Store keeps rows in process memory. Default dev backend and the test
// double for the handler suite.
type Store struct {
	mu       sync.Mutex
	cats     []string
	sales    []core.SaleRow
	expenses []core.ExpenseRow
}

// Ensure interface conformance
var (
	_ ports.SaleAppender    = (*Store)(nil)
	_ ports.ExpenseAppender = (*Store)(nil)
	_ ports.ReportReader    = (*Store)(nil)
	_ ports.CategoryReader  = (*Store)(nil)
)

func New(cats []string) *Store {
	return &Store{cats: dedupe(cats)}
}

// NewWithDefaults seeds the category list with the hard-coded defaults.
func NewWithDefaults() *Store {
	return New(core.DefaultCategories)
}

func (s *Store) AppendSale(_ context.Context, row core.SaleRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = append(s.sales, row)
	return nil
}

func (s *Store) AppendExpense(_ context.Context, row core.ExpenseRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, row)
	return nil
}

func (s *Store) ListSales(_ context.Context) ([]core.SaleRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.SaleRow(nil), s.sales...), nil
}

func (s *Store) ListExpenses(_ context.Context) ([]core.ExpenseRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.ExpenseRow(nil), s.expenses...), nil
}

func (s *Store) ListCategories(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.cats...), nil
}

func dedupe(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
