package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"khata/internal/core"
	ports "khata/internal/sheets"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// Client talks to a single spreadsheet holding the Sales, Expenses and
// Settings sheets.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
}

// Ensure interface conformance
var (
	_ ports.SaleAppender    = (*Client)(nil)
	_ ports.ExpenseAppender = (*Client)(nil)
	_ ports.ReportReader    = (*Client)(nil)
	_ ports.CategoryReader  = (*Client)(nil)
)

// New creates a Sheets client for the given spreadsheet using service
// account credentials from the environment.
func New(ctx context.Context, spreadsheetID string) (*Client, error) {
	spreadsheetID = strings.TrimSpace(spreadsheetID)
	if spreadsheetID == "" {
		return nil, errors.New("missing spreadsheet id")
	}
	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// newSheetsService initializes a Sheets Service using Service Account credentials.
// Uses GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

func (c *Client) AppendSale(ctx context.Context, s core.SaleRow) error {
	row := []any{s.Date, s.Customer, s.Quantity, s.UnitPrice, s.TotalAmount, s.Timestamp}
	return c.appendRow(ctx, ports.SalesSheet, ports.SalesHeader, row)
}

func (c *Client) AppendExpense(ctx context.Context, e core.ExpenseRow) error {
	row := []any{e.Date, e.Category, e.Description, e.Amount, e.Timestamp}
	return c.appendRow(ctx, ports.ExpensesSheet, ports.ExpensesHeader, row)
}

func (c *Client) appendRow(ctx context.Context, sheet string, header []string, row []any) error {
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}
	if err := c.ensureSheet(ctx, sheet, header); err != nil {
		return fmt.Errorf("ensure sheet %s: %w", sheet, err)
	}
	vr := &gsheet.ValueRange{Values: [][]any{row}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, sheet+"!A1", vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append to sheet %s: %w", sheet, err)
	}
	return nil
}

// ensureSheet creates the sheet when the spreadsheet lacks it and writes the
// default header when row 1 is empty.
func (c *Client) ensureSheet(ctx context.Context, title string, header []string) error {
	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("load spreadsheet metadata: %w", err)
	}
	found := false
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == title {
			found = true
			break
		}
	}
	if !found {
		req := &gsheet.BatchUpdateSpreadsheetRequest{
			Requests: []*gsheet.Request{{
				AddSheet: &gsheet.AddSheetRequest{
					Properties: &gsheet.SheetProperties{Title: title},
				},
			}},
		}
		if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
			return fmt.Errorf("add sheet %s: %w", title, err)
		}
		slog.InfoContext(ctx, "Created missing sheet", "sheet", title)
	}

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, title+"!1:1").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("read header row of %s: %w", title, err)
	}
	if len(resp.Values) == 0 || len(resp.Values[0]) == 0 {
		cells := make([]any, len(header))
		for i, h := range header {
			cells[i] = h
		}
		vr := &gsheet.ValueRange{Values: [][]any{cells}}
		_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, title+"!A1", vr).
			ValueInputOption("RAW").Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("write header row of %s: %w", title, err)
		}
		slog.InfoContext(ctx, "Wrote default header row", "sheet", title)
	}
	return nil
}

// ListSales returns all sales rows. API failures degrade to an empty list;
// the store is treated as independently consistent and a report over no rows
// beats a dead endpoint.
func (c *Client) ListSales(ctx context.Context) ([]core.SaleRow, error) {
	rows, err := c.readRows(ctx, ports.SalesSheet)
	if err != nil {
		slog.ErrorContext(ctx, "Sales read failed, returning empty list", "error", err)
		return nil, nil
	}
	out := make([]core.SaleRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, saleFromRow(row))
	}
	return out, nil
}

// ListExpenses returns all expense rows, degrading like ListSales.
func (c *Client) ListExpenses(ctx context.Context) ([]core.ExpenseRow, error) {
	rows, err := c.readRows(ctx, ports.ExpensesSheet)
	if err != nil {
		slog.ErrorContext(ctx, "Expenses read failed, returning empty list", "error", err)
		return nil, nil
	}
	out := make([]core.ExpenseRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, expenseFromRow(row))
	}
	return out, nil
}

// ListCategories reads the Settings sheet. Errors surface to the caller,
// which owns the fallback to the default category list.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := c.readRows(ctx, ports.SettingsSheet)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	var out []string
	seen := map[string]struct{}{}
	for _, row := range rows {
		v := strings.TrimSpace(row[ports.SettingsHeader[0]])
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

func (c *Client) readRows(ctx context.Context, sheet string) ([]ports.Row, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, sheet+"!A:Z").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sheet, err)
	}
	return rowsFromValues(resp.Values), nil
}
