package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"golang.org/x/sync/errgroup"

	"khata/internal/auth"
	"khata/internal/core"
	applog "khata/internal/log"
	"khata/internal/sheets"
)

// timestampLayout is the display format recorded alongside each entry.
const timestampLayout = "02 Jan 2006, 15:04:05"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if rsp := requireMethod(r, http.MethodPost); rsp != nil {
		rsp.Write(w)
		return
	}

	logger := applog.FromContext(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(r.Context(), "Failed to decode login request", applog.FieldError, err)
		ErrorResponse(http.StatusInternalServerError, "Authentication failed").Write(w)
		return
	}

	value, err := s.authSvc.Login(req.Username, req.Password)
	switch {
	case errors.Is(err, auth.ErrNoUsers):
		logger.ErrorContext(r.Context(), "Login rejected, no users configured")
		ErrorResponse(http.StatusInternalServerError, "Server misconfiguration").Write(w)
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		logger.WarnContext(r.Context(), "Login failed", applog.FieldUsername, req.Username)
		ErrorResponse(http.StatusUnauthorized, "Invalid username or password").Write(w)
		return
	case err != nil:
		logger.ErrorContext(r.Context(), "Login error", applog.FieldError, err)
		ErrorResponse(http.StatusInternalServerError, "Authentication failed").Write(w)
		return
	}

	http.SetCookie(w, s.authSvc.SessionCookie(value))
	logger.InfoContext(r.Context(), "User logged in", applog.FieldUsername, req.Username)
	NewJSONResponse().Payload(map[string]bool{"success": true}).Write(w)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if rsp := requireMethod(r, http.MethodPost); rsp != nil {
		rsp.Write(w)
		return
	}

	http.SetCookie(w, s.authSvc.ClearedCookie())
	NewJSONResponse().Payload(map[string]bool{"success": true}).Write(w)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if rsp := requireMethod(r, http.MethodGet); rsp != nil {
		rsp.Write(w)
		return
	}

	cats, err := s.cats.ListCategories(r.Context())
	if err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Failed to list categories, using defaults", applog.FieldError, err)
		cats = nil
	}
	if len(cats) == 0 {
		cats = core.DefaultCategories
	}

	NewJSONResponse().Payload(cats).Write(w)
}

type reportsResponse struct {
	Sales        []core.MonthlySales    `json:"sales"`
	Expenses     []core.MonthlyExpenses `json:"expenses"`
	Profit       []core.ProfitPoint     `json:"profit"`
	CurrentMonth string                 `json:"currentMonth"`
}

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	if rsp := requireMethod(r, http.MethodGet); rsp != nil {
		rsp.Write(w)
		return
	}

	var (
		saleRows    []core.SaleRow
		expenseRows []core.ExpenseRow
	)

	// Both sheets fetched concurrently; a failure on either fails the report
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		saleRows, err = s.reports.ListSales(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		expenseRows, err = s.reports.ListExpenses(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Failed to fetch report rows", applog.FieldError, err)
		ErrorResponse(http.StatusInternalServerError, "Failed to fetch reports").Write(w)
		return
	}

	sales := core.AggregateSales(saleRows)
	expenses := core.AggregateExpenses(expenseRows)

	resp := reportsResponse{
		Sales:        sales,
		Expenses:     expenses,
		Profit:       core.ProfitSeries(sales, expenses),
		CurrentMonth: core.PickMonth(sales, expenses, s.now()),
	}
	if resp.Sales == nil {
		resp.Sales = []core.MonthlySales{}
	}
	if resp.Expenses == nil {
		resp.Expenses = []core.MonthlyExpenses{}
	}
	if resp.Profit == nil {
		resp.Profit = []core.ProfitPoint{}
	}

	NewJSONResponse().Payload(resp).Write(w)
}

type submitRequest struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if rsp := requireMethod(r, http.MethodPost); rsp != nil {
		rsp.Write(w)
		return
	}

	logger := applog.FromContext(r.Context())

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(r.Context(), "Failed to decode submission", applog.FieldError, err)
		ErrorResponse(http.StatusBadRequest, "Invalid request body").Write(w)
		return
	}

	timestamp := s.now().Format(timestampLayout)

	switch req.Type {
	case "expense":
		row, fieldErrs := validateExpense(req.Data)
		if len(fieldErrs) > 0 {
			ValidationErrorResponse(fieldErrs).Write(w)
			return
		}
		row.Timestamp = timestamp
		if err := s.expenses.AppendExpense(r.Context(), row); err != nil {
			logger.ErrorContext(r.Context(), "Failed to append expense", applog.FieldError, err)
			ErrorResponse(http.StatusInternalServerError, "Failed to save entry.").Write(w)
			return
		}
		saved := applog.NewFields().WithEntry(req.Type, sheets.ExpensesSheet).WithOperation(applog.OpAppend)
		logger.InfoContext(r.Context(), "Entry saved", saved.ToSlice()...)

	case "sales":
		row, fieldErrs := validateSale(req.Data)
		if len(fieldErrs) > 0 {
			ValidationErrorResponse(fieldErrs).Write(w)
			return
		}
		row.Timestamp = timestamp
		if err := s.sales.AppendSale(r.Context(), row); err != nil {
			logger.ErrorContext(r.Context(), "Failed to append sale", applog.FieldError, err)
			ErrorResponse(http.StatusInternalServerError, "Failed to save entry.").Write(w)
			return
		}
		saved := applog.NewFields().WithEntry(req.Type, sheets.SalesSheet).WithOperation(applog.OpAppend)
		logger.InfoContext(r.Context(), "Entry saved", saved.ToSlice()...)

	default:
		ErrorResponse(http.StatusBadRequest, "Invalid submission type").Write(w)
		return
	}

	NewJSONResponse().Payload(map[string]string{"message": "Entry added successfully!"}).Write(w)
}
