package http

import (
	"net/http"
	"time"

	"khata/internal/auth"
	applog "khata/internal/log"
	"khata/internal/middleware/security"
	"khata/internal/middleware/trace"
	"khata/internal/sheets"
)

type Server struct {
	http.Server

	authSvc  *auth.Service
	sales    sheets.SaleAppender
	expenses sheets.ExpenseAppender
	reports  sheets.ReportReader
	cats     sheets.CategoryReader

	logger *applog.Logger
	loc    *time.Location

	// now is overridable in tests
	now func() time.Time
}

// NewServer configures routes and middleware, returning a ready-to-run http.Server.
func NewServer(addr string, authSvc *auth.Service, sa sheets.SaleAppender, ea sheets.ExpenseAppender, rr sheets.ReportReader, cr sheets.CategoryReader, loc *time.Location) *Server {
	if loc == nil {
		loc = time.UTC
	}

	s := &Server{
		authSvc:  authSvc,
		sales:    sa,
		expenses: ea,
		reports:  rr,
		cats:     cr,
		logger:   applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentHTTP),
		loc:      loc,
		now:      func() time.Time { return time.Now().In(loc) },
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.HandleFunc("/api/auth/login", s.handleLogin)
	mux.HandleFunc("/api/auth/logout", s.handleLogout)
	mux.HandleFunc("/api/categories", s.handleCategories)
	mux.HandleFunc("/api/reports", s.handleReports)
	mux.HandleFunc("/api/submit", s.handleSubmit)

	s.Server = http.Server{
		Addr:    addr,
		Handler: s.buildChain(mux),
	}

	return s
}

// buildChain wires the middleware stack: tracing outermost, then security
// headers and context logger injection, then session enforcement in front
// of the routes.
func (s *Server) buildChain(mux http.Handler) http.Handler {
	var h http.Handler = mux
	h = s.authSvc.Protect(h)
	h = applog.RequestIDMiddleware(func(r *http.Request) string {
		return trace.GetRequestID(r.Context())
	})(h)
	h = applog.Middleware(s.logger)(h)
	h = security.NewHeadersMiddleware(security.DefaultHeadersConfig()).Middleware(h)
	h = trace.NewMiddleware(trace.ClientIP).Middleware(h)
	return h
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if rsp := requireMethod(r, http.MethodGet); rsp != nil {
		rsp.Write(w)
		return
	}
	NewJSONResponse().Payload(map[string]string{"status": "ok"}).Write(w)
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if rsp := requireMethod(r, http.MethodGet); rsp != nil {
		rsp.Write(w)
		return
	}
	if _, err := s.cats.ListCategories(r.Context()); err != nil {
		ErrorResponse(http.StatusServiceUnavailable, "store not ready").Write(w)
		return
	}
	NewJSONResponse().Payload(map[string]string{"status": "ready"}).Write(w)
}

// requireMethod returns a 405 response builder when the request method does
// not match, nil otherwise.
func requireMethod(r *http.Request, method string) *JSONResponseBuilder {
	if r.Method != method {
		return MethodNotAllowedError(method)
	}
	return nil
}
