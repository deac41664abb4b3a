// Package http is the presentation boundary: a small JSON API plus the
// embedded web page that consumes it. The ledger core stays transport
// agnostic; nothing in here owns domain state.
package http

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"mymoney/internal/ledger"
	applog "mymoney/internal/log"
	"mymoney/web"
)

type Server struct {
	ledger *ledger.Ledger
	logger *applog.Logger
	index  *template.Template
}

// NewServer wires the API routes and returns a configured http.Server.
func NewServer(addr string, led *ledger.Ledger, logger *applog.Logger) (*http.Server, error) {
	index, err := template.ParseFS(web.TemplatesFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}

	s := &Server{
		ledger: led,
		logger: logger.WithComponent(applog.ComponentHTTP),
		index:  index,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/transactions", s.handleTransactions)
	mux.HandleFunc("/api/transactions/", s.handleTransactionByID)
	mux.HandleFunc("/api/summary", s.handleSummary)
	mux.HandleFunc("/api/categories", s.handleCategories)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &http.Server{
		Addr:           addr,
		Handler:        applog.Middleware(s.logger)(mux),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16, // 64KB
	}, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.index.Execute(w, nil); err != nil {
		s.logger.Error("Render index failed", applog.FieldError, err.Error())
	}
}
