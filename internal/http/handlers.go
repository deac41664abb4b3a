package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"mymoney/internal/core"
)

// transactionRequest is the entry-form draft as it crosses the wire. Amount
// arrives as the raw form string so parsing and validation live server-side.
type transactionRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Date        string `json:"date"`
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listTransactions(w, r)
	case http.MethodPost:
		s.createTransaction(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	filter := strings.TrimSpace(r.URL.Query().Get("filter"))
	if filter == "" {
		filter = core.FilterAll
	}
	writeJSON(w, http.StatusOK, s.ledger.Filtered(filter))
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := core.ParseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid amount")
		return
	}

	var date core.Date
	if v := strings.TrimSpace(req.Date); v != "" {
		date, err = core.ParseDate(v)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid date")
			return
		}
	}

	draft := core.Draft{
		Description: sanitizeInput(req.Description),
		Amount:      amount,
		Category:    sanitizeInput(req.Category),
		Type:        core.TransactionType(strings.TrimSpace(req.Type)),
		Date:        date,
	}

	tx, err := s.ledger.Add(r.Context(), draft)
	if err != nil {
		// Validation failures are the blocking notice the form surfaces.
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, tx)
}

func (s *Server) handleTransactionByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", "DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/api/transactions/")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	// The web page asks for confirmation before calling this; a missing ID is
	// a no-op either way.
	if !s.ledger.Remove(r.Context(), id) {
		s.logger.Debug("Delete target not found", "id", id)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	totals := s.ledger.Totals()
	b := s.ledger.Breakdown()
	writeJSON(w, http.StatusOK, map[string]any{
		"totals": totals,
		// Display strings are rendered here so the page and any other client
		// show the same rounding.
		"formatted": map[string]string{
			"income":   core.FormatAmount(totals.Income),
			"expenses": core.FormatAmount(totals.Expenses),
			"balance":  core.FormatAmount(totals.Balance),
		},
		"breakdown": map[string]any{
			"labels":  b.Labels(),
			"amounts": b.Amounts(),
		},
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"expense": core.ExpenseCategories,
		"income":  core.IncomeCategories,
		"filters": core.FilterCategories(),
	})
}
