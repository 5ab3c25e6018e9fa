package http

import (
	"net/http"
	"strconv"

	"loan-compare/domain"
	"loan-compare/metrics"
	"loan-compare/service"
)

type LoanHandler struct {
	service *service.LoanService
}

func NewLoanHandler(service *service.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

// CalculateLoan is the free EMI quote. It is not gated.
func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.CalculateLoan(input)
	if err != nil {
		metrics.CalculationErrors.WithLabelValues("calculate").Inc()
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type penaltyRequest struct {
	EMI      float64 `json:"emi"`
	DaysLate int     `json:"days_late"`
}

func (h *LoanHandler) LatePaymentPenalty(w http.ResponseWriter, r *http.Request) {
	var req penaltyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.LatePaymentPenalty(req.EMI, req.DaysLate)
	if err != nil {
		metrics.CalculationErrors.WithLabelValues("penalty").Inc()
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// History lists recent comparisons, or returns one when ?id= is given.
func (h *LoanHandler) History(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	if id := q.Get("id"); id != "" {
		record, err := h.service.HistoryRecord(id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, record)
		return
	}

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	records, err := h.service.History(limit)
	if err != nil {
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, records)
}
