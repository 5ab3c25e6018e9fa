package http

import (
	"bytes"
	"net/http"
	"time"

	"go.uber.org/zap"

	"loan-compare/domain"
	"loan-compare/report"
	"loan-compare/service"
)

type ReportHandler struct {
	loans  *service.LoanService
	gate   *Gate
	logger *zap.Logger
}

func NewReportHandler(loans *service.LoanService, gate *Gate, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{loans: loans, gate: gate, logger: logger}
}

// compare runs the comparison behind a report. A report costs a trial run
// like any other comparison, spent only once the comparison succeeds.
func (h *ReportHandler) compare(w http.ResponseWriter, r *http.Request) (domain.ComparisonResult, bool) {
	var input domain.ComparisonInput
	if !decodeJSON(w, r, &input) {
		return domain.ComparisonResult{}, false
	}
	session, ok := h.gate.authorize(w, r, false)
	if !ok {
		return domain.ComparisonResult{}, false
	}

	result, err := h.loans.Compare(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return domain.ComparisonResult{}, false
	}

	if _, ok := h.gate.authorizeSession(w, session, true); !ok {
		return domain.ComparisonResult{}, false
	}
	return result, true
}

func (h *ReportHandler) PDF(w http.ResponseWriter, r *http.Request) {
	result, ok := h.compare(w, r)
	if !ok {
		return
	}

	out, err := report.ComparisonPDF(result, time.Now())
	if err != nil {
		h.logger.Error("pdf report failed", zap.String("id", result.ID), zap.Error(err))
		http.Error(w, "failed to render report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="loan-comparison.pdf"`)
	w.Write(out)
}

// Chart renders an HTML chart: yearly interest by default, or the cost
// breakdown with ?kind=costs.
func (h *ReportHandler) Chart(w http.ResponseWriter, r *http.Request) {
	result, ok := h.compare(w, r)
	if !ok {
		return
	}

	var (
		buf bytes.Buffer
		err error
	)
	switch r.URL.Query().Get("kind") {
	case "", "yearly":
		err = report.YearlyInterestChart(&buf, result)
	case "costs":
		err = report.CostComponentsChart(&buf, result)
	default:
		http.Error(w, "unknown chart kind", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("chart failed", zap.String("id", result.ID), zap.Error(err))
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
