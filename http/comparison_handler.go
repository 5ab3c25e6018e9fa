package http

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"loan-compare/domain"
	"loan-compare/metrics"
	"loan-compare/service"
)

// ComparisonHandler serves the paid comparison routes.
type ComparisonHandler struct {
	loans     *service.LoanService
	scenarios *service.ScenarioService
	gate      *Gate
}

func NewComparisonHandler(loans *service.LoanService, scenarios *service.ScenarioService, gate *Gate) *ComparisonHandler {
	return &ComparisonHandler{loans: loans, scenarios: scenarios, gate: gate}
}

// Compare runs one regular-vs-overdraft comparison. Each successful call
// uses up a trial run; rejected input does not.
func (h *ComparisonHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var input domain.ComparisonInput
	if !decodeJSON(w, r, &input) {
		return
	}
	session, ok := h.gate.authorize(w, r, false)
	if !ok {
		return
	}

	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(
		attribute.Float64("loan.amount", input.Amount),
		attribute.Int("loan.tenure_months", input.TenureMonths),
		attribute.String("loan.regular_bank", string(input.RegularBank)),
		attribute.String("loan.overdraft_bank", string(input.OverdraftBank)),
	)

	result, err := h.loans.Compare(r.Context(), input)
	if err != nil {
		metrics.CalculationErrors.WithLabelValues("compare").Inc()
		writeError(w, err)
		return
	}

	if _, ok := h.gate.authorizeSession(w, session, true); !ok {
		return
	}

	span.SetAttributes(attribute.String("loan.cheaper", string(result.Cheaper)))
	metrics.Comparisons.WithLabelValues(string(result.Cheaper)).Inc()
	writeJSON(w, http.StatusOK, result)
}

// CompareBanks prices the loan at every bank. Like Compare it uses up a
// trial run only when it succeeds.
func (h *ComparisonHandler) CompareBanks(w http.ResponseWriter, r *http.Request) {
	var input domain.ComparisonInput
	if !decodeJSON(w, r, &input) {
		return
	}
	session, ok := h.gate.authorize(w, r, false)
	if !ok {
		return
	}

	result, err := h.scenarios.CompareBanks(input)
	if err != nil {
		metrics.CalculationErrors.WithLabelValues("compare_banks").Inc()
		writeError(w, err)
		return
	}

	if _, ok := h.gate.authorizeSession(w, session, true); !ok {
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ComparisonHandler) SurplusImpact(w http.ResponseWriter, r *http.Request) {
	var input domain.ComparisonInput
	if !decodeJSON(w, r, &input) {
		return
	}
	session, ok := h.gate.authorize(w, r, false)
	if !ok {
		return
	}

	result, err := h.scenarios.SurplusImpact(input)
	if err != nil {
		metrics.CalculationErrors.WithLabelValues("surplus").Inc()
		writeError(w, err)
		return
	}

	if _, ok := h.gate.authorizeSession(w, session, true); !ok {
		return
	}
	writeJSON(w, http.StatusOK, result)
}
