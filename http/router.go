package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Loan       *LoanHandler
	Comparison *ComparisonHandler
	Report     *ReportHandler
	Access     *AccessHandler
	Rates      *RatesHandler
}

// NewRouter wires every route through the rate limiter and the metrics
// middleware. /metrics is left open.
func NewRouter(h Handlers, limiter *RateLimiter) http.Handler {
	mux := http.NewServeMux()

	route := func(path string, fn http.HandlerFunc) {
		mux.Handle(path, Instrument(path, RateLimitMiddleware(limiter, fn)))
	}

	route("/loan/calculate", h.Loan.CalculateLoan)
	route("/loan/penalty", h.Loan.LatePaymentPenalty)
	route("/loan/history", h.Loan.History)
	route("/loan/compare", h.Comparison.Compare)
	route("/loan/compare/banks", h.Comparison.CompareBanks)
	route("/loan/compare/surplus", h.Comparison.SurplusImpact)
	route("/loan/report.pdf", h.Report.PDF)
	route("/loan/report/chart", h.Report.Chart)
	route("/access", h.Access.Check)
	route("/rates", h.Rates.List)
	route("/rates/personalize", h.Rates.Personalize)

	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return mux
}
