package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"loan-compare/repository"
	"loan-compare/service"
)

const referenceBody = `{
	"amount": 5000000,
	"tenure_months": 240,
	"tax": {"slab_percent": 30, "regime": "old", "property": "self-occupied"},
	"overdraft": {"initial_deposit": 500000, "monthly_addition": 20000},
	"regular_bank": "HDFC Bank",
	"overdraft_bank": "HDFC Overdraft"
}`

type testServer struct {
	handler http.Handler
	limiter *RateLimiter
	history *repository.MemoryHistory
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := zap.NewNop()
	rates := service.NewRateService(repository.NewFileRateRepository("", logger), logger)
	history := repository.NewMemoryHistory()
	loans := service.NewLoanService(rates, history, service.NewAdvisorService(service.AdvisorConfig{}, logger), logger)
	scenarios := service.NewScenarioService(loans, logger)

	cache := repository.NewMemoryCache()
	access := service.NewAccessService(
		repository.NewSessionStore(cache, service.DefaultSessionTTL),
		repository.NewCacheRegistry(cache),
		service.AccessConfig{TrialDuration: 15 * time.Minute, MaxTrialRuns: 2, AdminKey: "s3cret"},
		logger,
	)
	gate := NewGate(access, service.DefaultSessionTTL, logger)

	limiter := NewRateLimiter(1000, time.Minute)
	t.Cleanup(limiter.Stop)

	return &testServer{
		handler: NewRouter(Handlers{
			Loan:       NewLoanHandler(loans),
			Comparison: NewComparisonHandler(loans, scenarios, gate),
			Report:     NewReportHandler(loans, gate, logger),
			Access:     NewAccessHandler(gate),
			Rates:      NewRatesHandler(rates),
		}, limiter),
		limiter: limiter,
		history: history,
	}
}

func (s *testServer) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func sessionCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", sessionCookie)
	return nil
}
