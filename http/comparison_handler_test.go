package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-compare/domain"
)

func TestCompareHandler_Reference(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/loan/compare", referenceBody)
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.ComparisonResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, domain.LoanKindOverdraft, result.Cheaper)
	assert.InDelta(t, 1_843_203, result.Overdraft.TotalInterest, 1)
	assert.NotEmpty(t, result.ID)
	assert.NotEmpty(t, result.Advice)
}

func TestCompareHandler_TrialRunsOut(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/loan/compare", referenceBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-Trial-Runs-Left"))
	cookie := sessionCookieFrom(t, w)

	w = s.do(http.MethodPost, "/loan/compare", referenceBody, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-Trial-Runs-Left"))

	w = s.do(http.MethodPost, "/loan/compare", referenceBody, cookie)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Contains(t, w.Body.String(), "used all 2 free comparisons")
}

func TestCompareHandler_InvalidInputKeepsTrialRun(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/loan/compare", `{"amount": 100, "tenure_months": 240, "regular_bank": "HDFC Bank", "overdraft_bank": "HDFC Overdraft"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	cookie := sessionCookieFrom(t, w)

	w = s.do(http.MethodPost, "/loan/compare", referenceBody, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-Trial-Runs-Left"))
}

func TestCompareHandler_UnknownBank(t *testing.T) {
	s := newTestServer(t)

	body := `{"amount": 5000000, "tenure_months": 240, "tax": {"slab_percent": 30}, "regular_bank": "Nope Bank", "overdraft_bank": "HDFC Overdraft"}`
	w := s.do(http.MethodPost, "/loan/compare", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown bank")
}

func TestCompareHandler_PaidSessionIsNotLimited(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/access?payment_id=pay_123&email=User@Example.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookieFrom(t, w)

	for i := 0; i < 4; i++ {
		w = s.do(http.MethodPost, "/loan/compare", referenceBody, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-Trial-Runs-Left"))
	}
}

func TestCompareBanksHandler(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/loan/compare/banks", referenceBody)
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.BankComparison
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result.Regular, 6)
	assert.Len(t, result.Overdraft, 4)
	for i := 1; i < len(result.Regular); i++ {
		assert.LessOrEqual(t, result.Regular[i-1].NetCost, result.Regular[i].NetCost)
	}
	assert.Equal(t, "1", w.Header().Get("X-Trial-Runs-Left"))
}

func TestSurplusImpactHandler(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/loan/compare/surplus", referenceBody)
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.SurplusImpact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Scenarios, 5)
	assert.Equal(t, 0.0, result.Scenarios[0].InitialDeposit)
	assert.Equal(t, 2_000_000.0, result.Scenarios[4].InitialDeposit)
	assert.Equal(t, "1", w.Header().Get("X-Trial-Runs-Left"))
}

func TestScenarioRoutesShareTheTrial(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/loan/compare/banks", referenceBody)
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookieFrom(t, w)

	w = s.do(http.MethodPost, "/loan/compare/surplus", referenceBody, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-Trial-Runs-Left"))

	w = s.do(http.MethodPost, "/loan/compare/banks", referenceBody, cookie)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	w = s.do(http.MethodPost, "/loan/compare/surplus", referenceBody, cookie)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}
