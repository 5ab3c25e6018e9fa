package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"loan-compare/repository"
	"loan-compare/service"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown bank", fmt.Errorf("%w: %q", service.ErrUnknownBank, "Nope"), http.StatusBadRequest},
		{"access denied", fmt.Errorf("%w: trial over", service.ErrAccessDenied), http.StatusPaymentRequired},
		{"missing record", repository.ErrNotFound, http.StatusNotFound},
		{"storage failure", errors.New("sqlite: database is locked"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestWriteError_HidesServerFailures(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, errors.New("open /var/lib/loancmp.db: permission denied"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "permission denied")
}

func TestWriteError_ValidationIsClientError(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/loan/penalty", `{"emi": 1, "days_late": 10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "EMI must be between")

	w = s.do(http.MethodPost, "/loan/calculate", `{"amount": -1, "interest_rate": 8.5, "term_months": 240}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid loan amount")
}
