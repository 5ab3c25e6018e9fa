package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"loan-compare/domain"
	"loan-compare/metrics"
	"loan-compare/service"
)

// Gate puts the payment wall in front of the paid routes.
type Gate struct {
	access     *service.AccessService
	sessionTTL time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

func NewGate(access *service.AccessService, sessionTTL time.Duration, logger *zap.Logger) *Gate {
	return &Gate{access: access, sessionTTL: sessionTTL, logger: logger, now: time.Now}
}

// authorize checks the visitor's session and, when consume is set, uses up
// a trial run. On denial it writes 402 with the gate's message. The
// returned session ID is the one in force, which is new for first visits.
func (g *Gate) authorize(w http.ResponseWriter, r *http.Request, consume bool) (string, bool) {
	return g.authorizeSession(w, sessionID(r), consume)
}

func (g *Gate) authorizeSession(w http.ResponseWriter, id string, consume bool) (string, bool) {
	d, err := g.access.Authorize(id, g.now(), consume)
	if d.SessionID != "" && d.SessionID != id {
		setSession(w, d.SessionID, g.sessionTTL)
	}
	g.record(d)

	if err != nil {
		if errors.Is(err, service.ErrAccessDenied) {
			http.Error(w, d.Message, http.StatusPaymentRequired)
			return d.SessionID, false
		}
		g.logger.Error("access check failed", zap.Error(err))
		http.Error(w, "access check failed", http.StatusInternalServerError)
		return d.SessionID, false
	}

	if d.Level == domain.AccessTrial {
		w.Header().Set("X-Trial-Runs-Left", strconv.Itoa(d.TrialRunsLeft))
	}
	return d.SessionID, true
}

func (g *Gate) record(d domain.AccessDecision) {
	if d.Level == "" {
		return
	}
	metrics.AccessDecisions.WithLabelValues(string(d.Level), strconv.FormatBool(d.Granted)).Inc()
}

type AccessHandler struct {
	gate *Gate
}

func NewAccessHandler(gate *Gate) *AccessHandler {
	return &AccessHandler{gate: gate}
}

// Check applies payment_id, email and admin_key from the query string to
// the visitor's session.
func (h *AccessHandler) Check(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	d, err := h.gate.access.Check(sessionID(r), r.URL.Query(), h.gate.now())
	if err != nil {
		h.gate.logger.Error("access check failed", zap.Error(err))
		http.Error(w, "access check failed", http.StatusInternalServerError)
		return
	}

	setSession(w, d.SessionID, h.gate.sessionTTL)
	h.gate.record(d)
	writeJSON(w, http.StatusOK, d)
}
