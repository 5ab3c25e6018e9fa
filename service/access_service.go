package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"loan-compare/domain"
	"loan-compare/repository"
)

type AccessConfig struct {
	TrialDuration time.Duration
	MaxTrialRuns  int
	AdminKey      string
}

// AccessService is the payment wall. A payment_id in the query is taken
// at face value; there is no gateway verification.
type AccessService struct {
	sessions *repository.SessionStore
	registry repository.PaidUserRegistry
	cfg      AccessConfig
	logger   *zap.Logger
	locks    sessionLocks
}

// sessionLocks serializes updates to one session so concurrent requests
// cannot both spend the same trial run. It only covers this process.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func (l *sessionLocks) lock(id string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sessionLock)
	}
	sl, ok := l.locks[id]
	if !ok {
		sl = &sessionLock{}
		l.locks[id] = sl
	}
	sl.refs++
	l.mu.Unlock()

	sl.mu.Lock()
	return func() {
		sl.mu.Unlock()

		l.mu.Lock()
		sl.refs--
		if sl.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

func NewAccessService(
	sessions *repository.SessionStore,
	registry repository.PaidUserRegistry,
	cfg AccessConfig,
	logger *zap.Logger,
) *AccessService {
	if cfg.TrialDuration <= 0 {
		cfg.TrialDuration = DefaultTrialDuration
	}
	if cfg.MaxTrialRuns <= 0 {
		cfg.MaxTrialRuns = DefaultMaxTrialRuns
	}
	return &AccessService{sessions: sessions, registry: registry, cfg: cfg, logger: logger}
}

func (s *AccessService) StartSession(now time.Time) (domain.Session, error) {
	session := domain.Session{
		ID:            uuid.NewString(),
		StartedAt:     now,
		TrialDuration: s.cfg.TrialDuration,
		MaxTrialRuns:  s.cfg.MaxTrialRuns,
	}
	if err := s.sessions.Save(session); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

// session loads a session, starting a fresh one when the ID is empty or
// has expired from the store.
func (s *AccessService) session(sessionID string, now time.Time) (domain.Session, error) {
	if sessionID == "" {
		return s.StartSession(now)
	}
	session, err := s.sessions.Get(sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return s.StartSession(now)
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	return session, nil
}

// Check applies the access query parameters (payment_id, email,
// admin_key) to the visitor's session and reports the resulting access.
func (s *AccessService) Check(sessionID string, query url.Values, now time.Time) (domain.AccessDecision, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	session, err := s.session(sessionID, now)
	if err != nil {
		return domain.AccessDecision{}, err
	}

	var messages []string
	paymentID := strings.TrimSpace(query.Get("payment_id"))
	rawEmail := strings.TrimSpace(query.Get("email"))

	switch {
	case paymentID != "":
		session.Paid = true
		session.PaymentID = paymentID
		messages = append(messages, "Payment verified! You now have full access.")

		if rawEmail != "" {
			email, ok := normalizeEmail(rawEmail)
			if !ok {
				messages = append(messages, "The email address is invalid, so access was not saved for future visits.")
				break
			}
			session.Email = email
			grant := domain.PaidUser{PaymentID: paymentID, Timestamp: now.UTC(), AccessGranted: true}
			if err := s.registry.Grant(email, grant); err != nil {
				s.logger.Warn("failed to record paid user", zap.String("email", email), zap.Error(err))
			}
		}

	case rawEmail != "":
		email, ok := normalizeEmail(rawEmail)
		if !ok {
			messages = append(messages, "Please enter a valid email address.")
			break
		}
		user, err := s.registry.Lookup(email)
		switch {
		case err == nil && user.AccessGranted:
			session.Paid = true
			session.PaymentID = user.PaymentID
			session.Email = email
			messages = append(messages, "Welcome back! Your paid access has been restored.")
		case err == nil || errors.Is(err, repository.ErrNotFound):
			messages = append(messages, "No payment found for this email address.")
		default:
			s.logger.Warn("paid user lookup failed", zap.String("email", email), zap.Error(err))
			messages = append(messages, "Could not look up this email address right now.")
		}
	}

	if key := query.Get("admin_key"); key != "" {
		if s.cfg.AdminKey != "" && subtle.ConstantTimeCompare([]byte(key), []byte(s.cfg.AdminKey)) == 1 {
			session.Admin = true
			messages = append(messages, "Admin access enabled.")
		} else {
			messages = append(messages, "Invalid admin key.")
		}
	}

	if err := s.sessions.Save(session); err != nil {
		return domain.AccessDecision{}, fmt.Errorf("save session: %w", err)
	}

	d := decide(session, now)
	if d.Message != "" {
		messages = append(messages, d.Message)
	}
	d.Message = strings.Join(messages, " ")
	return d, nil
}

// Status reports the session's access without using up a trial run.
func (s *AccessService) Status(sessionID string, now time.Time) (domain.AccessDecision, error) {
	session, err := s.session(sessionID, now)
	if err != nil {
		return domain.AccessDecision{}, err
	}
	return decide(session, now), nil
}

// Consume uses up one trial run. Paid and admin sessions are not counted.
// A spent or expired trial comes back as a denied decision, not an error.
func (s *AccessService) Consume(sessionID string, now time.Time) (domain.AccessDecision, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	session, err := s.session(sessionID, now)
	if err != nil {
		return domain.AccessDecision{}, err
	}

	d := decide(session, now)
	if !d.Granted || session.FullAccess() {
		return d, nil
	}

	session.TrialRuns++
	if err := s.sessions.Save(session); err != nil {
		return domain.AccessDecision{}, fmt.Errorf("save session: %w", err)
	}
	d.TrialRunsLeft = session.TrialRunsLeft()
	d.Message = trialMessage(session, now)
	return d, nil
}

// Authorize is Consume (or Status when consume is false) for callers that
// want a denial as ErrAccessDenied.
func (s *AccessService) Authorize(sessionID string, now time.Time, consume bool) (domain.AccessDecision, error) {
	var (
		d   domain.AccessDecision
		err error
	)
	if consume {
		d, err = s.Consume(sessionID, now)
	} else {
		d, err = s.Status(sessionID, now)
	}
	if err != nil {
		return d, err
	}
	if !d.Granted {
		return d, fmt.Errorf("%w: %s", ErrAccessDenied, d.Message)
	}
	return d, nil
}

// Grant records a paid email directly, for operators fixing up a payment
// that never came back through the redirect.
func (s *AccessService) Grant(rawEmail, paymentID string, now time.Time) (domain.PaidUser, error) {
	email, ok := normalizeEmail(rawEmail)
	if !ok {
		return domain.PaidUser{}, fmt.Errorf("invalid email address %q", rawEmail)
	}
	if strings.TrimSpace(paymentID) == "" {
		return domain.PaidUser{}, errors.New("payment id is required")
	}

	user := domain.PaidUser{PaymentID: strings.TrimSpace(paymentID), Timestamp: now.UTC(), AccessGranted: true}
	if err := s.registry.Grant(email, user); err != nil {
		return domain.PaidUser{}, err
	}
	return user, nil
}

// Lookup finds a paid email in the registry.
func (s *AccessService) Lookup(rawEmail string) (domain.PaidUser, error) {
	email, ok := normalizeEmail(rawEmail)
	if !ok {
		return domain.PaidUser{}, fmt.Errorf("invalid email address %q", rawEmail)
	}
	return s.registry.Lookup(email)
}

func decide(session domain.Session, now time.Time) domain.AccessDecision {
	d := domain.AccessDecision{
		SessionID:      session.ID,
		TrialRunsLeft:  session.TrialRunsLeft(),
		TrialRemaining: session.TrialRemaining(now),
	}

	switch {
	case session.Paid:
		d.Granted = true
		d.Level = domain.AccessPaid
	case session.Admin:
		d.Granted = true
		d.Level = domain.AccessAdmin
	case session.TrialExpired(now):
		d.Level = domain.AccessDenied
		d.Message = "Your free trial has ended. Pay ₹49 to unlock full access."
	case session.TrialRunsLeft() == 0:
		d.Level = domain.AccessDenied
		d.Message = fmt.Sprintf("You have used all %d free comparisons. Pay ₹49 to unlock full access.", session.MaxTrialRuns)
	default:
		d.Granted = true
		d.Level = domain.AccessTrial
		d.Message = trialMessage(session, now)
	}
	return d
}

func trialMessage(session domain.Session, now time.Time) string {
	return fmt.Sprintf("Free trial: %d of %d comparisons left, %s remaining.",
		session.TrialRunsLeft(), session.MaxTrialRuns, session.TrialRemaining(now).Round(time.Second))
}

// normalizeEmail accepts a bare address (no display name) and lowercases it.
func normalizeEmail(raw string) (string, bool) {
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw || !strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@")+1:], ".") {
		return "", false
	}
	return strings.ToLower(addr.Address), true
}
