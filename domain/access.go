package domain

import "time"

// PaidUser is a paid-user registry entry.
type PaidUser struct {
	PaymentID     string    `json:"payment_id"`
	Timestamp     time.Time `json:"timestamp"`
	AccessGranted bool      `json:"access_granted"`
}

// Session is the access state of one visitor. It replaces the ambient
// trial timers and admin/paid flags with an explicit value.
type Session struct {
	ID            string        `json:"id"`
	StartedAt     time.Time     `json:"started_at"`
	TrialDuration time.Duration `json:"trial_duration"`
	TrialRuns     int           `json:"trial_runs"`
	MaxTrialRuns  int           `json:"max_trial_runs"`
	Admin         bool          `json:"admin"`
	Paid          bool          `json:"paid"`
	PaymentID     string        `json:"payment_id,omitempty"`
	Email         string        `json:"email,omitempty"`
}

func (s Session) TrialExpired(now time.Time) bool {
	return !now.Before(s.StartedAt.Add(s.TrialDuration))
}

func (s Session) TrialRemaining(now time.Time) time.Duration {
	left := s.StartedAt.Add(s.TrialDuration).Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

func (s Session) TrialRunsLeft() int {
	left := s.MaxTrialRuns - s.TrialRuns
	if left < 0 {
		return 0
	}
	return left
}

// FullAccess reports whether the session bypasses the trial limits.
func (s Session) FullAccess() bool {
	return s.Paid || s.Admin
}

type AccessLevel string

const (
	AccessPaid   AccessLevel = "paid"
	AccessAdmin  AccessLevel = "admin"
	AccessTrial  AccessLevel = "trial"
	AccessDenied AccessLevel = "denied"
)

// AccessDecision is what the gate tells the visitor. Failures are carried
// in Message, never as errors.
type AccessDecision struct {
	SessionID      string        `json:"session_id"`
	Granted        bool          `json:"granted"`
	Level          AccessLevel   `json:"level"`
	Message        string        `json:"message,omitempty"`
	TrialRunsLeft  int           `json:"trial_runs_left"`
	TrialRemaining time.Duration `json:"trial_remaining"`
}
