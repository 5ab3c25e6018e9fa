package service

import (
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"loan-compare/domain"
	"loan-compare/repository"
)

func newTestAccessService(t *testing.T) (*AccessService, repository.PaidUserRegistry) {
	t.Helper()

	cache := repository.NewMemoryCache()
	registry := repository.NewCacheRegistry(cache)
	svc := NewAccessService(
		repository.NewSessionStore(cache, DefaultSessionTTL),
		registry,
		AccessConfig{TrialDuration: 15 * time.Minute, MaxTrialRuns: 3, AdminKey: "s3cret"},
		zap.NewNop(),
	)
	return svc, registry
}

func TestAccess_TrialRunsOut(t *testing.T) {
	svc, _ := newTestAccessService(t)

	session, err := svc.StartSession(testNow)
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)

	for left := 2; left >= 0; left-- {
		d, err := svc.Consume(session.ID, testNow.Add(time.Minute))
		require.NoError(t, err)
		assert.True(t, d.Granted)
		assert.Equal(t, domain.AccessTrial, d.Level)
		assert.Equal(t, left, d.TrialRunsLeft)
	}

	d, err := svc.Consume(session.ID, testNow.Add(2*time.Minute))
	require.NoError(t, err, "an exhausted trial is a message, not an error")
	assert.False(t, d.Granted)
	assert.Equal(t, domain.AccessDenied, d.Level)
	assert.Contains(t, d.Message, "used all 3 free comparisons")

	_, err = svc.Authorize(session.ID, testNow.Add(2*time.Minute), false)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAccess_TrialExpires(t *testing.T) {
	svc, _ := newTestAccessService(t)

	session, err := svc.StartSession(testNow)
	require.NoError(t, err)

	d, err := svc.Status(session.ID, testNow.Add(14*time.Minute))
	require.NoError(t, err)
	assert.True(t, d.Granted)
	assert.Equal(t, time.Minute, d.TrialRemaining)

	d, err = svc.Status(session.ID, testNow.Add(15*time.Minute))
	require.NoError(t, err)
	assert.False(t, d.Granted)
	assert.Contains(t, d.Message, "free trial has ended")
}

func TestAccess_PaymentGrantsFullAccess(t *testing.T) {
	svc, registry := newTestAccessService(t)

	d, err := svc.Check("", url.Values{
		"payment_id": {"pay_ABC"},
		"email":      {"Someone@Example.com"},
	}, testNow)
	require.NoError(t, err)
	assert.True(t, d.Granted)
	assert.Equal(t, domain.AccessPaid, d.Level)
	assert.Contains(t, d.Message, "Payment verified")

	user, err := registry.Lookup("someone@example.com")
	require.NoError(t, err)
	assert.Equal(t, "pay_ABC", user.PaymentID)
	assert.True(t, user.AccessGranted)
	assert.True(t, testNow.Equal(user.Timestamp))

	// Paid sessions never use up trial runs.
	for i := 0; i < 5; i++ {
		d, err = svc.Consume(d.SessionID, testNow.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, d.Granted)
	}
}

func TestAccess_PaymentWithInvalidEmail(t *testing.T) {
	svc, registry := newTestAccessService(t)

	d, err := svc.Check("", url.Values{
		"payment_id": {"pay_ABC"},
		"email":      {"not-an-email"},
	}, testNow)
	require.NoError(t, err)
	assert.True(t, d.Granted, "the payment id alone grants access")
	assert.Contains(t, d.Message, "invalid")

	_, err = registry.Lookup("not-an-email")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAccess_EmailRestoresAccess(t *testing.T) {
	svc, _ := newTestAccessService(t)

	_, err := svc.Grant("buyer@example.com", "pay_1", testNow)
	require.NoError(t, err)

	d, err := svc.Check("", url.Values{"email": {"BUYER@example.com"}}, testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.AccessPaid, d.Level)
	assert.Contains(t, d.Message, "Welcome back")

	d, err = svc.Check("", url.Values{"email": {"stranger@example.com"}}, testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.AccessTrial, d.Level)
	assert.Contains(t, d.Message, "No payment found")

	d, err = svc.Check("", url.Values{"email": {"Name <x@example.com>"}}, testNow)
	require.NoError(t, err)
	assert.Contains(t, d.Message, "valid email")
}

func TestAccess_AdminKey(t *testing.T) {
	svc, _ := newTestAccessService(t)

	d, err := svc.Check("", url.Values{"admin_key": {"s3cret"}}, testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.AccessAdmin, d.Level)

	d, err = svc.Check("", url.Values{"admin_key": {"guess"}}, testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.AccessTrial, d.Level)
	assert.Contains(t, d.Message, "Invalid admin key")
}

func TestAccess_UnknownSessionStartsFresh(t *testing.T) {
	svc, _ := newTestAccessService(t)

	d, err := svc.Status("does-not-exist", testNow)
	require.NoError(t, err)
	assert.NotEqual(t, "does-not-exist", d.SessionID)
	assert.Equal(t, 3, d.TrialRunsLeft)
}

func TestAccess_GrantValidation(t *testing.T) {
	svc, _ := newTestAccessService(t)

	_, err := svc.Grant("bad", "pay_1", testNow)
	assert.Error(t, err)
	_, err = svc.Grant("a@example.com", " ", testNow)
	assert.Error(t, err)

	_, err = svc.Lookup("a@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestNormalizeEmail(t *testing.T) {
	for raw, want := range map[string]string{
		"A@Example.COM":       "a@example.com",
		"first.last@mail.org": "first.last@mail.org",
	} {
		got, ok := normalizeEmail(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got)
	}

	for _, raw := range []string{"", "plain", "a@localhost", "<a@b.com>", "a@@b.com"} {
		_, ok := normalizeEmail(raw)
		assert.False(t, ok, raw)
	}
}

// downCache stands in for an unreachable Redis: every call fails.
type downCache struct {
	sets int
}

func (c *downCache) Get(string) (string, bool, error) {
	return "", false, errors.New("redis: connection refused")
}

func (c *downCache) Set(string, string, time.Duration) error {
	c.sets++
	return errors.New("redis: connection refused")
}

func (c *downCache) Delete(string) error {
	return errors.New("redis: connection refused")
}

func TestAccess_SessionStoreDown(t *testing.T) {
	cache := &downCache{}
	svc := NewAccessService(
		repository.NewSessionStore(cache, DefaultSessionTTL),
		repository.NewCacheRegistry(repository.NewMemoryCache()),
		AccessConfig{TrialDuration: 15 * time.Minute, MaxTrialRuns: 3},
		zap.NewNop(),
	)

	_, err := svc.Consume("existing-session", testNow)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Authorize("existing-session", testNow, false)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAccessDenied)

	assert.Zero(t, cache.sets, "a failed read must not start a fresh trial")
}

func TestAccess_RegistryDown(t *testing.T) {
	svc := NewAccessService(
		repository.NewSessionStore(repository.NewMemoryCache(), DefaultSessionTTL),
		repository.NewCacheRegistry(&downCache{}),
		AccessConfig{TrialDuration: 15 * time.Minute, MaxTrialRuns: 3},
		zap.NewNop(),
	)

	d, err := svc.Check("", url.Values{"email": {"buyer@example.com"}}, testNow)
	require.NoError(t, err)
	assert.Contains(t, d.Message, "Could not look up this email address")
	assert.NotContains(t, d.Message, "No payment found")
}

func TestAccess_ConcurrentConsumeHonoursTrialLimit(t *testing.T) {
	svc, _ := newTestAccessService(t)

	session, err := svc.StartSession(testNow)
	require.NoError(t, err)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		granted int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := svc.Consume(session.ID, testNow.Add(time.Minute))
			if err != nil || !d.Granted {
				return
			}
			mu.Lock()
			granted++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, granted)
	assert.Empty(t, svc.locks.locks, "locks are released once no request holds them")

	d, err := svc.Status(session.ID, testNow.Add(time.Minute))
	require.NoError(t, err)
	assert.Zero(t, d.TrialRunsLeft)
}
