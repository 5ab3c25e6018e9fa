package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-compare/domain"
)

func testRegistries(t *testing.T) map[string]PaidUserRegistry {
	t.Helper()
	return map[string]PaidUserRegistry{
		"json file": NewJSONFileRegistry(filepath.Join(t.TempDir(), "data", "paid_users.json")),
		"cache":     NewCacheRegistry(NewMemoryCache()),
	}
}

func TestPaidUserRegistry(t *testing.T) {
	paidAt := time.Date(2025, 10, 14, 10, 0, 0, 0, time.UTC)

	for name, reg := range testRegistries(t) {
		t.Run(name, func(t *testing.T) {
			_, err := reg.Lookup("a@example.com")
			assert.ErrorIs(t, err, ErrNotFound)

			user := domain.PaidUser{PaymentID: "pay_123", Timestamp: paidAt, AccessGranted: true}
			require.NoError(t, reg.Grant("a@example.com", user))
			require.NoError(t, reg.Grant("b@example.com", domain.PaidUser{PaymentID: "pay_456", Timestamp: paidAt, AccessGranted: true}))

			got, err := reg.Lookup("a@example.com")
			require.NoError(t, err)
			assert.Equal(t, "pay_123", got.PaymentID)
			assert.True(t, got.AccessGranted)
			assert.True(t, paidAt.Equal(got.Timestamp))

			_, err = reg.Lookup("b@example.com")
			assert.NoError(t, err, "earlier grants are kept")
		})
	}
}

func TestJSONFileRegistryFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paid_users.json")
	reg := NewJSONFileRegistry(path)

	require.NoError(t, reg.Grant("a@example.com", domain.PaidUser{
		PaymentID:     "pay_123",
		Timestamp:     time.Date(2025, 10, 14, 10, 0, 0, 0, time.UTC),
		AccessGranted: true,
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"a@example.com": {
			"payment_id": "pay_123",
			"timestamp": "2025-10-14T10:00:00Z",
			"access_granted": true
		}
	}`, string(data))
}

func TestJSONFileRegistryCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paid_users.json")
	require.NoError(t, os.WriteFile(path, []byte("[oops"), 0o644))

	_, err := NewJSONFileRegistry(path).Lookup("a@example.com")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestCacheRegistry_CacheFailureIsNotMissing(t *testing.T) {
	_, err := NewCacheRegistry(unreachableCache{}).Lookup("a@example.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
