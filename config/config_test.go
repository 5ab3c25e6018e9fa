package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 15*time.Minute, cfg.Access.TrialDuration)
	assert.Equal(t, 3, cfg.Access.MaxTrialRuns)
	assert.Equal(t, "memory", cfg.Storage.HistoryDriver)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"missing addr", func(c *Config) { c.Server.Addr = "" }, "server.addr is required"},
		{"zero capacity", func(c *Config) { c.RateLimit.Capacity = 0 }, "rate_limit.capacity must be positive"},
		{"unknown registry", func(c *Config) { c.Storage.RegistryDriver = "etcd" }, "storage.registry_driver"},
		{"redis without addr", func(c *Config) {
			c.Storage.RegistryDriver = "redis"
			c.Storage.RedisAddr = ""
		}, "storage.redis_addr is required"},
		{"unknown history", func(c *Config) { c.Storage.HistoryDriver = "mongo" }, "storage.history_driver"},
		{"sqlite without path", func(c *Config) {
			c.Storage.HistoryDriver = "sqlite"
			c.Storage.SQLitePath = ""
		}, "storage.sqlite_path is required"},
		{"zero trial runs", func(c *Config) { c.Access.MaxTrialRuns = 0 }, "access.max_trial_runs must be positive"},
		{"short session", func(c *Config) { c.Access.SessionTTL = time.Minute }, "access.session_ttl"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"advisor without url", func(c *Config) {
			c.Advisor.Enabled = true
			c.Advisor.APIURL = ""
		}, "advisor.api_url is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSaveAndLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loancmp.yaml")

	cfg := Default()
	cfg.Storage.HistoryDriver = "sqlite"
	cfg.Access.MaxTrialRuns = 5
	cfg.RateLimit.Window = 30 * time.Second
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveAndLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loancmp.json")

	cfg := Default()
	cfg.Logging.Level = "debug"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", loaded.Logging.Level)
}

func TestLoadFromFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loancmp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("access:\n  trial_duration: 5m\n  max_trial_runs: 1\n"), 0o600))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.Access.TrialDuration)
	assert.Equal(t, 1, cfg.Access.MaxTrialRuns)
	assert.Equal(t, 24*time.Hour, cfg.Access.SessionTTL)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o600))
	_, err = LoadFromFile(path)
	assert.ErrorContains(t, err, "invalid config")
}

func TestApplyEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LOANCMP_ADDR", ":9090")
	t.Setenv("LOANCMP_MAX_TRIAL_RUNS", "7")
	t.Setenv("OTEL_ENDPOINT", "collector:4318")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 7, cfg.Access.MaxTrialRuns)
	assert.Equal(t, "collector:4318", cfg.Tracing.Endpoint)
	assert.Equal(t, "sk-test", cfg.Advisor.APIKey)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestApplyEnv_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOANCMP_ADMIN_KEY=from-dotenv\n"), 0o600))
	chdir(t, dir)
	t.Cleanup(func() { os.Unsetenv("LOANCMP_ADMIN_KEY") })

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, "from-dotenv", cfg.Access.AdminKey)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
