package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"loan-compare/config"
	"loan-compare/logging"
	"loan-compare/repository"
	"loan-compare/service"
)

// app is the wired service graph shared by the commands.
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	rates     *service.RateService
	loans     *service.LoanService
	scenarios *service.ScenarioService
	access    *service.AccessService
	closers   []func() error
}

func newApp(cfg *config.Config) (*app, error) {
	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger}

	history, err := a.historyRepository()
	if err != nil {
		a.Close()
		return nil, err
	}
	cache, registry, err := a.accessStores()
	if err != nil {
		a.Close()
		return nil, err
	}

	a.rates = service.NewRateService(repository.NewFileRateRepository(cfg.Rates.File, logger), logger)
	advisor := service.NewAdvisorService(service.AdvisorConfig{
		Enabled: cfg.Advisor.Enabled,
		APIKey:  cfg.Advisor.APIKey,
		APIURL:  cfg.Advisor.APIURL,
		Model:   cfg.Advisor.Model,
		Timeout: cfg.Advisor.Timeout,
	}, logger)
	a.loans = service.NewLoanService(a.rates, history, advisor, logger)
	a.scenarios = service.NewScenarioService(a.loans, logger)
	a.access = service.NewAccessService(
		repository.NewSessionStore(cache, cfg.Access.SessionTTL),
		registry,
		service.AccessConfig{
			TrialDuration: cfg.Access.TrialDuration,
			MaxTrialRuns:  cfg.Access.MaxTrialRuns,
			AdminKey:      cfg.Access.AdminKey,
		},
		logger,
	)
	return a, nil
}

func (a *app) historyRepository() (repository.HistoryRepository, error) {
	switch a.cfg.Storage.HistoryDriver {
	case "sqlite":
		h, err := repository.NewSQLiteHistory(a.cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
		a.closers = append(a.closers, h.Close)
		return h, nil
	default:
		return repository.NewMemoryHistory(), nil
	}
}

// accessStores picks where sessions and paid users live. With Redis both
// share it; otherwise sessions stay in memory and paid users go to a file.
func (a *app) accessStores() (repository.CacheRepository, repository.PaidUserRegistry, error) {
	if a.cfg.Storage.RegistryDriver == "redis" {
		rc := repository.NewRedisCache(a.cfg.Storage.RedisAddr, a.cfg.Storage.RedisPrefix)
		a.closers = append(a.closers, rc.Close)
		if err := rc.Ping(); err != nil {
			return nil, nil, fmt.Errorf("connect to redis at %s: %w", a.cfg.Storage.RedisAddr, err)
		}
		return rc, repository.NewCacheRegistry(rc), nil
	}
	return repository.NewMemoryCache(), repository.NewJSONFileRegistry(a.cfg.Storage.RegistryPath), nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("close failed", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

// withApp loads the config, builds the app and closes it after fn.
func withApp(fn func(*app) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
