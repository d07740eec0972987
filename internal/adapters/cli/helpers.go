package cli

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/agromap-uz/agromap-go/internal/adapters/persistence"
	"github.com/agromap-uz/agromap-go/internal/application/advisor/commands"
	"github.com/agromap-uz/agromap-go/internal/application/advisor/queries"
	"github.com/agromap-uz/agromap-go/internal/application/common"
	"github.com/agromap-uz/agromap-go/internal/domain/pricing"
	"github.com/agromap-uz/agromap-go/internal/domain/supply"
	"github.com/agromap-uz/agromap-go/internal/infrastructure/config"
	"github.com/agromap-uz/agromap-go/internal/infrastructure/database"
	"github.com/agromap-uz/agromap-go/internal/infrastructure/logging"
)

// appEnv bundles the wiring every command needs: loaded config, open
// database, repositories and the mediator with all handlers registered.
type appEnv struct {
	cfg      *config.Config
	db       *gorm.DB
	reports  *persistence.GormCropReportRepository
	history  *persistence.GormPriceHistoryRepository
	prices   pricing.PriceReference
	scoring  supply.ScoringConfig
	mediator common.Mediator
}

// newAppEnv loads configuration, opens the database and wires the standard
// dependency set. Recorded price history takes precedence over the configured
// baseline prices.
func newAppEnv() (*appEnv, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if databaseURL != "" {
		applyDatabaseOverride(&cfg.Database, databaseURL)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	history := persistence.NewGormPriceHistoryRepository(db)

	env := &appEnv{
		cfg:     cfg,
		db:      db,
		reports: persistence.NewGormCropReportRepository(db),
		history: history,
		prices:  persistence.NewHistoryPriceReference(history, cfg.Prices.BuildPriceReference()),
		scoring: cfg.Scoring.BuildScoringConfig(),
	}

	if err := env.registerHandlers(); err != nil {
		return nil, fmt.Errorf("failed to register handlers: %w", err)
	}

	return env, nil
}

func (e *appEnv) registerHandlers() error {
	m := common.NewMediator()

	registrations := []error{
		common.RegisterHandler[*commands.SubmitCropReportCommand](m,
			commands.NewSubmitCropReportHandler(e.reports)),
		common.RegisterHandler[*queries.AnalyzeMarketsQuery](m,
			queries.NewAnalyzeMarketsHandler(e.reports, e.prices, e.scoring)),
		common.RegisterHandler[*queries.RankOpportunitiesQuery](m,
			queries.NewRankOpportunitiesHandler(e.reports, e.prices, e.scoring)),
		common.RegisterHandler[*queries.RotationAdviceQuery](m,
			queries.NewRotationAdviceHandler()),
		common.RegisterHandler[*queries.DashboardQuery](m,
			queries.NewDashboardHandler(e.reports, e.prices, e.scoring)),
	}
	for _, err := range registrations {
		if err != nil {
			return err
		}
	}

	e.mediator = m
	return nil
}

// applyDatabaseOverride points the database config at the value of
// --database-url: a postgres URL selects the postgres driver, anything else
// is treated as a sqlite path.
func applyDatabaseOverride(dbCfg *config.DatabaseConfig, override string) {
	if strings.HasPrefix(override, "postgres://") || strings.HasPrefix(override, "postgresql://") {
		dbCfg.Type = "postgres"
		dbCfg.URL = override
		return
	}
	dbCfg.Type = "sqlite"
	dbCfg.Path = override
}

// Close releases the database connection
func (e *appEnv) Close() {
	_ = database.Close(e.db)
}

// commandContext returns a context carrying the configured logger. Verbose
// mode drops the level to debug regardless of configuration.
func (e *appEnv) commandContext() context.Context {
	logCfg := e.cfg.Logging
	if verbose {
		logCfg.Level = "debug"
	}
	return common.WithLogger(context.Background(), logging.NewConsoleLogger(logCfg))
}
