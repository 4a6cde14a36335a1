package bootstrap

import (
	"context"
	"fmt"

	"revenue-dashboard/internal/dashboard/adapters/geo"
	"revenue-dashboard/internal/dashboard/adapters/render"
	"revenue-dashboard/internal/dashboard/adapters/session"
	"revenue-dashboard/internal/dashboard/core/chart"
	"revenue-dashboard/internal/dashboard/core/usecase"
	"revenue-dashboard/internal/platform/config"
	"revenue-dashboard/internal/platform/log"
	"revenue-dashboard/internal/reporting/adapters/sqlstore"
	reportingUsecase "revenue-dashboard/internal/reporting/core/usecase"
)

// App wires the store, the loaded dashboards and their hosts.
type App struct {
	Config   *config.Config
	Logger   *log.Logger
	Service  *usecase.DashboardService
	Adapter  *chart.Adapter
	Renderer *render.Renderer
}

// New connects to the store, loads every configured dashboard and closes the
// store again. Any error here is fatal for the process.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger) (*App, error) {
	storeLog := logger.WithComponent(log.ComponentStore)

	lookup, err := geo.Load(cfg.GeoLookupFile)
	if err != nil {
		return nil, err
	}

	db, err := sqlstore.Open(ctx, cfg.StoreDriver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer db.Close()
	storeLog.Info("store connected", "driver", cfg.StoreDriver)

	loadCtx, cancel := context.WithTimeout(ctx, cfg.LoadTimeout)
	defer cancel()

	gateway := sqlstore.NewQueryGateway(sqlstore.NewSQLDB(db))
	loader := reportingUsecase.NewLoadDatasetUseCase(gateway)

	dashLog := logger.WithComponent(log.ComponentDashboard)
	boards, err := usecase.LoadBoards(loadCtx, loader, cfg.Dashboards, cfg.DefaultSelection, dashLog)
	if err != nil {
		return nil, err
	}

	adapter := chart.NewAdapter(lookup)
	sessions := session.NewStore(cfg.SessionCapacity, cfg.SessionTTL, logger.WithComponent(log.ComponentSession))

	return &App{
		Config:   cfg,
		Logger:   logger,
		Service:  usecase.NewDashboardService(boards, adapter, sessions, dashLog),
		Adapter:  adapter,
		Renderer: render.NewRenderer(0, 0),
	}, nil
}
