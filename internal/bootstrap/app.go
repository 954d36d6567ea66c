package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/itemforge/internal/concurrency"
	"github.com/osse101/itemforge/internal/config"
	"github.com/osse101/itemforge/internal/database"
	"github.com/osse101/itemforge/internal/database/postgres"
	"github.com/osse101/itemforge/internal/enchanting"
	"github.com/osse101/itemforge/internal/event"
	"github.com/osse101/itemforge/internal/eventlog"
	"github.com/osse101/itemforge/internal/forge"
	"github.com/osse101/itemforge/internal/item"
	"github.com/osse101/itemforge/internal/repository"
	"github.com/osse101/itemforge/internal/socketing"
)

// Repositories holds the repository implementations used by the application
type Repositories struct {
	Templates repository.Template
	Instances repository.Instance
	History   eventlog.Repository
}

// InitializeRepositories creates the postgres repositories
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Templates: postgres.NewTemplateRepository(dbPool),
		Instances: postgres.NewInstanceRepository(dbPool),
		History:   postgres.NewEventLogRepository(dbPool),
	}
}

// App is the wired forge: database, caches, services, and event system
type App struct {
	Config    *config.Config
	Pool      *pgxpool.Pool
	Repos     *Repositories
	Templates *item.TemplateCache
	Enchanter enchanting.Service
	Forge     forge.Service
	History   eventlog.Service
	Bus       *event.MemoryBus
	Publisher *event.ResilientPublisher
}

// NewApp connects to the database and wires every service. The caller owns
// the returned App and must Shutdown it.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}
	slog.Info(LogMsgDatabaseConnected, "host", cfg.DBHost, "name", cfg.DBName)

	catalog, err := LoadEnchantments(cfg.EnchantmentsConfigPath)
	if err != nil {
		pool.Close()
		return nil, err
	}

	bus, publisher, err := InitializeEventSystem(cfg)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedInitEventSystem, err)
	}
	repos := InitializeRepositories(pool)
	history := eventlog.NewService(repos.History)
	RegisterEventHandlers(bus, history)
	templates := item.NewTemplateCache(repos.Templates, cfg.TemplateCacheSize, cfg.TemplateCacheTTL)
	enchanter := enchanting.NewService(catalog, nil)

	return &App{
		Config:    cfg,
		Pool:      pool,
		Repos:     repos,
		Templates: templates,
		Enchanter: enchanter,
		Forge: forge.NewService(
			repos.Instances,
			templates,
			socketing.NewService(),
			enchanter,
			concurrency.NewLockManager(),
			publisher,
		),
		History:   history,
		Bus:       bus,
		Publisher: publisher,
	}, nil
}

// SyncContent syncs the item templates file and drops cached templates
func (a *App) SyncContent(ctx context.Context) (*item.SyncResult, error) {
	result, err := SyncItems(ctx, a.Repos.Templates, a.Config.ItemsConfigPath)
	if err != nil {
		return nil, err
	}
	a.Templates.Purge()
	return result, nil
}

// Shutdown flushes pending events and closes the database pool
func (a *App) Shutdown(ctx context.Context) {
	GracefulShutdown(ctx, ShutdownComponents{
		ResilientPublisher: a.Publisher,
		Pool:               a.Pool,
	})
}
