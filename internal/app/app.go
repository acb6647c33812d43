// Package app builds the storefront's object graph from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/config"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/catalog"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/events"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/repository"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/scoring"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/service"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/cache"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/database"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/logger"
)

// App owns every long-lived dependency. Close releases them in reverse order.
type App struct {
	Config     *config.Config
	DB         *gorm.DB
	Redis      *redis.Client
	SimRepo    repository.SimRepository
	OrderRepo  repository.OrderRepository
	Catalog    service.CatalogService
	Orders     service.OrderService
	Scoring    *scoring.Service
	Dispatcher *events.Dispatcher

	publisher      events.Publisher
	stopDispatcher func(context.Context) error
}

// New opens the store, migrates the schema, seeds when configured and starts
// the event dispatcher.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	db, err := database.InitDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	a.DB = db
	if err := repository.InitSchema(db); err != nil {
		_ = a.Close(ctx)
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	a.SimRepo = repository.NewSimRepository(db)
	if cfg.Redis.Enabled {
		rdb, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, serving catalog without cache", zap.Error(err))
		} else {
			a.Redis = rdb
			a.SimRepo = repository.NewCachedSimRepository(a.SimRepo, rdb, cfg.Redis.CacheTTL)
		}
	}
	a.OrderRepo = repository.NewGormOrderRepository(db)

	if cfg.Database.Seed {
		if err := a.Seed(ctx); err != nil {
			_ = a.Close(ctx)
			return nil, err
		}
	}

	if cfg.Kafka.Enabled {
		a.publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers)
	} else {
		a.publisher = events.LogPublisher{}
	}
	a.Dispatcher = events.NewDispatcher(a.publisher, cfg.Events.QueueSize, cfg.Events.PublishTimeout)
	a.stopDispatcher = a.Dispatcher.Start(cfg.Events.Workers)

	a.Catalog = service.NewCatalogService(a.SimRepo)
	a.Orders = service.NewOrderService(a.OrderRepo, a.Dispatcher)

	a.Scoring, err = newScoring(ctx, cfg.Scoring)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}
	return a, nil
}

func newScoring(ctx context.Context, sc config.ScoringConfig) (*scoring.Service, error) {
	opts := scoring.Options{Timeout: sc.Timeout, DemoDelay: sc.DemoDelay}
	if sc.APIKey == "" {
		logger.Info("no scoring api key, feng shui analysis runs in demo mode")
		return scoring.NewService(nil, opts), nil
	}
	completer, err := scoring.NewGenAICompleter(ctx, sc.APIKey, sc.Model)
	if err != nil {
		return nil, fmt.Errorf("init scoring backend: %w", err)
	}
	logger.Info("feng shui analysis backend ready", zap.String("model", completer.Name()))
	return scoring.NewService(completer, opts), nil
}

// Seed loads the demo catalog and orders into empty tables.
func (a *App) Seed(ctx context.Context) error {
	seed, err := catalog.DemoSeed(time.Now())
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	if err := a.SimRepo.Seed(ctx, seed.Sims); err != nil {
		return fmt.Errorf("seed sims: %w", err)
	}
	if err := a.OrderRepo.Seed(ctx, seed.Orders); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	logger.Info("demo data seeded", zap.Int("sims", len(seed.Sims)), zap.Int("orders", len(seed.Orders)))
	return nil
}

// Close flushes pending events and closes every connection.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.stopDispatcher != nil {
		errs = append(errs, a.stopDispatcher(ctx))
	}
	if a.publisher != nil {
		errs = append(errs, a.publisher.Close())
	}
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil {
		errs = append(errs, database.Close(a.DB))
	}
	return errors.Join(errs...)
}
