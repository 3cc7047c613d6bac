// Command familyhub serves the household dashboard API.
//
// @title                       Family Hub API
// @version                     1.0
// @description                 Role-aware household dashboard: meals, shopping, activities, transport and settings.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/familyhub/dashboard/internal/api"
	"github.com/familyhub/dashboard/internal/core/domain"
	"github.com/familyhub/dashboard/internal/core/ports"
	"github.com/familyhub/dashboard/internal/core/service"
	"github.com/familyhub/dashboard/internal/infrastructure/config"
	"github.com/familyhub/dashboard/internal/infrastructure/db/memory"
	"github.com/familyhub/dashboard/internal/infrastructure/db/mongo"
	"github.com/familyhub/dashboard/internal/infrastructure/db/redis"
	"github.com/familyhub/dashboard/internal/infrastructure/http/handlers"
	"github.com/familyhub/dashboard/internal/infrastructure/queue"
	"github.com/familyhub/dashboard/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("familyhub exited")
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is not configured yet.
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Development(),
		Service: "family-hub",
	})

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	log.Info().Str("driver", cfg.Storage.Driver).Msg("settings store ready")

	checker, err := service.NewSharedSecretChecker(cfg.DemoPassword)
	if err != nil {
		return fmt.Errorf("credential checker: %w", err)
	}

	sessions := service.NewSessionService(checker, cfg.JWTSecret, cfg.SessionTTL, logger.Component("session"))
	settings := service.NewSettingsService(store, cfg.Storage.KeyPrefix, logger.Component("settings"))
	meals := service.NewMealPlanService(logger.Component("meals"))
	shopping := service.NewShoppingService(logger.Component("shopping"))
	activities := service.NewActivityService(logger.Component("activities"))
	transport := service.NewTransportService(logger.Component("transport"))
	suggestions := service.NewSuggestionGenerator(nil, domain.SuggestionPool())

	if cfg.SeedDemoData {
		meals.Seed(domain.SeedMeals())
		shopping.Seed(domain.SeedShoppingItems())
		activities.Seed(domain.SeedActivities())
		transport.Seed(domain.SeedRoutes(), domain.SeedVehicles(), domain.SeedMaintenance())
		log.Info().Msg("demo household seeded")
	}

	settings.Load(ctx)

	composer := service.NewComposer(sessions, service.DashboardSources{
		Meals:      meals,
		Shopping:   shopping,
		Activities: activities,
		Transport:  transport,
	}, settings, time.Now)

	loopCtx, cancelLoop := context.WithCancel(context.Background())
	defer cancelLoop()
	loop := queue.NewLoop(0, logger.Component("loop"))
	loop.Start(loopCtx)

	e := api.NewRouter(api.Dependencies{
		Log:             log,
		Loop:            loop,
		Sessions:        sessions,
		Settings:        settings,
		Composer:        composer,
		Meals:           meals,
		Suggestions:     suggestions,
		Shopping:        shopping,
		Activities:      activities,
		Transport:       transport,
		Probes:          map[string]handlers.Pinger{"settings_store": store},
		SuggestionCount: cfg.SuggestionCount,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// openStore connects the settings backend selected by STORAGE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config) (ports.KeyValueStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageRedis:
		s, err := redis.Open(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open redis: %w", err)
		}
		return s, func() { logClose(s.Close()) }, nil
	case config.StorageMongo:
		s, err := mongo.Open(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open mongo: %w", err)
		}
		return s, func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			logClose(s.Close(closeCtx))
		}, nil
	default:
		return memory.NewStore(), func() {}, nil
	}
}

func logClose(err error) {
	if err != nil {
		log := logger.Get()
		log.Warn().Err(err).Msg("closing settings store")
	}
}
