// @title           SustainLite API
// @version         1.0
// @description     Sustainability activity tracking: accounts, activities, dashboard and recommendations.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and the access token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/sustainlite/sustainlite-api/internal/api"
	"github.com/sustainlite/sustainlite-api/internal/core/ports"
	"github.com/sustainlite/sustainlite-api/internal/core/service"
	"github.com/sustainlite/sustainlite-api/internal/infrastructure/config"
	mongostore "github.com/sustainlite/sustainlite-api/internal/infrastructure/db/mongo"
	rediscache "github.com/sustainlite/sustainlite-api/internal/infrastructure/db/redis"
	"github.com/sustainlite/sustainlite-api/internal/infrastructure/db/sqlstore"
	"github.com/sustainlite/sustainlite-api/internal/infrastructure/http/handlers"
	"github.com/sustainlite/sustainlite-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// stores bundles the repositories of whichever backend STORE_DRIVER selects.
type stores struct {
	users      ports.UserRepository
	activities ports.ActivityRepository
	ping       handlers.Checker
	close      func(ctx context.Context) error
}

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is not configured yet.
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "sustainlite-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := st.close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("closing store")
		}
	}()

	checks := map[string]handlers.Checker{"store": st.ping}

	var cache ports.DashboardCache
	if cfg.Redis.Enabled {
		client, err := rediscache.Connect(ctx, rediscache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer client.Close()
		cache = rediscache.NewDashboardCache(client, cfg.Redis.DashboardTTL)
		checks["redis"] = rediscache.Pinger(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("dashboard cache enabled")
	}

	authService := service.NewAuthService(st.users, service.AuthConfig{
		JWTSecret:  cfg.Auth.JWTSecret,
		Issuer:     cfg.Auth.Issuer,
		TokenTTL:   cfg.Auth.TokenTTL,
		BcryptCost: cfg.Auth.BcryptCost,
	}, logger.Component("auth"))
	activityService := service.NewActivityService(st.activities, cache, cfg.ListMaxLimit, logger.Component("activities"))
	insightService := service.NewInsightService(st.activities, cache, logger.Component("insights"))

	e := api.NewRouter(api.Dependencies{
		Logger:          logger.Component("http"),
		Auth:            authService,
		Activities:      activityService,
		Insights:        insightService,
		ReadinessChecks: checks,
		AllowedOrigins:  cfg.AllowedOrigins(),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.Store.Driver).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*stores, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongo")
		return &stores{
			users:      mongostore.NewUserRepository(db),
			activities: mongostore.NewActivityRepository(db),
			ping:       mongostore.Pinger(client),
			close:      client.Disconnect,
		}, nil

	default:
		db, err := sqlstore.Open(ctx, cfg.Store.Driver, cfg.Store.DSN, sqlstore.Options{
			MaxOpenConns:    cfg.Store.MaxOpenConns,
			MaxIdleConns:    cfg.Store.MaxIdleConns,
			ConnMaxLifetime: cfg.Store.ConnMaxLifetime,
		})
		if err != nil {
			return nil, err
		}
		if err := sqlstore.Apply(ctx, db, cfg.Store.Driver); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info().Str("dialect", cfg.Store.Driver).Msg("schema applied")
		return &stores{
			users:      sqlstore.NewUserRepository(db),
			activities: sqlstore.NewActivityRepository(db),
			ping:       db.PingContext,
			close:      func(context.Context) error { return db.Close() },
		}, nil
	}
}
