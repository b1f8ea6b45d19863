package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/registra/api/config"
	"github.com/registra/api/manager/domain"
	"github.com/registra/api/manager/migration"
	"github.com/registra/api/manager/rest"
	"github.com/registra/api/pkg/logger"
	"go.uber.org/fx"
)

func NewRestApp(configName string, configDirPath string) (*fx.App, error) {
	cfg, err := config.InitManagerConfig(configName, configDirPath)
	if err != nil {
		return nil, err
	}
	logger.InitLoggerWithLevel(cfg.Logging.Level, cfg.Logging.Console)

	app := fx.New(
		HandlerModule(ServiceModule(RepoModule(cfg))),
		fx.Invoke(migration.RunMongoMigration),
		fx.Invoke(BootstrapSuperadmin),
		fx.Invoke(StartRestApp),
	)
	return app, app.Err()
}

// BootstrapSuperadmin creates the configured superadmin on an empty database.
func BootstrapSuperadmin(lc fx.Lifecycle, cfg config.AccountConfig, svc domain.Service) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return svc.CreateSuperadminIfNotExists(ctx, cfg.SuperadminEmail, cfg.SuperadminPassword.Value(), cfg.SuperadminName)
		},
	})
}

func NewEngine(handler *rest.Handler) *echo.Echo {
	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	handler.SetupRoutes(engine)
	return engine
}

func StartRestApp(lc fx.Lifecycle, cfg config.ServerConfig, handler *rest.Handler) error {
	engine := NewEngine(handler)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			serverHost := cfg.Host
			if serverHost == "" {
				serverHost = ":8080"
			}
			go func() {
				logger.Logger(context.Background()).Info().Msgf("starting rest server on port %s", serverHost)
				if err := engine.Start(serverHost); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Logger(context.Background()).Fatal().Err(err).Msgf("start rest server fail on port %s", serverHost)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Logger(ctx).Info().Msg("shutting down rest server")
			return engine.Shutdown(ctx)
		},
	})

	return nil
}
