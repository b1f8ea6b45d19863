package app

import (
	"github.com/registra/api/config"
	"github.com/registra/api/manager/repository"
	"github.com/registra/api/manager/rest"
	"github.com/registra/api/manager/service"
	"go.uber.org/fx"
)

func ConfigModule(cfg config.ManageConfig) fx.Option {
	return fx.Options(
		fx.Provide(func() config.ManageConfig {
			return cfg
		}),
		fx.Provide(func(managerCfg config.ManageConfig) config.MongoDBConfig {
			return managerCfg.MongoDB
		}),
		fx.Provide(func(managerCfg config.ManageConfig) config.ServerConfig {
			return managerCfg.Server
		}),
		fx.Provide(func(managerCfg config.ManageConfig) config.KeyConfig {
			return managerCfg.Key
		}),
		fx.Provide(func(managerCfg config.ManageConfig) config.AccountConfig {
			return managerCfg.Account
		}),
		fx.Provide(func(managerCfg config.ManageConfig) config.AuthConfig {
			return managerCfg.Auth
		}),
		fx.Provide(func(managerCfg config.ManageConfig) config.ActivityLogConfig {
			return managerCfg.ActivityLog
		}),
	)
}

// RepoModule creates an Fx module that provides the repository layer, return domain.Repository
func RepoModule(cfg config.ManageConfig) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		fx.Provide(repository.NewRepository),
	)
}

// ServiceModule creates an Fx module that provides the service layer, return domain.Service
func ServiceModule(repoModule fx.Option) fx.Option {
	return fx.Options(
		repoModule,
		fx.Provide(service.NewService),
	)
}

// HandlerModule creates an Fx module that provides the REST handler, return *rest.Handler
func HandlerModule(serviceModule fx.Option) fx.Option {
	return fx.Options(
		serviceModule,
		fx.Provide(rest.NewHandler),
	)
}
