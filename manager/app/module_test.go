package app

import (
	"testing"

	"github.com/registra/api/config"
	"github.com/registra/api/manager/migration"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestRestAppGraphIsComplete(t *testing.T) {
	cfg, err := config.InitManagerConfig("manager_config.test", config.GetAbsPath("config"))
	require.NoError(t, err)

	err = fx.ValidateApp(
		HandlerModule(ServiceModule(RepoModule(cfg))),
		fx.Invoke(migration.RunMongoMigration),
		fx.Invoke(BootstrapSuperadmin),
		fx.Invoke(StartRestApp),
	)
	require.NoError(t, err)
}
