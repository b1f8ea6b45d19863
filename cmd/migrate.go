package cmd

import (
	"fmt"

	"github.com/registra/api/config"
	"github.com/registra/api/manager/migration"
	"github.com/registra/api/pkg/logger"
	"github.com/spf13/cobra"
)

func migrateCmd(flags *configFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage MongoDB schema migrations",
	}

	loadConfig := func() (config.ManageConfig, error) {
		cfg, err := config.InitManagerConfig(flags.name, flags.dir)
		if err != nil {
			return cfg, err
		}
		logger.InitLoggerWithLevel(cfg.Logging.Level, cfg.Logging.Console)
		return cfg, nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return migration.RunMongoMigration(cfg.MongoDB)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied migration version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			version, dirty, err := migration.Version(cfg.MongoDB)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", version, dirty)
			return nil
		},
	})
	return cmd
}
