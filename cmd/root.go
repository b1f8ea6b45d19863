package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

type configFlags struct {
	name string
	dir  string
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.name, "config-name", "manager_config", "config file name without extension")
	cmd.PersistentFlags().StringVar(&f.dir, "config-dir", "", "directory searched for the config file before ./config")
}

func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "registra",
		Short: "Registra manager API server",
		Long: `registra runs the admin API of the Registra event platform, including
the activity audit log.

  registra manager            # run migrations and start the API server
  registra migrate up         # apply pending MongoDB migrations
  registra migrate version    # print the applied migration version`,
		SilenceUsage: true,
	}

	flags := &configFlags{}
	flags.register(cmd)
	cmd.AddCommand(managerCmd(flags))
	cmd.AddCommand(migrateCmd(flags))
	return cmd
}

// Execute runs the root command. It is called once by main.main().
func Execute() {
	err := rootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
