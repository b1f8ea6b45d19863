package cmd

import (
	"github.com/registra/api/manager/app"
	"github.com/spf13/cobra"
)

func managerCmd(flags *configFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "manager",
		Short: "Start the manager API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			restApp, err := app.NewRestApp(flags.name, flags.dir)
			if err != nil {
				return err
			}
			restApp.Run()
			return nil
		},
	}
}
