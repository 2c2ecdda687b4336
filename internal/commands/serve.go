package commands

import (
	"github.com/spf13/cobra"

	"github.com/revcsv-dev/revcsv/internal/logger"
	"github.com/revcsv-dev/revcsv/internal/server"
)

func newServeCommand() *cobra.Command {
	var configPath string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadSettings(configPath)
			if err != nil {
				return err
			}

			log := logger.New()
			app := server.NewApp(set, log)
			log.Info().Str("addr", addr).Msg("listening")
			return app.Listen(addr)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", configFileName, "settings file")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
