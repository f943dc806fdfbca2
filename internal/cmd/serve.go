package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var withKitchen bool //nolint:gochecknoglobals

var serveCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "serve",
	Short: "Run the point-of-sale HTTP API",
	Long: `Start the HTTP API on http.port. With --kitchen the kitchen board worker
runs in the same process on kitchen.port.`,
	Run: func(*cobra.Command, []string) {
		fx.New(serveOptions(withKitchen)...).Run()
	},
}

func init() {
	serveCmd.Flags().BoolVar(&withKitchen, "kitchen", false, "also run the kitchen board worker")
	rootCmd.AddCommand(serveCmd)
}

func serveOptions(kitchen bool) []fx.Option {
	opts := []fx.Option{
		injectInfra(),
		injectDatabase(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
	}
	if kitchen {
		opts = append(opts, injectKitchen())
	}

	return append(opts, fx.Invoke(startServer))
}
