package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var kitchenCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "kitchen",
	Short: "Run the kitchen board worker",
	Long: `Start the worker that receives pushed order events on /push/orders and
serves the open tickets on /board. Point pubsub.localEndpoint or the Pub/Sub
push subscription at it.`,
	Run: func(*cobra.Command, []string) {
		fx.New(kitchenOptions()...).Run()
	},
}

func init() {
	rootCmd.AddCommand(kitchenCmd)
}

func kitchenOptions() []fx.Option {
	return []fx.Option{
		injectInfra(),
		injectKitchen(),
		fx.Invoke(startServer),
	}
}
