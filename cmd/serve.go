package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/scalefit/internal/adapter"
)

var serveAddrFlag string
var serveOriginsFlag []string

// serveCmd represents the serve command.
var serveCmd = newServeCmd()

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve key queries over HTTP",
		Long: `Start an HTTP server answering GET /v1/keys?notes=C,E,G and POST /v1/keys
with the compatible keys as JSON. GET /healthz reports liveness.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := adapter.NewHTTPServer(keyFinder, viper.GetStringSlice(serveOriginsConfigKey))

			return server.ListenAndServe(ctx, viper.GetString(serveAddrConfigKey))
		},
	}

	cmd.Flags().StringVar(&serveAddrFlag, serveAddrFlagName, viper.GetString(serveAddrConfigKey), "listen address")
	bindFlagToConfig(cmd.Flags().Lookup(serveAddrFlagName), serveAddrConfigKey)

	cmd.Flags().StringSliceVar(&serveOriginsFlag, serveOriginFlagName, viper.GetStringSlice(serveOriginsConfigKey), "allowed CORS origin (repeatable, default any)")
	bindFlagToConfig(cmd.Flags().Lookup(serveOriginFlagName), serveOriginsConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
