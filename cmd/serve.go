package cmd

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/seeksim/seeksim/internal/server"
)

var addr string // HTTP listen address

// serveCmd starts the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling engine over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		logger := logrus.StandardLogger()
		srv := server.New(logger)

		logger.Infof("listening on %s", addr)
		if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
			logger.Fatalf("server stopped: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address")
	serveCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
