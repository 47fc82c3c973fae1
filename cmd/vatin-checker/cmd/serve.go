package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/vatin-checker/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
	noMetrics    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for checking VATINs.

The API provides endpoints for:
  - POST /api/v1/vatin/validate         - Validate one VATIN
  - POST /api/v1/vatin/validate/batch   - Validate many VATINs
  - GET  /api/v1/countries              - Countries with a checksum rule
  - GET  /api/v1/structures             - All VATIN structures
  - GET  /api/v1/structures/:prefix     - Structure of a country prefix
  - POST /api/v1/structures/match       - Structure matching a VATIN
  - GET  /api/v1/rates                  - VAT rates (?country=XX)
  - GET  /api/v1/rates/:id              - One VAT rate
  - POST /api/v1/rates/:id/calculate    - VAT of a net amount
  - GET  /metrics                       - Prometheus metrics
  - GET  /health                        - Health check

Flags override VATIN_* environment variables.

Examples:
  # Start server on default port
  vatin-checker serve

  # Start on custom port in debug mode
  vatin-checker serve --address :9090 --debug`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", "", "Server listen address (env: VATIN_ADDRESS)")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode (env: VATIN_DEBUG)")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 0, "HTTP read timeout (env: VATIN_READ_TIMEOUT)")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 0, "HTTP write timeout (env: VATIN_WRITE_TIMEOUT)")
	serveCmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "Disable the /metrics endpoint")
}

func runServe(cmd *cobra.Command, args []string) error {
	config := &server.Config{
		Address:         cfg.Address,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Debug:           cfg.Debug,
		MetricsEnabled:  cfg.MetricsEnabled && !noMetrics,
		MaxBatchSize:    cfg.MaxBatchSize,
		DisplayLanguage: cfg.Language(),
		Logger:          log,
	}
	if serverAddr != "" {
		config.Address = serverAddr
	}
	if serverDebug {
		config.Debug = true
	}
	if readTimeout > 0 {
		config.ReadTimeout = readTimeout
	}
	if writeTimeout > 0 {
		config.WriteTimeout = writeTimeout
	}

	srv := server.NewServer(config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Starting server on %s\n", config.Address)
	if config.MetricsEnabled {
		fmt.Fprintln(cmd.OutOrStdout(), "Metrics enabled at /metrics")
	}

	if err := srv.Run(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Server stopped")
	return nil
}
