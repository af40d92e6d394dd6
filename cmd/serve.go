package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aman-choudhary9785/iscode/internal/httpapi"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the mix design engine as a JSON API",
	Long: `Start an HTTP server exposing the mix design engine.

Endpoints (under /api/v1):
  POST /mix/design  - Full mix design for a JSON input
  POST /mix/check   - Validation result and warnings
  POST /mix/report  - Mix design report as a PDF attachment
  GET  /materials   - Precursor catalog and typical input ranges
  GET  /version     - Build information

Requests are rate limited per client IP. The server shuts down
gracefully on SIGINT and SIGTERM.

Examples:
  iscode serve
  iscode serve --addr :9000`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := httpapi.NewServer(serveAddr).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
