package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adaptivegrid/internal/server"
	"github.com/matzehuels/adaptivegrid/pkg/observability"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		maxBody int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout API over HTTP",
		Long: `Serve the layout API over HTTP.

Endpoints:
  POST /v1/layout              scene JSON in, layout JSON out
  POST /v1/render?format=svg   scene JSON in, rendered artifact out
  GET  /healthz                liveness

Query parameters (width, strategy, columns, spacing, anchor, unbounded)
override the scene's [layout] section.

Traces are exported over OTLP/HTTP when OTEL_EXPORTER_OTLP_ENDPOINT is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runServe(cmd.Context(), addr, maxBody)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr(), "listen address (env "+addrEnv+")")
	cmd.Flags().Int64Var(&maxBody, "max-body", server.DefaultMaxBodyBytes, "maximum scene size in bytes")

	return cmd
}

func defaultAddr() string {
	if v := os.Getenv(addrEnv); v != "" {
		return v
	}
	return server.DefaultAddr
}

// runServe starts tracing and the server, and blocks until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, addr string, maxBody int64) error {
	shutdown, err := observability.SetupTracing(ctx, appName)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			c.Logger.Warn("flush traces", "err", err)
		}
	}()

	srv := server.New(server.Config{
		Addr:         addr,
		Logger:       c.Logger,
		Runner:       c.newRunner(),
		MaxBodyBytes: maxBody,
	})

	tracing := "off"
	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
		tracing = endpoint
	}
	printInfo("Serving the layout API")
	printKeyValue("address", srv.Addr())
	printKeyValue("tracing", tracing)
	printNewline()

	return srv.ListenAndServe(ctx)
}
