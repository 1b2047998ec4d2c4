package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/luminalabs/lumina-mcp/internal/config"
	"github.com/luminalabs/lumina-mcp/internal/panel"
	"github.com/luminalabs/lumina-mcp/internal/server"
	"github.com/luminalabs/lumina-mcp/internal/tools"
	"github.com/luminalabs/lumina-mcp/pkg/engine"
	"github.com/luminalabs/lumina-mcp/pkg/platform"
)

// newServeCmd creates the serve command, the server's main mode.
func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over stdio",
		Long: `Serve the MCP protocol on stdin/stdout.

Configuration comes from lumina-mcp.yaml and LUMINA_* environment
variables; at minimum the tenant URL and API key must be set. When a
panel address is configured, a small HTTP host is started alongside the
protocol stream so a local visual surface can poll recent panels.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

func runServe(ctx context.Context, configPath string) error {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	client, err := platform.NewClient(platform.Config{
		TenantURL: cfg.Tenant.URL,
		APIKey:    cfg.Tenant.APIKey,
		PageSize:  cfg.Tenant.PageSize,
	})
	if err != nil {
		return err
	}

	deps := tools.Deps{
		Platform: client,
		Querier:  engine.NewWSQuerier(cfg.EngineURL(), cfg.Tenant.APIKey),
		Panels:   panel.NewStore(cfg.Panel.Keep),
	}
	reg := tools.NewRegistry(deps)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.Panel.Addr != "" {
		host := panel.NewHost(deps.Panels)
		go func() {
			if err := host.Serve(ctx, cfg.Panel.Addr); err != nil {
				logger.Error("panel host stopped", "err", err)
			}
		}()
		logger.Info("panel host listening", "addr", cfg.Panel.Addr)
	}

	logger.Info("serving MCP over stdio",
		"tenant", cfg.Tenant.URL,
		"tools", len(reg.Tools()))
	return server.ServeStdio(ctx, server.New(reg))
}
