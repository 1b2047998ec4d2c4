package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/luminalabs/lumina-mcp/pkg/buildinfo"
)

// Execute runs the lumina-mcp CLI under ctx and returns an error if any
// command fails. Cancelling ctx (typically on SIGINT/SIGTERM) shuts the
// serve command down gracefully.
//
// The logger always writes to stderr: the serve command owns stdout for
// the MCP protocol stream, and the debug commands print their own
// styled output.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "lumina-mcp",
		Short:        "MCP tool server for the Lumina Analytics Cloud",
		Long:         `lumina-mcp exposes a Lumina Analytics Cloud tenant to MCP clients: catalog search, workspace and automation listings, data lineage classification, and engine-backed chart rendering.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default lumina-mcp.yaml in the working directory)")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newRenderLineageCmd(&configPath))

	return root.ExecuteContext(ctx)
}
