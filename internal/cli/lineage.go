package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luminalabs/lumina-mcp/internal/config"
	"github.com/luminalabs/lumina-mcp/pkg/lineage"
	"github.com/luminalabs/lumina-mcp/pkg/platform"
)

// newRenderLineageCmd creates the render-lineage debug command. It runs
// the same fetch-and-classify path as the get-lineage tool but writes
// the graph to a local SVG instead of a panel, which makes lineage
// issues inspectable without an MCP client.
func newRenderLineageCmd(configPath *string) *cobra.Command {
	var (
		output  string
		dotOnly bool
	)

	cmd := &cobra.Command{
		Use:   "render-lineage <qri>",
		Short: "Render a resource's lineage graph to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRenderLineage(cmd.Context(), *configPath, args[0], output, dotOnly)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "lineage.svg", "output file")
	cmd.Flags().BoolVar(&dotOnly, "dot", false, "write graphviz DOT source instead of SVG")

	return cmd
}

func runRenderLineage(ctx context.Context, configPath, qri, output string, dotOnly bool) error {
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

	logger.Debug("fetching lineage", "qri", qri)
	nodes, edges, err := client.GetLineage(ctx, qri)
	if err != nil {
		printError("lineage fetch failed: %v", err)
		return err
	}

	c := lineage.Classify(nodes, edges)
	if c.Standalone {
		printWarning("%s is standalone; rendering a single node", c.Single.DisplayLabel())
	} else {
		printInfo("%d nodes, %d edges", len(nodes), len(edges))
		printDetail("sources: %s", tierNames(c.Sources))
		printDetail("processors: %s", tierNames(c.Processors))
		printDetail("outputs: %s", tierNames(c.Outputs))
	}

	dot := lineage.ToDOT(nodes, edges)
	data := []byte(dot)
	if !dotOnly {
		data, err = lineage.RenderSVG(dot)
		if err != nil {
			return fmt.Errorf("render %s: %w", qri, err)
		}
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}

	printSuccess("rendered lineage for %s", qri)
	printFile(output)
	return nil
}

func tierNames(nodes []lineage.Node) string {
	if len(nodes) == 0 {
		return "(none)"
	}
	names := make([]string, len(nodes))
	for i := range nodes {
		names[i] = nodes[i].DisplayLabel()
	}
	return strings.Join(names, ", ")
}
