package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/luminalabs/lumina-mcp/internal/panel"
	"github.com/luminalabs/lumina-mcp/pkg/lineage"
)

// lineageProvider fetches a resource's lineage graph and classifies it
// into display tiers.
type lineageProvider struct {
	d Deps
}

func (p *lineageProvider) Tools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("get-lineage",
			mcp.WithDescription("Fetch the data lineage graph of a resource and classify its nodes into sources, processors and outputs."),
			mcp.WithString("qri",
				mcp.Required(),
				mcp.Description("Qualified resource identifier, as reported by list-datasets."),
			),
		),
	}
}

func (p *lineageProvider) Handlers() map[string]server.ToolHandlerFunc {
	return map[string]server.ToolHandlerFunc{
		"get-lineage": p.get,
	}
}

func (p *lineageProvider) get(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	qri, err := req.RequireString("qri")
	if err != nil {
		return failf("qri is required")
	}

	nodes, edges, err := p.d.Platform.GetLineage(ctx, qri)
	if err != nil {
		return fail(err)
	}

	c := lineage.Classify(nodes, edges)

	var summary string
	if c.Standalone {
		summary = fmt.Sprintf("%s is standalone: no upstream or downstream dependencies", c.Single.DisplayLabel())
	} else {
		summary = fmt.Sprintf("Lineage for %s: %d sources, %d processors, %d outputs (%d nodes, %d edges)",
			qri, len(c.Sources), len(c.Processors), len(c.Outputs), len(nodes), len(edges))
	}
	return p.d.emit(summary, panel.New(panel.TypeLineage, "Lineage for "+qri, panel.LineagePayload{
		Classification: c,
		NodeCount:      len(nodes),
		EdgeCount:      len(edges),
	}))
}
