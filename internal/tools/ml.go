package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/luminalabs/lumina-mcp/internal/panel"
	"github.com/luminalabs/lumina-mcp/pkg/platform"
)

// mlProvider exposes the tenant's AI surface: conversational assistants
// and AutoML experiments.
type mlProvider struct {
	d Deps
}

func (p *mlProvider) Tools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("list-assistants",
			mcp.WithDescription("List the conversational AI assistants configured on the tenant."),
		),
		mcp.NewTool("list-experiments",
			mcp.WithDescription("List AutoML experiments and their model counts."),
		),
	}
}

func (p *mlProvider) Handlers() map[string]server.ToolHandlerFunc {
	return map[string]server.ToolHandlerFunc{
		"list-assistants":  p.assistants,
		"list-experiments": p.experiments,
	}
}

func (p *mlProvider) assistants(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	assistants, err := p.d.Platform.ListAssistants(ctx)
	if err != nil {
		return fail(err)
	}

	summary, truncated := countSummary(len(assistants), "assistant", platform.CeilingMLAssets)
	return p.d.emit(summary, panel.New(panel.TypeItemList, "Assistants", panel.ItemListPayload{
		Kind:      "assistant",
		Items:     assistants,
		Count:     len(assistants),
		Truncated: truncated,
	}))
}

func (p *mlProvider) experiments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	experiments, err := p.d.Platform.ListExperiments(ctx)
	if err != nil {
		return fail(err)
	}

	summary, truncated := countSummary(len(experiments), "experiment", platform.CeilingMLAssets)
	return p.d.emit(summary, panel.New(panel.TypeItemList, "Experiments", panel.ItemListPayload{
		Kind:      "experiment",
		Items:     experiments,
		Count:     len(experiments),
		Truncated: truncated,
	}))
}
