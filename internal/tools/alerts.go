package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/luminalabs/lumina-mcp/internal/panel"
	"github.com/luminalabs/lumina-mcp/pkg/platform"
)

type alertProvider struct {
	d Deps
}

func (p *alertProvider) Tools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("list-alerts",
			mcp.WithDescription("List data alerts with their enabled state and last trigger time."),
		),
	}
}

func (p *alertProvider) Handlers() map[string]server.ToolHandlerFunc {
	return map[string]server.ToolHandlerFunc{
		"list-alerts": p.list,
	}
}

func (p *alertProvider) list(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	alerts, err := p.d.Platform.ListAlerts(ctx)
	if err != nil {
		return fail(err)
	}

	summary, truncated := countSummary(len(alerts), "alert", platform.CeilingAlerts)
	return p.d.emit(summary, panel.New(panel.TypeItemList, "Alerts", panel.ItemListPayload{
		Kind:      "alert",
		Items:     alerts,
		Count:     len(alerts),
		Truncated: truncated,
	}))
}
