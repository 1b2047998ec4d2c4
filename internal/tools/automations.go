package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/luminalabs/lumina-mcp/internal/panel"
	"github.com/luminalabs/lumina-mcp/pkg/platform"
)

type automationProvider struct {
	d Deps
}

func (p *automationProvider) Tools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("list-automations",
			mcp.WithDescription("List every automation workflow with its state and run mode."),
		),
		mcp.NewTool("list-automation-runs",
			mcp.WithDescription("List the execution history of one automation, most recent first."),
			mcp.WithString("automation_id",
				mcp.Required(),
				mcp.Description("The automation identifier."),
			),
		),
	}
}

func (p *automationProvider) Handlers() map[string]server.ToolHandlerFunc {
	return map[string]server.ToolHandlerFunc{
		"list-automations":     p.list,
		"list-automation-runs": p.runs,
	}
}

func (p *automationProvider) list(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	automations, err := p.d.Platform.ListAutomations(ctx)
	if err != nil {
		return fail(err)
	}

	summary, truncated := countSummary(len(automations), "automation", platform.CeilingAutomations)
	return p.d.emit(summary, panel.New(panel.TypeItemList, "Automations", panel.ItemListPayload{
		Kind:      "automation",
		Items:     automations,
		Count:     len(automations),
		Truncated: truncated,
	}))
}

func (p *automationProvider) runs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	automationID, err := req.RequireString("automation_id")
	if err != nil {
		return failf("automation_id is required")
	}

	runs, err := p.d.Platform.ListAutomationRuns(ctx, automationID)
	if err != nil {
		return fail(err)
	}

	summary, truncated := countSummary(len(runs), "run", platform.CeilingRuns)
	return p.d.emit(summary, panel.New(panel.TypeItemList, "Runs for "+automationID, panel.ItemListPayload{
		Kind:      "automation-run",
		Items:     runs,
		Count:     len(runs),
		Truncated: truncated,
	}))
}
