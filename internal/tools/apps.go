package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/luminalabs/lumina-mcp/internal/panel"
	"github.com/luminalabs/lumina-mcp/pkg/platform"
)

// appProvider exposes app detail and reload history.
type appProvider struct {
	d Deps
}

func (p *appProvider) Tools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("get-app",
			mcp.WithDescription("Fetch one analytics app with its owner and space resolved to display names."),
			mcp.WithString("app_id",
				mcp.Required(),
				mcp.Description("The app identifier."),
			),
		),
		mcp.NewTool("list-reloads",
			mcp.WithDescription("List the reload history of one app, most recent first."),
			mcp.WithString("app_id",
				mcp.Required(),
				mcp.Description("The app identifier."),
			),
		),
	}
}

func (p *appProvider) Handlers() map[string]server.ToolHandlerFunc {
	return map[string]server.ToolHandlerFunc{
		"get-app":      p.get,
		"list-reloads": p.reloads,
	}
}

func (p *appProvider) get(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	appID, err := req.RequireString("app_id")
	if err != nil {
		return failf("app_id is required")
	}

	detail, err := p.d.Platform.GetAppDetail(ctx, appID)
	if err != nil {
		return fail(err)
	}

	summary := fmt.Sprintf("App %q", detail.Name)
	if detail.SpaceName != "" {
		summary += fmt.Sprintf(" in space %q", detail.SpaceName)
	}
	if detail.OwnerName != "" {
		summary += fmt.Sprintf(", owned by %s", detail.OwnerName)
	}
	return p.d.emit(summary, panel.New(panel.TypeDetail, detail.Name, panel.DetailPayload{
		Kind:     "app",
		Resource: detail,
	}))
}

func (p *appProvider) reloads(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	appID, err := req.RequireString("app_id")
	if err != nil {
		return failf("app_id is required")
	}

	reloads, err := p.d.Platform.ListReloads(ctx, appID)
	if err != nil {
		return fail(err)
	}

	summary, truncated := countSummary(len(reloads), "reload", platform.CeilingRuns)
	return p.d.emit(summary, panel.New(panel.TypeItemList, "Reloads for "+appID, panel.ItemListPayload{
		Kind:      "reload",
		Items:     reloads,
		Count:     len(reloads),
		Truncated: truncated,
	}))
}
