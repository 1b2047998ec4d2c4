package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/luminalabs/lumina-mcp/internal/panel"
	"github.com/luminalabs/lumina-mcp/pkg/platform"
)

type spaceProvider struct {
	d Deps
}

func (p *spaceProvider) Tools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("list-spaces",
			mcp.WithDescription("List every workspace (shared, managed and data spaces) visible to the API key."),
		),
	}
}

func (p *spaceProvider) Handlers() map[string]server.ToolHandlerFunc {
	return map[string]server.ToolHandlerFunc{
		"list-spaces": p.list,
	}
}

func (p *spaceProvider) list(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spaces, err := p.d.Platform.ListSpaces(ctx)
	if err != nil {
		return fail(err)
	}

	summary, truncated := countSummary(len(spaces), "space", platform.CeilingSpaces)
	return p.d.emit(summary, panel.New(panel.TypeItemList, "Spaces", panel.ItemListPayload{
		Kind:      "space",
		Items:     spaces,
		Count:     len(spaces),
		Truncated: truncated,
	}))
}
