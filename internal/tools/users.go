package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/luminalabs/lumina-mcp/internal/panel"
	"github.com/luminalabs/lumina-mcp/pkg/platform"
)

type userProvider struct {
	d Deps
}

func (p *userProvider) Tools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("list-users",
			mcp.WithDescription("List the tenant's members."),
		),
	}
}

func (p *userProvider) Handlers() map[string]server.ToolHandlerFunc {
	return map[string]server.ToolHandlerFunc{
		"list-users": p.list,
	}
}

func (p *userProvider) list(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	users, err := p.d.Platform.ListUsers(ctx)
	if err != nil {
		return fail(err)
	}

	summary, truncated := countSummary(len(users), "user", platform.CeilingUsers)
	return p.d.emit(summary, panel.New(panel.TypeItemList, "Users", panel.ItemListPayload{
		Kind:      "user",
		Items:     users,
		Count:     len(users),
		Truncated: truncated,
	}))
}
