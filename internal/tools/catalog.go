package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/luminalabs/lumina-mcp/internal/panel"
	"github.com/luminalabs/lumina-mcp/pkg/platform"
)

// catalogProvider exposes the tenant's cross-resource catalog.
type catalogProvider struct {
	d Deps
}

func (p *catalogProvider) Tools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("search-items",
			mcp.WithDescription("Search the tenant catalog across apps, datasets and automations. Walks every result page up to the aggregation limit."),
			mcp.WithString("name",
				mcp.Description("Case-insensitive name filter. Empty matches everything."),
			),
			mcp.WithString("resource_type",
				mcp.Description("Restrict to one resource type, e.g. \"app\", \"dataset\", \"automation\"."),
			),
		),
	}
}

func (p *catalogProvider) Handlers() map[string]server.ToolHandlerFunc {
	return map[string]server.ToolHandlerFunc{
		"search-items": p.search,
	}
}

func (p *catalogProvider) search(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	resourceType := req.GetString("resource_type", "")

	items, err := p.d.Platform.SearchItems(ctx, name, resourceType)
	if err != nil {
		return fail(err)
	}

	summary, truncated := countSummary(len(items), "catalog item", platform.CeilingSearch)
	if name != "" {
		summary += fmt.Sprintf(" matching %q", name)
	}
	return p.d.emit(summary, panel.New(panel.TypeItemList, "Catalog search", panel.ItemListPayload{
		Kind:      "item",
		Items:     items,
		Count:     len(items),
		Truncated: truncated,
	}))
}
