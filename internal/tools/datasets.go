package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/luminalabs/lumina-mcp/internal/panel"
	"github.com/luminalabs/lumina-mcp/pkg/platform"
)

type datasetProvider struct {
	d Deps
}

func (p *datasetProvider) Tools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("list-datasets",
			mcp.WithDescription("List catalogued data assets, optionally scoped to one space. Each dataset carries the qualified resource identifier used by get-lineage."),
			mcp.WithString("space_id",
				mcp.Description("Restrict the listing to this space."),
			),
		),
	}
}

func (p *datasetProvider) Handlers() map[string]server.ToolHandlerFunc {
	return map[string]server.ToolHandlerFunc{
		"list-datasets": p.list,
	}
}

func (p *datasetProvider) list(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spaceID := req.GetString("space_id", "")

	datasets, err := p.d.Platform.ListDatasets(ctx, spaceID)
	if err != nil {
		return fail(err)
	}

	summary, truncated := countSummary(len(datasets), "dataset", platform.CeilingDatasets)
	if spaceID != "" {
		summary += fmt.Sprintf(" in space %s", spaceID)
	}
	return p.d.emit(summary, panel.New(panel.TypeItemList, "Datasets", panel.ItemListPayload{
		Kind:      "dataset",
		Items:     datasets,
		Count:     len(datasets),
		Truncated: truncated,
	}))
}
