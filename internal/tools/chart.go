package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/luminalabs/lumina-mcp/internal/panel"
	"github.com/luminalabs/lumina-mcp/pkg/engine"
	luminaerrors "github.com/luminalabs/lumina-mcp/pkg/errors"
	"github.com/luminalabs/lumina-mcp/pkg/hypercube"
)

// chartProvider evaluates a hypercube against the analytics engine and
// transforms the result into a render-ready chart panel.
type chartProvider struct {
	d Deps
}

func (p *chartProvider) Tools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("render-chart",
			mcp.WithDescription("Evaluate a dimension/measure query against an app and return a chart panel. Large results are sampled to stay renderable."),
			mcp.WithString("app_id",
				mcp.Required(),
				mcp.Description("The app to query."),
			),
			mcp.WithString("dimension",
				mcp.Required(),
				mcp.Description("Field name to group by."),
			),
			mcp.WithString("measure",
				mcp.Required(),
				mcp.Description("Measure expression, e.g. \"Sum(Sales)\"."),
			),
			mcp.WithString("second_measure",
				mcp.Description("Optional second measure; required for scatter charts."),
			),
			mcp.WithString("chart_type",
				mcp.Description("Free-form chart kind hint (bar, line, scatter, histogram, trend, ...). Defaults to bar."),
			),
			mcp.WithNumber("max_rows",
				mcp.Description("Row cap for the engine fetch. Clamped to the engine maximum."),
			),
		),
	}
}

func (p *chartProvider) Handlers() map[string]server.ToolHandlerFunc {
	return map[string]server.ToolHandlerFunc{
		"render-chart": p.render,
	}
}

func (p *chartProvider) render(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	appID, err := req.RequireString("app_id")
	if err != nil {
		return failf("app_id is required")
	}
	dimension, err := req.RequireString("dimension")
	if err != nil {
		return failf("dimension is required")
	}
	measure, err := req.RequireString("measure")
	if err != nil {
		return failf("measure is required")
	}
	hint := req.GetString("chart_type", "")

	spec := engine.CubeSpec{
		Dimensions: []string{dimension},
		Measures:   []string{measure},
		MaxRows:    req.GetInt("max_rows", 0),
	}
	if second := req.GetString("second_measure", ""); second != "" {
		spec.Measures = append(spec.Measures, second)
	}

	title := fmt.Sprintf("%s by %s", measure, dimension)

	matrix, err := p.d.Querier.FetchHypercube(ctx, appID, spec)
	if err != nil {
		// Engine failures still produce a chart panel so the surface
		// shows the problem in place instead of a dropped response.
		series, geo := hypercube.Transform(nil, hint)
		return p.d.emit("Chart query failed: "+luminaerrors.UserMessage(err),
			panel.New(panel.TypeChart, title, panel.ChartPayload{
				Geometry:     geo,
				Series:       series,
				ErrorMessage: luminaerrors.UserMessage(err),
			}))
	}

	series, geo := hypercube.Transform(matrix, hint)
	summary := fmt.Sprintf("Rendered a %s chart of %s with %d points", geo, title, series.Len())
	if series.Len() < len(matrix) {
		summary += fmt.Sprintf(" (sampled from %d rows)", len(matrix))
	}
	return p.d.emit(summary, panel.New(panel.TypeChart, title, panel.ChartPayload{
		Geometry: geo,
		Series:   series,
	}))
}
