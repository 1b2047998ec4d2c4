package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminalabs/lumina-mcp/internal/panel"
	"github.com/luminalabs/lumina-mcp/pkg/engine"
	luminaerrors "github.com/luminalabs/lumina-mcp/pkg/errors"
	"github.com/luminalabs/lumina-mcp/pkg/hypercube"
	"github.com/luminalabs/lumina-mcp/pkg/lineage"
	"github.com/luminalabs/lumina-mcp/pkg/platform"
)

// stubPlatform scripts the platform boundary per test.
type stubPlatform struct {
	items       []platform.Item
	spaces      []platform.Space
	datasets    []platform.Dataset
	automations []platform.Automation
	runs        []platform.AutomationRun
	alerts      []platform.Alert
	reloads     []platform.Reload
	users       []platform.User
	assistants  []platform.Assistant
	experiments []platform.Experiment
	appDetail   *platform.AppDetail
	nodes       []lineage.Node
	edges       []lineage.Edge
	err         error
}

func (s *stubPlatform) SearchItems(context.Context, string, string) ([]platform.Item, error) {
	return s.items, s.err
}
func (s *stubPlatform) ListSpaces(context.Context) ([]platform.Space, error) {
	return s.spaces, s.err
}
func (s *stubPlatform) ListDatasets(context.Context, string) ([]platform.Dataset, error) {
	return s.datasets, s.err
}
func (s *stubPlatform) ListAutomations(context.Context) ([]platform.Automation, error) {
	return s.automations, s.err
}
func (s *stubPlatform) ListAutomationRuns(context.Context, string) ([]platform.AutomationRun, error) {
	return s.runs, s.err
}
func (s *stubPlatform) ListAlerts(context.Context) ([]platform.Alert, error) {
	return s.alerts, s.err
}
func (s *stubPlatform) ListReloads(context.Context, string) ([]platform.Reload, error) {
	return s.reloads, s.err
}
func (s *stubPlatform) ListUsers(context.Context) ([]platform.User, error) {
	return s.users, s.err
}
func (s *stubPlatform) ListAssistants(context.Context) ([]platform.Assistant, error) {
	return s.assistants, s.err
}
func (s *stubPlatform) ListExperiments(context.Context) ([]platform.Experiment, error) {
	return s.experiments, s.err
}
func (s *stubPlatform) GetAppDetail(context.Context, string) (*platform.AppDetail, error) {
	return s.appDetail, s.err
}
func (s *stubPlatform) GetLineage(context.Context, string) ([]lineage.Node, []lineage.Edge, error) {
	return s.nodes, s.edges, s.err
}

// stubQuerier scripts the engine boundary.
type stubQuerier struct {
	matrix hypercube.Matrix
	err    error
	spec   engine.CubeSpec
}

func (s *stubQuerier) FetchHypercube(_ context.Context, _ string, spec engine.CubeSpec) (hypercube.Matrix, error) {
	s.spec = spec
	return s.matrix, s.err
}

func newDeps(p Platform, q engine.Querier) Deps {
	return Deps{Platform: p, Querier: q, Panels: panel.NewStore(0)}
}

func callTool(t *testing.T, r *Registry, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	h, ok := r.Handler(name)
	require.True(t, ok, "tool %s not registered", name)

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func decodeResponse(t *testing.T, res *mcp.CallToolResult) response {
	t.Helper()
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var out response
	require.NoError(t, json.Unmarshal([]byte(text.Text), &out))
	return out
}

func TestRegistryCoversAllTools(t *testing.T) {
	r := NewRegistry(newDeps(&stubPlatform{}, &stubQuerier{}))

	want := []string{
		"search-items", "list-spaces", "list-datasets",
		"get-app", "list-reloads",
		"list-automations", "list-automation-runs", "list-alerts",
		"list-users", "list-assistants", "list-experiments",
		"get-lineage", "render-chart",
	}
	assert.ElementsMatch(t, want, r.Names())
	assert.Len(t, r.Tools(), len(want), "every handler has a tool definition")
}

func TestListSpaces(t *testing.T) {
	p := &stubPlatform{spaces: []platform.Space{
		{ID: "s1", Name: "Sales", Type: "shared"},
		{ID: "s2", Name: "Finance", Type: "managed"},
	}}
	r := NewRegistry(newDeps(p, &stubQuerier{}))

	res := callTool(t, r, "list-spaces", nil)
	out := decodeResponse(t, res)

	assert.Equal(t, "Found 2 spaces", out.Summary)
	assert.Equal(t, panel.TypeItemList, out.Panel.Type)
}

func TestListRunsHitsCeiling(t *testing.T) {
	runs := make([]platform.AutomationRun, platform.CeilingRuns)
	for i := range runs {
		runs[i] = platform.AutomationRun{ID: "r", Status: "finished"}
	}
	p := &stubPlatform{runs: runs}
	r := NewRegistry(newDeps(p, &stubQuerier{}))

	res := callTool(t, r, "list-automation-runs", map[string]any{"automation_id": "a1"})
	out := decodeResponse(t, res)

	assert.Contains(t, out.Summary, "stopped at the 500-item limit")
}

func TestGetAppMissingArgument(t *testing.T) {
	r := NewRegistry(newDeps(&stubPlatform{}, &stubQuerier{}))

	res := callTool(t, r, "get-app", nil)
	assert.True(t, res.IsError)
}

func TestGetAppPlatformError(t *testing.T) {
	p := &stubPlatform{err: luminaerrors.New(luminaerrors.ErrCodeAppNotFound, "app a1")}
	r := NewRegistry(newDeps(p, &stubQuerier{}))

	res := callTool(t, r, "get-app", map[string]any{"app_id": "a1"})
	assert.True(t, res.IsError, "platform errors surface as tool errors, not protocol failures")
}

func TestGetLineageStandalone(t *testing.T) {
	p := &stubPlatform{nodes: []lineage.Node{{ID: "qri:db1", Label: "Orders"}}}
	r := NewRegistry(newDeps(p, &stubQuerier{}))

	res := callTool(t, r, "get-lineage", map[string]any{"qri": "qri:db1"})
	out := decodeResponse(t, res)

	assert.Contains(t, out.Summary, "Orders is standalone")
	assert.Equal(t, panel.TypeLineage, out.Panel.Type)
}

func TestGetLineageTiers(t *testing.T) {
	p := &stubPlatform{
		nodes: []lineage.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		edges: []lineage.Edge{{Source: "a", Target: "b"}, {Source: "b", Target: "c"}},
	}
	r := NewRegistry(newDeps(p, &stubQuerier{}))

	res := callTool(t, r, "get-lineage", map[string]any{"qri": "qri:x"})
	out := decodeResponse(t, res)

	assert.Contains(t, out.Summary, "1 sources, 1 processors, 1 outputs")
}

func TestRenderChart(t *testing.T) {
	q := &stubQuerier{matrix: hypercube.Matrix{
		{hypercube.TextCell("Jan"), hypercube.NumCell(10, "10")},
		{hypercube.TextCell("Feb"), hypercube.NumCell(20, "20")},
	}}
	r := NewRegistry(newDeps(&stubPlatform{}, q))

	res := callTool(t, r, "render-chart", map[string]any{
		"app_id":     "a1",
		"dimension":  "Month",
		"measure":    "Sum(Sales)",
		"chart_type": "line chart",
	})
	out := decodeResponse(t, res)

	assert.Contains(t, out.Summary, "line chart of Sum(Sales) by Month")
	assert.Equal(t, panel.TypeChart, out.Panel.Type)
	assert.Equal(t, []string{"Month"}, q.spec.Dimensions)
	assert.Equal(t, []string{"Sum(Sales)"}, q.spec.Measures)
}

func TestRenderChartSecondMeasure(t *testing.T) {
	q := &stubQuerier{matrix: hypercube.Matrix{
		{hypercube.TextCell("x"), hypercube.NumCell(1, "1"), hypercube.NumCell(2, "2")},
	}}
	r := NewRegistry(newDeps(&stubPlatform{}, q))

	res := callTool(t, r, "render-chart", map[string]any{
		"app_id":         "a1",
		"dimension":      "Product",
		"measure":        "Sum(Sales)",
		"second_measure": "Avg(Margin)",
		"chart_type":     "scatter",
	})
	out := decodeResponse(t, res)

	assert.Equal(t, []string{"Sum(Sales)", "Avg(Margin)"}, q.spec.Measures)
	assert.Contains(t, out.Summary, "scatter chart")
}

func TestRenderChartEngineFailureFallback(t *testing.T) {
	q := &stubQuerier{err: luminaerrors.New(luminaerrors.ErrCodeEngineQuery, "cube evaluation failed")}
	r := NewRegistry(newDeps(&stubPlatform{}, q))

	res := callTool(t, r, "render-chart", map[string]any{
		"app_id":    "a1",
		"dimension": "Month",
		"measure":   "Sum(Sales)",
	})
	out := decodeResponse(t, res)

	require.Equal(t, panel.TypeChart, out.Panel.Type, "failure still yields a chart panel")
	assert.Contains(t, out.Summary, "Chart query failed")

	raw, err := json.Marshal(out.Panel.Payload)
	require.NoError(t, err)
	var payload panel.ChartPayload
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.NotEmpty(t, payload.ErrorMessage)
	assert.Zero(t, payload.Series.Len())
}

func TestPanelsAreStored(t *testing.T) {
	d := newDeps(&stubPlatform{spaces: []platform.Space{{ID: "s1", Name: "Sales"}}}, &stubQuerier{})
	r := NewRegistry(d)

	callTool(t, r, "list-spaces", nil)
	assert.Len(t, d.Panels.List(), 1, "every tool call leaves one panel behind")
}
