// Package tools defines the MCP tool surface of the server.
//
// Each resource family contributes its tools through a small provider; a
// Registry collects them so the server wires every tool the same way.
// Handlers stay thin: they parse arguments, call the platform or engine
// boundary, and wrap the result into a summary plus a display panel.
// All transformation logic (pagination ceilings, lineage tiers, chart
// series) lives in the pkg packages and is merely invoked here.
package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/luminalabs/lumina-mcp/internal/panel"
	"github.com/luminalabs/lumina-mcp/pkg/engine"
	"github.com/luminalabs/lumina-mcp/pkg/lineage"
	"github.com/luminalabs/lumina-mcp/pkg/observability"
	"github.com/luminalabs/lumina-mcp/pkg/platform"
)

// Platform is the slice of the tenant REST client the tools consume.
// *platform.Client satisfies it; tests substitute scripted stubs.
type Platform interface {
	SearchItems(ctx context.Context, name, resourceType string) ([]platform.Item, error)
	ListSpaces(ctx context.Context) ([]platform.Space, error)
	ListDatasets(ctx context.Context, spaceID string) ([]platform.Dataset, error)
	ListAutomations(ctx context.Context) ([]platform.Automation, error)
	ListAutomationRuns(ctx context.Context, automationID string) ([]platform.AutomationRun, error)
	ListAlerts(ctx context.Context) ([]platform.Alert, error)
	ListReloads(ctx context.Context, appID string) ([]platform.Reload, error)
	ListUsers(ctx context.Context) ([]platform.User, error)
	ListAssistants(ctx context.Context) ([]platform.Assistant, error)
	ListExperiments(ctx context.Context) ([]platform.Experiment, error)
	GetAppDetail(ctx context.Context, id string) (*platform.AppDetail, error)
	GetLineage(ctx context.Context, qri string) ([]lineage.Node, []lineage.Edge, error)
}

// Deps bundles the collaborators every provider shares.
type Deps struct {
	Platform Platform
	Querier  engine.Querier
	Panels   *panel.Store
}

// provider is implemented by each resource family.
type provider interface {
	Tools() []mcp.Tool
	Handlers() map[string]server.ToolHandlerFunc
}

// Registry holds every tool and its handler, keyed by tool name.
type Registry struct {
	tools    []mcp.Tool
	handlers map[string]server.ToolHandlerFunc
}

// NewRegistry assembles all providers against the shared dependencies.
func NewRegistry(d Deps) *Registry {
	r := &Registry{handlers: make(map[string]server.ToolHandlerFunc)}

	providers := []provider{
		// Catalog and workspace structure.
		&catalogProvider{d},
		&spaceProvider{d},
		&datasetProvider{d},

		// Apps and their execution history.
		&appProvider{d},

		// Automations and alerting.
		&automationProvider{d},
		&alertProvider{d},

		// Tenant directory.
		&userProvider{d},

		// ML surface.
		&mlProvider{d},

		// Graph and visualization.
		&lineageProvider{d},
		&chartProvider{d},
	}
	for _, p := range providers {
		r.tools = append(r.tools, p.Tools()...)
		for name, h := range p.Handlers() {
			r.handlers[name] = instrumented(name, h)
		}
	}
	return r
}

// instrumented wraps a handler with tool-call observability hooks.
func instrumented(name string, h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		observability.Tool().OnCallStart(ctx, name)
		start := time.Now()
		res, err := h(ctx, req)
		observability.Tool().OnCallComplete(ctx, name, time.Since(start), err != nil || (res != nil && res.IsError))
		return res, err
	}
}

// Tools returns every registered tool definition.
func (r *Registry) Tools() []mcp.Tool {
	return r.tools
}

// Handler returns the handler for the named tool.
func (r *Registry) Handler(name string) (server.ToolHandlerFunc, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns the registered tool names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	return names
}
