package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/luminalabs/lumina-mcp/internal/panel"
	luminaerrors "github.com/luminalabs/lumina-mcp/pkg/errors"
)

// response is the JSON body every successful tool call returns: a
// one-line summary for the model plus the full panel the visual
// surface renders.
type response struct {
	Summary string      `json:"summary"`
	Panel   panel.Panel `json:"panel"`
}

// emit records the panel in the store and wraps it with the summary
// into a text result.
func (d Deps) emit(summary string, p panel.Panel) (*mcp.CallToolResult, error) {
	p = d.Panels.Add(p)
	body, err := json.MarshalIndent(response{Summary: summary, Panel: p}, "", "  ")
	if err != nil {
		return nil, luminaerrors.Wrap(luminaerrors.ErrCodeInternal, err, "encoding tool response")
	}
	return mcp.NewToolResultText(string(body)), nil
}

// fail converts an internal error into a tool-level error result. The
// error travels inside the result, not as a protocol failure, so the
// caller sees a structured message instead of a dropped call.
func fail(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(luminaerrors.UserMessage(err)), nil
}

// failf is fail for input validation, formatted in place.
func failf(format string, args ...any) (*mcp.CallToolResult, error) {
	return fail(luminaerrors.New(luminaerrors.ErrCodeInvalidInput, format, args...))
}

// countSummary phrases a listing result, noting when an aggregation
// ceiling cut the walk short.
func countSummary(count int, noun string, ceiling int) (string, bool) {
	truncated := ceiling > 0 && count >= ceiling
	s := fmt.Sprintf("Found %d %s", count, plural(count, noun))
	if truncated {
		s += fmt.Sprintf(" (stopped at the %d-item limit; more may exist)", ceiling)
	}
	return s, truncated
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
