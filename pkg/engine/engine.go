// Package engine provides the query boundary to the Lumina analytics
// engine.
//
// The engine speaks a session-oriented JSON-RPC protocol over WebSocket:
// open a document, create a transient cube object from a dimension and
// measure specification, and fetch one page of evaluated cells. That
// protocol is consumed as an opaque RPC client here; the rest of the
// system depends only on the [Querier] capability interface, which keeps
// the transformation pipeline testable with scripted stubs.
package engine

import (
	"context"

	"github.com/luminalabs/lumina-mcp/pkg/hypercube"
)

// MaxFetchRows caps how many rows a single hypercube fetch retrieves,
// even when more rows exist. The truncation is silent: it is a cost
// control on engine round-trips, not an error condition.
const MaxFetchRows = 1000

// CubeSpec describes the cube to evaluate. At most one dimension is
// retained regardless of how many are requested; all measures are kept.
type CubeSpec struct {
	Dimensions []string // field names; only the first is used
	Measures   []string // measure expressions, e.g. "Sum(Sales)"
	MaxRows    int      // zero or above MaxFetchRows clamps to MaxFetchRows
}

// Querier evaluates a cube specification against an app and returns the
// raw result matrix.
type Querier interface {
	FetchHypercube(ctx context.Context, appID string, spec CubeSpec) (hypercube.Matrix, error)
}

// clampSpec normalizes a CubeSpec to the engine's limits.
func clampSpec(spec CubeSpec) CubeSpec {
	if len(spec.Dimensions) > 1 {
		spec.Dimensions = spec.Dimensions[:1]
	}
	if spec.MaxRows <= 0 || spec.MaxRows > MaxFetchRows {
		spec.MaxRows = MaxFetchRows
	}
	return spec
}
