package platform

import (
	"context"
	"errors"
	"net/url"
	"slices"
	"strings"

	luminaerrors "github.com/luminalabs/lumina-mcp/pkg/errors"
	"github.com/luminalabs/lumina-mcp/pkg/lineage"
)

// lineageEnvelope is the wire shape of the lineage graph endpoint.
// Nodes arrive keyed by id; edges reference those keys.
type lineageEnvelope struct {
	Graph struct {
		Nodes map[string]struct {
			Label      string `json:"label"`
			Type       string `json:"type"`
			Subtype    string `json:"subtype,omitempty"`
			FieldCount int    `json:"fieldCount,omitempty"`
			TableCount int    `json:"tableCount,omitempty"`
		} `json:"nodes"`
		Edges []lineage.Edge `json:"edges"`
	} `json:"graph"`
}

// GetLineage fetches the resource-level lineage graph for a qualified
// resource identifier. Nodes are returned sorted by id so downstream
// classification and rendering are deterministic.
func (c *Client) GetLineage(ctx context.Context, qri string) ([]lineage.Node, []lineage.Edge, error) {
	if strings.TrimSpace(qri) == "" {
		return nil, nil, luminaerrors.New(luminaerrors.ErrCodeInvalidResource, "lineage id is required")
	}

	var env lineageEnvelope
	path := "/api/v1/lineage/" + url.PathEscape(qri)
	if err := c.Get(ctx, path, url.Values{"level": {"resource"}}, &env); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, luminaerrors.Wrap(luminaerrors.ErrCodeLineageNotFound, err, "no lineage for %s", qri)
		}
		return nil, nil, err
	}

	nodes := make([]lineage.Node, 0, len(env.Graph.Nodes))
	for id, n := range env.Graph.Nodes {
		typ := lineage.NodeType(strings.ToUpper(n.Type))
		if typ == "" {
			typ = lineage.NodeTypeUnknown
		}
		nodes = append(nodes, lineage.Node{
			ID:         id,
			Label:      n.Label,
			Type:       typ,
			Subtype:    n.Subtype,
			FieldCount: n.FieldCount,
			TableCount: n.TableCount,
		})
	}
	slices.SortFunc(nodes, func(a, b lineage.Node) int {
		return strings.Compare(a.ID, b.ID)
	})

	return nodes, env.Graph.Edges, nil
}
