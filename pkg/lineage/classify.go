// Package lineage classifies data-flow lineage graphs into display tiers.
//
// The classification is degree-based, not a topological sort: a node's
// tier depends only on whether it has incoming and outgoing edges.
// Graphs with cycles are handled without special casing — every member
// of a pure cycle has both edge directions populated and lands in the
// processor tier, a deliberate coarse approximation. There is no cycle
// detection and no layered ordering beyond the three tiers.
package lineage

// Classify partitions nodes into source, processor, and output tiers
// from the edge set alone. It is a total function: any finite node/edge
// set, including an empty graph, yields a valid Classification.
//
// Tier rules:
//   - source: no incoming edges; isolated nodes (no edges at all)
//     classify as sources, never as outputs, so they are not counted
//     in two tiers
//   - processor: at least one incoming AND one outgoing edge
//   - output: at least one incoming edge, no outgoing edges
//
// Edges referencing ids absent from nodes contribute adjacency but
// produce no tier entries. Input order of nodes is preserved within
// each tier.
func Classify(nodes []Node, edges []Edge) Classification {
	if len(nodes) == 1 && len(edges) == 0 {
		single := nodes[0]
		return Classification{Standalone: true, Single: &single}
	}

	hasIncoming := make(map[string]bool, len(nodes))
	hasOutgoing := make(map[string]bool, len(nodes))
	for _, e := range edges {
		hasOutgoing[e.Source] = true
		hasIncoming[e.Target] = true
	}

	var c Classification
	for _, n := range nodes {
		in, out := hasIncoming[n.ID], hasOutgoing[n.ID]
		switch {
		case in && out:
			c.Processors = append(c.Processors, n)
		case in:
			c.Outputs = append(c.Outputs, n)
		default:
			// No incoming edges: root or isolated, either way a source.
			c.Sources = append(c.Sources, n)
		}
	}
	return c
}
