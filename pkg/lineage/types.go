package lineage

// NodeType identifies what kind of resource a lineage node represents.
type NodeType string

// Known node types. The platform may introduce new types at any time,
// so consumers must tolerate values outside this list.
const (
	NodeTypeApp     NodeType = "APP"
	NodeTypeDataset NodeType = "DATASET"
	NodeTypeSource  NodeType = "SOURCE"
	NodeTypeUnknown NodeType = "UNKNOWN"
)

// Node is one resource in a lineage graph.
type Node struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Type       NodeType `json:"type"`
	Subtype    string   `json:"subtype,omitempty"`
	FieldCount int      `json:"fieldCount,omitempty"`
	TableCount int      `json:"tableCount,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is a directed data-flow dependency: Source produces data consumed
// by Target. Duplicate edges are permitted; only connectivity matters.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Classification partitions a lineage graph into display tiers.
//
// A graph consisting of exactly one node and zero edges is a special
// case: Standalone is true, all tiers are empty, and the node is
// surfaced in Single.
type Classification struct {
	Sources    []Node `json:"sources"`    // no incoming edges (including isolated nodes)
	Processors []Node `json:"processors"` // both incoming and outgoing edges
	Outputs    []Node `json:"outputs"`    // no outgoing edges, at least one incoming
	Standalone bool   `json:"standalone"`
	Single     *Node  `json:"single,omitempty"` // set only when Standalone
}
