package lineage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// Tier fill colors for DOT output.
const (
	colorSource    = "#d0e7ff"
	colorProcessor = "#fff2cc"
	colorOutput    = "#d5f5d5"
)

// ToDOT converts a lineage graph to Graphviz DOT format, coloring nodes
// by their classified tier and pinning each tier to its own rank so the
// flow reads left to right. The resulting DOT string can be rendered
// with [RenderSVG].
func ToDOT(nodes []Node, edges []Edge) string {
	c := Classify(nodes, edges)

	var buf bytes.Buffer
	buf.WriteString("digraph lineage {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.4;\n\n")

	if c.Standalone {
		fmt.Fprintf(&buf, "  %q [%s];\n", c.Single.ID, strings.Join(nodeAttrs(*c.Single, colorSource), ", "))
		buf.WriteString("}\n")
		return buf.String()
	}

	writeTier(&buf, "source", c.Sources, colorSource)
	writeTier(&buf, "same", c.Processors, colorProcessor)
	writeTier(&buf, "sink", c.Outputs, colorOutput)

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.Source, e.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeTier(buf *bytes.Buffer, rank string, nodes []Node, color string) {
	if len(nodes) == 0 {
		return
	}
	buf.WriteString("  { rank=" + rank + ";\n")
	for _, n := range nodes {
		fmt.Fprintf(buf, "    %q [%s];\n", n.ID, strings.Join(nodeAttrs(n, color), ", "))
	}
	buf.WriteString("  }\n")
}

func nodeAttrs(n Node, color string) []string {
	label := n.DisplayLabel()
	if n.Subtype != "" {
		label += "\n" + n.Subtype
	}
	attrs := []string{
		fmt.Sprintf("label=%q", label),
		fmt.Sprintf("fillcolor=%q", color),
	}
	if n.Type == NodeTypeApp {
		attrs = append(attrs, "penwidth=2")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
