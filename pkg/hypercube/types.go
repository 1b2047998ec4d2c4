package hypercube

// Cell is one cell of a query result matrix. The engine reports a
// numeric representation when the cell holds a number, and always a
// text representation when one exists; either may be absent.
type Cell struct {
	Num  *float64 `json:"num,omitempty"`
	Text string   `json:"text,omitempty"`
}

// NumCell builds a Cell carrying both a numeric and text representation.
func NumCell(v float64, text string) Cell {
	return Cell{Num: &v, Text: text}
}

// TextCell builds a text-only Cell.
func TextCell(text string) Cell {
	return Cell{Text: text}
}

// Matrix is a row-major query result. Column 0 is the grouping
// dimension, column 1 the primary measure, and an optional column 2 a
// secondary measure used for paired/scatter geometry.
type Matrix [][]Cell

// Geometry is the resolved rendering shape, distinct from the cosmetic
// chart-library type. It selects both the sampling policy and the
// downstream rendering technique.
type Geometry string

const (
	GeometryBar     Geometry = "bar"
	GeometryLine    Geometry = "line"
	GeometryScatter Geometry = "scatter"
)

// Series is a render-ready column extraction of a Matrix. Labels and
// Values are always index-aligned and equal length; Secondary, when
// non-nil, has the same length as well.
type Series struct {
	Labels    []string  `json:"labels"`
	Values    []float64 `json:"values"`
	Secondary []float64 `json:"secondary,omitempty"`
}

// Len returns the number of points in the series.
func (s Series) Len() int { return len(s.Labels) }
