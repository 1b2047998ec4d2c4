// Package hypercube converts multi-dimensional query results into
// render-ready chart series.
//
// The transformation is a pure function over an already-materialized
// matrix: resolve the chart geometry from a free-form kind hint, extract
// label/value columns row by row, then reduce the row count under a
// geometry-specific budget. Bar-like charts keep the top values (a
// top-K reduction that changes which categories are visible); ordered
// geometries keep every n-th row instead, preserving temporal order.
// The function never fails: malformed rows are skipped and unparseable
// values degrade to zero.
package hypercube

import (
	"sort"
	"strconv"
	"strings"
)

// Row budgets per resolved geometry. Scatter output is never sampled.
const (
	maxBarRows     = 30
	maxLineRows    = 100
	maxDefaultRows = 50
)

// Transform converts a matrix into a Series tagged with its resolved
// geometry. chartKindHint is matched case-insensitively by substring;
// an unrecognized hint produces a valid bar-like default. An empty
// matrix yields an empty series, not an error.
func Transform(m Matrix, chartKindHint string) (Series, Geometry) {
	s, hasSecondary := extract(m)
	geo := resolveGeometry(chartKindHint, hasSecondary)
	return sample(s, geo), geo
}

// resolveGeometry derives the final geometry from a kind hint. The
// bar/line/scatter matches are independent booleans at first; scatter
// wins only when a secondary measure column exists, otherwise it falls
// back to line-like. No match at all defaults to bar-like.
func resolveGeometry(hint string, hasSecondary bool) Geometry {
	h := strings.ToLower(hint)
	barLike := containsAny(h, "bar", "column", "histogram")
	lineLike := containsAny(h, "line", "trend", "area")
	scatterLike := containsAny(h, "scatter", "point")

	switch {
	case scatterLike && hasSecondary:
		return GeometryScatter
	case scatterLike || lineLike:
		return GeometryLine
	case barLike:
		return GeometryBar
	default:
		return GeometryBar
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// extract reads the label column and measure columns out of the matrix.
// Rows shorter than two columns, or whose dimension cell has no text,
// are dropped entirely so the output arrays stay index-aligned.
func extract(m Matrix) (Series, bool) {
	hasSecondary := false
	for _, row := range m {
		if len(row) >= 3 {
			hasSecondary = true
			break
		}
	}

	var s Series
	for _, row := range m {
		if len(row) < 2 {
			continue
		}
		label := row[0].Text
		if label == "" {
			// A dimension without text drops the whole row; the value at
			// this index is skipped too, never independently.
			continue
		}
		s.Labels = append(s.Labels, label)
		s.Values = append(s.Values, cellValue(row[1]))
		if hasSecondary {
			sec := 0.0
			if len(row) >= 3 {
				sec = cellValue(row[2])
			}
			s.Secondary = append(s.Secondary, sec)
		}
	}
	return s, hasSecondary
}

// cellValue prefers the numeric representation; otherwise the text is
// parsed with currency symbols, thousands separators, and units
// stripped. Parse failure degrades to zero.
func cellValue(c Cell) float64 {
	if c.Num != nil {
		return *c.Num
	}
	return parseNumeric(c.Text)
}

func parseNumeric(text string) float64 {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// sample reduces the series under the geometry's row budget. Scatter
// output is returned as-is regardless of size.
func sample(s Series, geo Geometry) Series {
	if geo == GeometryScatter {
		return s
	}

	budget := maxDefaultRows
	switch geo {
	case GeometryBar:
		budget = maxBarRows
	case GeometryLine:
		budget = maxLineRows
	}
	if s.Len() <= budget {
		return s
	}

	if geo == GeometryBar {
		return topK(s, budget)
	}
	return stride(s, budget)
}

// topK keeps the budget largest values, sorted descending. This changes
// which categories remain visible; it is a deliberate reduction for
// categorical charts, not a decimation.
func topK(s Series, budget int) Series {
	idx := make([]int, s.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return s.Values[idx[a]] > s.Values[idx[b]]
	})
	idx = idx[:budget]

	return pick(s, idx)
}

// stride keeps every ceil(n/budget)-th row in original order, preserving
// temporal and categorical ordering.
func stride(s Series, budget int) Series {
	step := (s.Len() + budget - 1) / budget
	var idx []int
	for i := 0; i < s.Len(); i += step {
		idx = append(idx, i)
	}
	return pick(s, idx)
}

func pick(s Series, idx []int) Series {
	out := Series{
		Labels: make([]string, len(idx)),
		Values: make([]float64, len(idx)),
	}
	if s.Secondary != nil {
		out.Secondary = make([]float64, len(idx))
	}
	for i, j := range idx {
		out.Labels[i] = s.Labels[j]
		out.Values[i] = s.Values[j]
		if s.Secondary != nil {
			out.Secondary[i] = s.Secondary[j]
		}
	}
	return out
}
