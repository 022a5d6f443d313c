// Package layout positions rasterized lines inside an available area.
//
// Lines are stacked top to bottom in input order. Each line is offset
// horizontally according to its [Alignment], then clipped: rows that start
// at or below the available height are dropped, as are cells at or right of
// the available width. Nothing wraps and nothing scrolls.
package layout

import (
	"github.com/matzehuels/bigtext/pkg/buffer"
	"github.com/matzehuels/bigtext/pkg/raster"
)

// Span is one clipped row of a plan, positioned relative to the top left
// corner of the available area.
type Span struct {
	X, Y  int
	Cells []raster.Cell
}

// Measure returns the unclipped size of plans stacked vertically: the sum of
// their heights and the widest width.
func Measure(plans []raster.Plan) buffer.Size {
	var size buffer.Size
	for _, p := range plans {
		size.Rows += p.Height()
		size.Cols = max(size.Cols, p.Width())
	}
	return size
}

// Layout positions and clips plans in a width x height area. An empty input
// or an empty area yields no spans.
func Layout(plans []raster.Plan, align Alignment, width, height int) []Span {
	if len(plans) == 0 || width <= 0 || height <= 0 {
		return nil
	}

	var spans []Span
	y := 0
	for _, p := range plans {
		x := align.Offset(width, p.Width())
		for _, row := range p.Rows {
			if y >= height {
				return spans
			}
			if n := min(len(row), width-x); n > 0 {
				spans = append(spans, Span{X: x, Y: y, Cells: row[:n]})
			}
			y++
		}
	}
	return spans
}
