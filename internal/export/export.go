// Package export assembles and formats coil point sequences for
// download and for import into downstream CAD/FEM tools.
package export

import (
	"fmt"
	"strings"

	"github.com/coilworks/coilgen/internal/geometry"
)

// DefaultFilename is the attachment name used for text downloads.
const DefaultFilename = "coil_coordinates.txt"

// Assemble builds the ordered point sequence for export: all outer
// points in order, then — when includeInner is set — all inner points
// in reverse order, then the first outer point repeated to close the
// loop. Reversing the inner boundary makes the two edges of the trace
// read as a single closed, non-self-crossing polygon, the order COMSOL
// expects on import.
func Assemble(outer, inner geometry.Path, includeInner bool) geometry.Path {
	points := make(geometry.Path, 0, len(outer)+len(inner)+1)
	points = append(points, outer...)

	if includeInner {
		for i := len(inner) - 1; i >= 0; i-- {
			points = append(points, inner[i])
		}
	}

	if len(outer) > 0 {
		points = append(points, outer[0])
	}
	return points
}

// FormatPoints renders the point sequence as plain text, one
// "x y" pair per line with two fractional digits, newline-joined with
// no trailing newline.
func FormatPoints(points geometry.Path) string {
	lines := make([]string, len(points))
	for i, p := range points {
		lines[i] = fmt.Sprintf("%.2f %.2f", p.X, p.Y)
	}
	return strings.Join(lines, "\n")
}

// FormatCSV renders the point sequence as CSV with an x,y header row.
func FormatCSV(points geometry.Path) string {
	var b strings.Builder
	b.WriteString("x,y\n")
	for _, p := range points {
		fmt.Fprintf(&b, "%.2f,%.2f\n", p.X, p.Y)
	}
	return b.String()
}
