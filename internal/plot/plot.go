// Package plot renders coil geometry previews as PNG images.
//
// Each render owns its own figure: no plotting state survives a call,
// so concurrent requests can render without coordination.
package plot

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/coilworks/coilgen/internal/geometry"
)

// maxEdge bounds the longer side of the rendered figure.
const maxEdge = 8 * vg.Inch

// RenderPNG draws the spiral polyline and returns the encoded PNG.
// The canvas is sized to the data's aspect ratio so one millimetre
// spans the same distance on both axes.
func RenderPNG(path geometry.Path, unitLabel string) ([]byte, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("cannot render an empty path")
	}

	p := plot.New()
	p.Title.Text = "Coil trace"
	p.X.Label.Text = fmt.Sprintf("x (%s)", unitLabel)
	p.Y.Label.Text = fmt.Sprintf("y (%s)", unitLabel)
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(path))
	for i, pt := range path {
		pts[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("build line: %w", err)
	}
	line.Width = vg.Points(1)
	p.Add(line)

	width, height := canvasSize(path)

	var buf bytes.Buffer
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, fmt.Errorf("render png: %w", err)
	}
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderBase64PNG renders the path and base64-encodes the PNG for
// inlining into an <img src="data:image/png;base64,..."> tag.
func RenderBase64PNG(path geometry.Path, unitLabel string) (string, error) {
	png, err := RenderPNG(path, unitLabel)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}

// canvasSize picks figure dimensions matching the data aspect ratio,
// clamped so the longer edge is maxEdge.
func canvasSize(path geometry.Path) (w, h vg.Length) {
	minX, maxX := path[0].X, path[0].X
	minY, maxY := path[0].Y, path[0].Y
	for _, p := range path[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 || spanY <= 0 {
		return maxEdge, maxEdge
	}
	if spanX >= spanY {
		return maxEdge, vg.Length(float64(maxEdge) * spanY / spanX)
	}
	return vg.Length(float64(maxEdge) * spanX / spanY), maxEdge
}
