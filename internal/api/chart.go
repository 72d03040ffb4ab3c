package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/coilworks/coilgen/internal/httputil"
)

// handleChart renders an interactive HTML preview of the outer spiral
// using go-echarts. Handy for zooming into tight inner turns without
// regenerating PNGs.
// Query params: lx, by, width, gap, turns (all required), units (optional).
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	spec, _, err := parseSpec(r)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}

	res, err := Generate(spec, false)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	unit := s.displayUnits(r)
	path := scalePath(res.Outer, unit)

	data := make([]opts.LineData, 0, len(path))
	maxX, maxY := 0.0, 0.0
	for _, p := range path {
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
		data = append(data, opts.LineData{Value: []interface{}{p.X, p.Y}})
	}

	// Small padding so the outermost edges stay visible
	padX := maxX * 1.05
	padY := maxY * 1.05
	if padX == 0 {
		padX = 1.0
	}
	if padY == 0 {
		padY = 1.0
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Coil trace", Width: "900px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Coil trace",
			Subtitle: fmt.Sprintf("Lx=%g By=%g width=%g gap=%g turns=%d (%s)", spec.OuterWidth, spec.OuterHeight, spec.TraceWidth, spec.Gap, spec.Turns, unit),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: 0, Max: padX, Name: fmt.Sprintf("x (%s)", unit), NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: 0, Max: padY, Name: fmt.Sprintf("y (%s)", unit), NameLocation: "middle", NameGap: 30}),
	)
	line.AddSeries("outer path", data, charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}))

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("failed to render chart: %v", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
