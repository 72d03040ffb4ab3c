package api

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/coilworks/coilgen/internal/export"
	"github.com/coilworks/coilgen/internal/geometry"
	"github.com/coilworks/coilgen/internal/httputil"
	"github.com/coilworks/coilgen/internal/plot"
	"github.com/coilworks/coilgen/internal/units"
	"github.com/coilworks/coilgen/internal/version"
)

// parseSpec reads coil parameters from the request's form or query
// values. Geometric validity is checked later by the engine; this only
// rejects unparseable numbers.
func parseSpec(r *http.Request) (geometry.CoilSpec, bool, error) {
	var spec geometry.CoilSpec
	var err error

	parse := func(field string) float64 {
		if err != nil {
			return 0
		}
		v, perr := strconv.ParseFloat(r.FormValue(field), 64)
		if perr != nil {
			err = fmt.Errorf("invalid %q parameter", field)
		}
		return v
	}

	spec.OuterWidth = parse("lx")
	spec.OuterHeight = parse("by")
	spec.TraceWidth = parse("width")
	spec.Gap = parse("gap")
	if err != nil {
		return geometry.CoilSpec{}, false, err
	}

	turns, perr := strconv.Atoi(r.FormValue("turns"))
	if perr != nil {
		return geometry.CoilSpec{}, false, fmt.Errorf("invalid %q parameter", "turns")
	}
	spec.Turns = turns

	includeInner := r.FormValue("include_inner") == "1"
	return spec, includeInner, nil
}

// displayUnits returns the per-request unit override, falling back to
// the server default.
func (s *Server) displayUnits(r *http.Request) string {
	if u := r.FormValue("units"); units.IsValid(u) {
		return u
	}
	return s.units
}

// scalePath converts a path computed in mm to the target units.
func scalePath(path geometry.Path, target string) geometry.Path {
	if target == units.MM {
		return path
	}
	out := make(geometry.Path, len(path))
	for i, p := range path {
		out[i] = geometry.Point{
			X: units.ConvertLength(p.X, target),
			Y: units.ConvertLength(p.Y, target),
		}
	}
	return out
}

// recordRun persists the request to the run history, if a database is
// configured. Failures are logged, never surfaced: history is not part
// of the generation contract.
func (s *Server) recordRun(spec geometry.CoilSpec, includeInner bool, pointCount int) {
	if s.db == nil {
		return
	}
	if _, err := s.db.RecordRun(spec, includeInner, pointCount); err != nil {
		log.Printf("failed to record coil run: %v", err)
	}
}

type indexData struct {
	Lx           float64
	By           float64
	Width        float64
	Gap          float64
	Turns        int
	IncludeInner bool
	Units        string
	ValidUnits   []string
	Error        string
	CoilPlot     string // base64 PNG, empty until the first submission
	OuterTurns   []geometry.Turn
	InnerTurns   []geometry.Turn
	TxtData      string
	PointCount   int
}

func (s *Server) newIndexData(spec geometry.CoilSpec, includeInner bool, unit string) indexData {
	return indexData{
		Lx:           spec.OuterWidth,
		By:           spec.OuterHeight,
		Width:        spec.TraceWidth,
		Gap:          spec.Gap,
		Turns:        spec.Turns,
		IncludeInner: includeInner,
		Units:        unit,
		ValidUnits:   units.ValidUnits,
	}
}

func (s *Server) renderIndex(w http.ResponseWriter, data indexData) {
	if err := indexTemplate.Execute(w, data); err != nil {
		log.Printf("failed to render index template: %v", err)
	}
}

// handleIndex serves the parameter form and, on POST, the computed
// preview: turn tables, the rendered spiral, and the export text.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	unit := s.displayUnits(r)
	if r.Method != http.MethodPost {
		s.renderIndex(w, s.newIndexData(DefaultSpec, false, unit))
		return
	}

	spec, includeInner, err := parseSpec(r)
	if err != nil {
		data := s.newIndexData(DefaultSpec, false, unit)
		data.Error = err.Error()
		w.WriteHeader(http.StatusBadRequest)
		s.renderIndex(w, data)
		return
	}

	data := s.newIndexData(spec, includeInner, unit)
	res, err := Generate(spec, includeInner)
	if err != nil {
		data.Error = err.Error()
		w.WriteHeader(http.StatusBadRequest)
		s.renderIndex(w, data)
		return
	}

	coilPlot, err := plot.RenderBase64PNG(scalePath(res.Outer, unit), unit)
	if err != nil {
		log.Printf("failed to render coil preview: %v", err)
	}

	data.CoilPlot = coilPlot
	data.OuterTurns = res.Turns
	data.InnerTurns = res.InnerTurns
	data.TxtData = export.FormatPoints(scalePath(res.Export, unit))
	data.PointCount = len(res.Export)

	s.recordRun(spec, includeInner, len(res.Export))
	s.renderIndex(w, data)
}

// handleDownload returns previously generated point text as a file
// attachment. The form round-trips the data so nothing is recomputed.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}
	data := r.FormValue("data")
	if data == "" {
		httputil.BadRequest(w, "missing 'data' form field")
		return
	}
	httputil.WriteAttachment(w, export.DefaultFilename, "text/plain", []byte(data))
}

// handleCoil is the JSON API: coil parameters in, full geometry out.
// format=txt or format=csv returns the export points as a download
// instead.
func (s *Server) handleCoil(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}

	spec, includeInner, err := parseSpec(r)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}

	res, err := Generate(spec, includeInner)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	s.recordRun(spec, includeInner, len(res.Export))

	unit := s.displayUnits(r)
	switch r.FormValue("format") {
	case "txt":
		httputil.WriteAttachment(w, export.DefaultFilename, "text/plain",
			[]byte(export.FormatPoints(scalePath(res.Export, unit))))
	case "csv":
		httputil.WriteAttachment(w, "coil_coordinates.csv", "text/csv",
			[]byte(export.FormatCSV(scalePath(res.Export, unit))))
	case "", "json":
		httputil.WriteJSONOK(w, res)
	default:
		httputil.BadRequest(w, "unknown format; use json, txt, or csv")
	}
}

// handleRuns lists recent generation runs from the history database.
func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	if s.db == nil {
		httputil.InternalServerError(w, "no database configured for run history")
		return
	}

	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 500 {
			limit = v
		}
	}

	runs, err := s.db.ListRecentRuns(limit)
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("list runs: %v", err))
		return
	}
	httputil.WriteJSONOK(w, runs)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONOK(w, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}
