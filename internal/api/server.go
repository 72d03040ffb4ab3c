// Package api serves the coil generator web interface: the parameter
// form, preview rendering, JSON endpoints, and file downloads.
package api

import (
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/coilworks/coilgen/internal/db"
	"github.com/coilworks/coilgen/internal/geometry"
	"github.com/coilworks/coilgen/internal/httputil"
	"github.com/coilworks/coilgen/internal/units"
)

// ANSI escape codes for request log colouring
const colorCyan = "\033[36m"
const colorReset = "\033[0m"
const colorYellow = "\033[33m"
const colorBoldGreen = "\033[1;32m"
const colorBoldRed = "\033[1;31m"

//go:embed index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.New("index.html").
	Funcs(template.FuncMap{"add1": func(i int) int { return i + 1 }}).
	ParseFS(templateFS, "index.html"))

// DefaultSpec holds the form defaults shown before the first submission.
var DefaultSpec = geometry.CoilSpec{
	OuterWidth:  10,
	OuterHeight: 6,
	TraceWidth:  0.15,
	Gap:         0.15,
	Turns:       5,
}

type Server struct {
	db    *db.DB
	units string
}

// NewServer creates an API server. db may be nil; run history is then
// disabled but generation still works.
func NewServer(database *db.DB, displayUnits string) *Server {
	if !units.IsValid(displayUnits) {
		displayUnits = units.MM
	}
	return &Server{
		db:    database,
		units: displayUnits,
	}
}

// ServeMux returns the route table for the server.
func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/download", s.handleDownload)
	mux.HandleFunc("/chart", s.handleChart)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/coil", s.handleCoil)
	mux.HandleFunc("/api/runs", s.handleRuns)
	return mux
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func statusCodeColor(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return colorBoldGreen + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 300 && statusCode < 400:
		return colorYellow + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 400:
		return colorBoldRed + strconv.Itoa(statusCode) + colorReset
	default:
		return strconv.Itoa(statusCode)
	}
}

// LoggingMiddleware logs method, path, status, and duration
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{w, http.StatusOK}
		next.ServeHTTP(lrw, r)
		log.Printf(
			"[%s] %s %s%s%s %vms",
			statusCodeColor(lrw.statusCode), r.Method,
			colorCyan, r.RequestURI, colorReset,
			float64(time.Since(start).Nanoseconds())/1e6,
		)
	})
}

// writeEngineError maps geometry errors to HTTP responses: invalid
// parameters are the caller's fault, anything else means the engine
// produced a path it could not offset.
func writeEngineError(w http.ResponseWriter, err error) {
	var cfgErr *geometry.InvalidConfigError
	if errors.As(err, &cfgErr) {
		httputil.BadRequest(w, cfgErr.Error())
		return
	}
	httputil.InternalServerError(w, err.Error())
}
