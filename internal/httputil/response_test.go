package httputil

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/coilworks/coilgen/internal/testutil"
)

func TestWriteJSONError(t *testing.T) {
	w := testutil.NewTestRecorder()
	WriteJSONError(w, http.StatusBadRequest, "bad input")

	testutil.AssertStatusCode(t, w.Code, http.StatusBadRequest)
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q, want application/json", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	if body["error"] != "bad input" {
		t.Errorf("error message = %q, want %q", body["error"], "bad input")
	}
}

func TestWriteJSONOK(t *testing.T) {
	w := testutil.NewTestRecorder()
	WriteJSONOK(w, map[string]int{"points": 21})

	testutil.AssertStatusCode(t, w.Code, http.StatusOK)
	var body map[string]int
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	if body["points"] != 21 {
		t.Errorf("points = %d, want 21", body["points"])
	}
}

func TestWriteAttachment(t *testing.T) {
	w := testutil.NewTestRecorder()
	WriteAttachment(w, "coil_coordinates.txt", "text/plain", []byte("0.00 0.00"))

	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="coil_coordinates.txt"` {
		t.Errorf("content disposition = %q", got)
	}
	if w.Body.String() != "0.00 0.00" {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	w := testutil.NewTestRecorder()
	MethodNotAllowed(w)
	testutil.AssertStatusCode(t, w.Code, http.StatusMethodNotAllowed)
}
