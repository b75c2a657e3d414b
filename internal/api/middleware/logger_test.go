package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestLogger_WritesOneLine(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	e.Use(RequestLogger(log))
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusTeapot, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping?x=1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one json log line, got %q: %v", buf.String(), err)
	}
	if entry["level"] != "warn" || entry["method"] != "GET" || entry["uri"] != "/ping?x=1" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry["status"] != float64(http.StatusTeapot) {
		t.Fatalf("unexpected status: %+v", entry["status"])
	}
}
