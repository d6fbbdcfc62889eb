package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/creatorstack/titlegen/internal/config"
	"github.com/creatorstack/titlegen/internal/logger"
	"github.com/creatorstack/titlegen/internal/suggest"
)

type stubGenerator struct{}

func (s *stubGenerator) GenerateContent(_ context.Context, _, _ string) (interface{}, error) {
	return map[string]interface{}{
		"candidates": []interface{}{
			map[string]interface{}{
				"content": map[string]interface{}{
					"parts": []interface{}{
						map[string]interface{}{"text": `{"titles":"A, B, C"}`},
					},
				},
			},
		},
	}, nil
}

func (s *stubGenerator) Model() string { return "gemini-2.5-flash" }

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{CORSAllowedOrigins: "*"}
	log := logger.New(logger.Config{Level: slog.LevelError})
	service := suggest.NewService(&stubGenerator{}, cfg, log)
	handler := suggest.NewHandler(service, log)

	return newRouter(cfg, log, handler)
}

func TestPublicEndpointCORSHeaders(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest("POST", "/api/public/titles",
		strings.NewReader(`{"description":"a video"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", w.Code, w.Body.String())
	}

	headers := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, Authorization",
	}
	for name, want := range headers {
		if got := w.Header().Get(name); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
}

func TestPublicEndpointPreflight(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest("OPTIONS", "/api/public/titles", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("preflight body = %q, want empty", w.Body.String())
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestInternalEndpointHasNoCORSHeaders(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest("POST", "/api/suggest",
		strings.NewReader(`{"description":"a video"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("internal endpoint leaked CORS header %q", got)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "go_goroutines") {
		t.Error("metrics output missing standard collectors")
	}
}
