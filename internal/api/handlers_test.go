package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"taskpilot/internal/config"
)

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}

func TestHealthHandler_ReturnsOk(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", healthHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	if !contains(w.Body.String(), "ok") {
		t.Errorf("expected response to contain 'ok', got: %s", w.Body.String())
	}
}

func TestConfigHandler_RedactsSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Host = "localhost"
	cfg.Server.JWTSecret = "supersecret"
	cfg.Engine.DefaultStrategy = "smart_balance"
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/config", configHandler(cfg))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/config", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	if !contains(w.Body.String(), "smart_balance") {
		t.Errorf("expected engine config in response, got: %s", w.Body.String())
	}
	if contains(w.Body.String(), "supersecret") {
		t.Errorf("config response must not leak the JWT secret: %s", w.Body.String())
	}
}

func TestStrategiesHandler_ListsAllProfiles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/strategies", strategiesHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/strategies", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	for _, name := range []string{"fastest_wins", "high_impact", "deadline_driven", "smart_balance"} {
		if !contains(w.Body.String(), name) {
			t.Errorf("expected strategy %s in response, got: %s", name, w.Body.String())
		}
	}
}
