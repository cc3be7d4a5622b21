package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrmenu-backend/config"
)

func TestBuildHandler_ProxiesToMenuService(t *testing.T) {
	var forwardedHost, path string
	menuSvc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		forwardedHost = r.Header.Get("X-Forwarded-Host")
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":1,"name":"Soups"}]`)
	}))
	defer menuSvc.Close()

	t.Setenv("MENU_SVC_URL", menuSvc.URL)
	cfg, err := config.LoadGateway()
	require.NoError(t, err)

	handler := buildHandler(cfg, menuSvc.Client())

	req := httptest.NewRequest(http.MethodGet, "/api/cafe/4/menu", nil)
	req.Host = "qr.example.com"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Soups"}]`, w.Body.String())
	assert.Equal(t, "/restaurants/4/categories", path)
	assert.Equal(t, "qr.example.com", forwardedHost)
}

func TestBuildHandler_HealthFrontendAndCORS(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>qr menu</html>"), 0o644))

	cfg := config.GatewayConfig{MenuSvcURL: "http://menu-svc.invalid", FrontendDir: dir}
	handler := buildHandler(cfg, http.DefaultClient)

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{"health", "/health", http.StatusOK, "api-gateway"},
		{"frontend fallback", "/menu/4", http.StatusOK, "qr menu"},
		{"unknown api", "/api/nope", http.StatusNotFound, "API route not found"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, testCase.path, nil)
			req.Header.Set("Origin", "http://localhost:5173")
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), testCase.wantBody)
			assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
