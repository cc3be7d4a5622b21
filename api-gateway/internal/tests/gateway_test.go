package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qrmenu-backend/api-gateway/internal/gateway"
	"qrmenu-backend/api-gateway/internal/mocks"
)

const menuSvc = "http://menu-svc:3000"

func okResponse(body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler_CafeMenu(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{MenuSvcURL: menuSvc + "/"}, mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == menuSvc+"/restaurants/10/categories" && req.Method == http.MethodGet
	})).Return(okResponse(`[{"id":1,"name":"Pizza"}]`), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/cafe/10/menu", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Pizza")
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestGateway_RouteHandler_ProxiedPaths(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		expected string
	}{
		{"api prefix stripped for auth", http.MethodPost, "/api/auth/login", menuSvc + "/auth/login"},
		{"api prefix stripped for restaurants", http.MethodPut, "/api/restaurants/1/categories/2", menuSvc + "/restaurants/1/categories/2"},
		{"direct restaurants path", http.MethodGet, "/restaurants/1/qrcode", menuSvc + "/restaurants/1/qrcode"},
		{"uploads", http.MethodGet, "/uploads/1/2/dish_7.jpg", menuSvc + "/uploads/1/2/dish_7.jpg"},
		{"query preserved", http.MethodGet, "/api/restaurants/1/categories?lang=en", menuSvc + "/restaurants/1/categories?lang=en"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := gateway.NewGateway(gateway.Config{MenuSvcURL: menuSvc}, mockClient)

			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.URL.String() == testCase.expected && req.Method == testCase.method
			})).Return(okResponse(`{}`), nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.path, nil)
			rr := httptest.NewRecorder()

			gw.RouteHandler(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestGateway_ProxyRequest_ForwardsHeadersAndBody(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{MenuSvcURL: menuSvc}, mockClient)

	var captured *http.Request
	var body string
	mockClient.On("Do", mock.Anything).Return(func(req *http.Request) (*http.Response, error) {
		captured = req
		raw, _ := io.ReadAll(req.Body)
		body = string(raw)
		resp := okResponse(`{"id":5}`)
		resp.StatusCode = http.StatusCreated
		return resp, nil
	}).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/restaurants/1/categories", strings.NewReader(`{"name":"Soups"}`))
	req.Host = "menu.example.com"
	req.Header.Set("Authorization", "Bearer abc")
	req.Header.Set("X-Request-ID", "req-1")
	req.Header.Set("Connection", "keep-alive")
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":5}`, rr.Body.String())
	require.NotNil(t, captured)
	assert.Equal(t, `{"name":"Soups"}`, body)
	assert.Equal(t, "Bearer abc", captured.Header.Get("Authorization"))
	assert.Equal(t, "req-1", captured.Header.Get("X-Request-ID"))
	assert.Equal(t, "menu.example.com", captured.Header.Get("X-Forwarded-Host"))
	assert.Equal(t, "http", captured.Header.Get("X-Forwarded-Proto"))
	assert.NotEmpty(t, captured.Header.Get("X-Forwarded-For"))
	assert.Empty(t, captured.Header.Get("Connection"))
}

func TestGateway_ProxyRequest_KeepsUpstreamForwardedHeaders(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{MenuSvcURL: menuSvc}, mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Header.Get("X-Forwarded-Host") == "public.example.com" &&
			req.Header.Get("X-Forwarded-Proto") == "https"
	})).Return(okResponse(`[]`), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/restaurants/1/categories", nil)
	req.Header.Set("X-Forwarded-Host", "public.example.com")
	req.Header.Set("X-Forwarded-Proto", "https")
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGateway_ProxyRequest_UpstreamError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{MenuSvcURL: menuSvc}, mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/1", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_RouteHandler_UnknownAPI(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "API route not found")
}

func TestGateway_RouteHandler_FrontendFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>menu</html>"), 0o644))

	gw := gateway.NewGateway(gateway.Config{FrontendDir: dir}, nil)

	req := httptest.NewRequest(http.MethodGet, "/menu/4", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "menu")
}

func TestGateway_SetupRoutes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	gw := gateway.NewGateway(gateway.Config{FrontendDir: dir}, nil)
	router := gw.SetupRoutes()

	tests := []struct {
		name     string
		path     string
		expected int
	}{
		{"health", "/health", http.StatusOK},
		{"static asset", "/static/app.js", http.StatusOK},
		{"missing static asset", "/static/nope.js", http.StatusNotFound},
		{"unknown api", "/api/nope", http.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, testCase.path, nil))
			assert.Equal(t, testCase.expected, rr.Code)
		})
	}
}
