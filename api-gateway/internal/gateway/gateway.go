package gateway

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	MenuSvcURL  string
	FrontendDir string
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	config.MenuSvcURL = strings.TrimRight(config.MenuSvcURL, "/")
	return &Gateway{
		config: config,
		client: client,
	}
}

// hopHeaders are connection-scoped and never forwarded.
var hopHeaders = []string{
	"Connection", "Keep-Alive", "Proxy-Authenticate", "Proxy-Authorization",
	"Te", "Trailer", "Transfer-Encoding", "Upgrade",
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ProxyRequest forwards r to targetURL. The client's host and scheme go
// along as X-Forwarded-Host and X-Forwarded-Proto so menu-svc builds image
// URLs the browser can reach.
func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	logger := zerolog.Ctx(r.Context())
	logger.Debug().Str("target", targetURL+r.URL.Path).Msg("Proxying request")

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create upstream request")
		http.Error(w, "Bad gateway", http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}
	for _, h := range hopHeaders {
		req.Header.Del(h)
	}
	req.ContentLength = r.ContentLength

	if req.Header.Get("X-Forwarded-Host") == "" {
		req.Header.Set("X-Forwarded-Host", r.Host)
	}
	if req.Header.Get("X-Forwarded-Proto") == "" {
		proto := "http"
		if r.TLS != nil {
			proto = "https"
		}
		req.Header.Set("X-Forwarded-Proto", proto)
	}
	if clientIP, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		if prior := r.Header.Get("X-Forwarded-For"); prior != "" {
			clientIP = prior + ", " + clientIP
		}
		req.Header.Set("X-Forwarded-For", clientIP)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		logger.Error().Err(err).Str("target", targetURL).Msg("Failed to proxy request")
		http.Error(w, "Upstream unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	for _, h := range hopHeaders {
		w.Header().Del(h)
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		logger.Warn().Err(err).Msg("Failed to copy upstream response")
	}
}

// menuPrefixes are served by menu-svc as-is.
var menuPrefixes = []string{"/auth/", "/restaurants/", "/uploads/"}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	// /api/cafe/{id}/menu is the public menu page's entry point.
	if strings.HasPrefix(path, "/api/cafe/") && strings.HasSuffix(path, "/menu") {
		parts := strings.Split(strings.Trim(path, "/"), "/")
		if len(parts) == 4 && parts[1] == "cafe" {
			r.URL.Path = "/restaurants/" + parts[2] + "/categories"
			zerolog.Ctx(r.Context()).Debug().Str("from", path).Str("to", r.URL.Path).Msg("Rewrote cafe menu path")
			g.ProxyRequest(w, r, g.config.MenuSvcURL)
			return
		}
	}

	if strings.HasPrefix(path, "/api/") {
		trimmed := strings.TrimPrefix(path, "/api")
		for _, prefix := range menuPrefixes {
			if strings.HasPrefix(trimmed, prefix) {
				r.URL.Path = trimmed
				g.ProxyRequest(w, r, g.config.MenuSvcURL)
				return
			}
		}
		zerolog.Ctx(r.Context()).Info().Str("path", path).Msg("Unmatched API route")
		http.Error(w, "API route not found", http.StatusNotFound)
		return
	}

	for _, prefix := range menuPrefixes {
		if strings.HasPrefix(path, prefix) {
			g.ProxyRequest(w, r, g.config.MenuSvcURL)
			return
		}
	}

	http.ServeFile(w, r, filepath.Join(g.config.FrontendDir, "index.html"))
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(g.config.FrontendDir))))
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}
