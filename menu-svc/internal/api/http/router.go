package httpapi

import (
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"qrmenu-backend/menu-svc/internal/assets"
	"qrmenu-backend/menu-svc/internal/metrics"
)

// NewRouter wires the API, the static uploads tree under uploadsRoot and
// the shared middleware.
func NewRouter(handler *Handler, uploadsRoot string, recorder *metrics.Recorder) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	uploads := http.Dir(filepath.Join(uploadsRoot, assets.UploadsDir))
	r.PathPrefix("/" + assets.UploadsDir + "/").
		Handler(http.StripPrefix("/"+assets.UploadsDir+"/", http.FileServer(uploads))).
		Methods("GET", "HEAD")

	r.Use(Recover)
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	return RequestLogger(recorder)(c.Handler(r))
}
