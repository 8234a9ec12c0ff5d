// Package server implements the HTTP server and routing logic.
package server

import (
	"io"
	"io/fs"
	"net/http"
	"strings"

	"github.com/maruel/showcase/internal/server/handlers"
)

// NewRouter creates and configures the HTTP router.
// Serves API endpoints at /api/* and the static frontend from public at /.
// public may be nil, in which case only the API is served.
func NewRouter(svc *handlers.Services, cfg *handlers.Config, public fs.FS) http.Handler {
	mux := &http.ServeMux{}
	csh := handlers.NewCaseStudyHandler(svc)
	ah := handlers.NewAnalyzeHandler(svc)
	relh := handlers.NewRelatedHandler(svc)
	rech := handlers.NewRecommendHandler(svc, cfg)
	sh := &handlers.SchemaHandler{}

	// Health check
	hh := handlers.NewHealthHandler(cfg.Version)
	mux.Handle("GET /api/health", Wrap(hh.Health, cfg))

	// Chat endpoints, as consumed by the frontend
	mux.Handle("GET /api/chat", Wrap(csh.ListAll, cfg))
	mux.Handle("PUT /api/chat", Wrap(csh.Filter, cfg))
	mux.Handle("POST /api/chat", Wrap(ah.Analyze, cfg))

	// Case study endpoints
	mux.Handle("GET /api/case-studies", Wrap(csh.ListAll, cfg))
	mux.Handle("POST /api/case-studies/filter", Wrap(csh.Filter, cfg))
	mux.Handle("POST /api/related", Wrap(relh.RelatedEntities, cfg))

	// Recommendation endpoints
	mux.Handle("GET /api/recommendations", Wrap(rech.Info, cfg))
	mux.Handle("POST /api/recommendations", Wrap(rech.Recommend, cfg))

	// Request schemas
	mux.Handle("GET /api/schema/{name}", Wrap(sh.Schema, cfg))

	if public != nil {
		mux.Handle("GET /", NewSPAHandler(public))
	}
	return RequestMiddleware(mux)
}

// SPAHandler serves a single-page application with fallback to index.html.
type SPAHandler struct {
	fs fs.FS
}

// NewSPAHandler creates a handler for the frontend files in f.
func NewSPAHandler(f fs.FS) *SPAHandler {
	return &SPAHandler{fs: f}
}

// ServeHTTP implements http.Handler for SPA routing.
func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		http.NotFound(w, r)
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/")
	if name == "" {
		name = "."
	}
	if st, err := fs.Stat(h.fs, name); err == nil {
		if !st.IsDir() && containsDot(r.URL.Path) {
			w.Header().Set("Cache-Control", "public, max-age=3600")
		}
		http.FileServerFS(h.fs).ServeHTTP(w, r)
		return
	}

	// Unknown path: fall back to index.html for client-side routing.
	indexFile, err := h.fs.Open("index.html")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer func() { _ = indexFile.Close() }()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	_, _ = io.Copy(w, indexFile)
}

// containsDot checks if the last path element has a file extension.
func containsDot(path string) bool {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return false
		}
		if path[i] == '.' {
			return true
		}
	}
	return false
}
