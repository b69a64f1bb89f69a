// Package server assembles the HTTP surface: Connect services, health and
// metrics endpoints, and the optional static frontend.
package server

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/ArtysFactory/proofy/internal/anchor"
	"github.com/ArtysFactory/proofy/internal/auth"
	"github.com/ArtysFactory/proofy/internal/metrics"
	"github.com/ArtysFactory/proofy/internal/middleware"
	"github.com/ArtysFactory/proofy/internal/service"
	"github.com/ArtysFactory/proofy/internal/storage"
	"github.com/ArtysFactory/proofy/pkg/api/apiconnect"
)

// apiPrefix starts every Connect procedure path.
const apiPrefix = "/proofy.v1."

// Options holds everything the router wires together.
type Options struct {
	Store         storage.Store
	Authenticator auth.Authenticator
	JWT           *auth.JWTManager
	// Anchorer defaults to anchor.Disabled.
	Anchorer anchor.Anchorer
	// Metrics defaults to a fresh registry.
	Metrics *metrics.Metrics
	Logger  *slog.Logger

	// StaticPath, when set, is served at / with index.html as fallback.
	StaticPath string
	CORSOrigin string
}

// NewRouter returns the chi router with every route mounted.
func NewRouter(opts Options) (chi.Router, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.CORSOrigin == "" {
		opts.CORSOrigin = "*"
	}
	logger := opts.Logger

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(logger))
	r.Use(cors(opts.CORSOrigin))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())

	base := []connect.Interceptor{opts.Metrics.Interceptor(), middleware.LoggingInterceptor(logger)}
	optional := connect.WithInterceptors(append(base, middleware.OptionalAuth(opts.JWT))...)
	required := connect.WithInterceptors(append(base, middleware.RequireAuth(opts.JWT))...)

	mount := func(path string, h http.Handler) {
		r.Handle(path+"*", h)
	}
	mount(apiconnect.NewAuthServiceHandler(
		service.NewAuthService(opts.Authenticator, opts.JWT, opts.Store, logger), optional))
	mount(apiconnect.NewRightsServiceHandler(
		service.NewRightsService(logger), optional))
	mount(apiconnect.NewWorkServiceHandler(
		service.NewWorkService(opts.Store, opts.Anchorer, opts.Metrics, logger), required))
	mount(apiconnect.NewProofServiceHandler(
		service.NewProofService(opts.Store, logger), optional))

	if opts.StaticPath != "" {
		staticDir, err := filepath.Abs(opts.StaticPath)
		if err != nil {
			return nil, err
		}
		logger.Info("Serving static files", "path", staticDir)
		r.Handle("/*", staticFiles(staticDir))
	}

	return r, nil
}

// Handler wraps the router with h2c so Connect and gRPC clients can use
// HTTP/2 without TLS.
func Handler(opts Options) (http.Handler, error) {
	r, err := NewRouter(opts)
	if err != nil {
		return nil, err
	}
	return h2c.NewHandler(r, &http2.Server{}), nil
}

// NewHTTPServer returns an http.Server for addr with conservative timeouts.
func NewHTTPServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}

// staticFiles serves dir, falling back to index.html for unknown paths.
func staticFiles(dir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Unknown API procedures must not return the frontend.
		if strings.HasPrefix(r.URL.Path, apiPrefix) {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}
		filePath := filepath.Join(dir, filepath.Clean("/"+urlPath))

		if info, err := os.Stat(filePath); err != nil || info.IsDir() {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	})
}

// requestLogger logs every HTTP request with its status and duration.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Debug("Request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"remote_addr", r.RemoteAddr,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

// cors adds the headers browsers need to call Connect endpoints.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
			h.Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
