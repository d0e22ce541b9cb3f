// Package web provides the HTTP server and handlers for the conference
// program dashboard.
package web

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yuin/goldmark"

	"github.com/JonMunkholm/confdash/internal/config"
	"github.com/JonMunkholm/confdash/internal/core"
	webmw "github.com/JonMunkholm/confdash/internal/web/middleware"
)

//go:embed static
var staticFiles embed.FS

//go:embed about.md
var aboutMarkdown []byte

// Server is the HTTP server for the dashboard.
type Server struct {
	service   *core.Service
	cfg       *config.Config
	router    *chi.Mux
	server    *http.Server
	aboutHTML string
	limiters  []*rateLimiter
}

// NewServer assembles the middleware chain and routes, and renders the
// about page once up front.
func NewServer(service *core.Service, cfg *config.Config) (*Server, error) {
	var about bytes.Buffer
	if err := goldmark.New().Convert(aboutMarkdown, &about); err != nil {
		return nil, fmt.Errorf("render about page: %w", err)
	}

	s := &Server{
		service:   service,
		cfg:       cfg,
		router:    chi.NewRouter(),
		aboutHTML: about.String(),
	}
	s.setupMiddleware()
	if err := s.setupRoutes(); err != nil {
		return nil, err
	}
	return s, nil
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(webmw.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(webmw.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	// Security hardening
	s.router.Use(securityHeaders(s.cfg.Security.EnableCSP))

	if s.cfg.Rate.Enabled {
		limiter := newRateLimiter(s.cfg.Rate.RequestsPerMinute, time.Minute)
		s.limiters = append(s.limiters, limiter)
		s.router.Use(limiter.middleware)
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() error {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Pages
	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/sessions", http.StatusFound)
	})
	s.router.Get("/sessions", s.handleSessionsPage)
	s.router.Get("/talks", s.handleTalksPage)
	s.router.Get("/about", s.handleAboutPage)
	s.router.Get("/healthz", s.handleHealth)

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/sessions", s.handleAPISessions)
		r.Get("/talks", s.handleAPITalks)
		r.Get("/facets", s.handleAPIFacets)
		r.Get("/meta", s.handleAPIMeta)

		// Exports run the engines and stream a file, so they get a
		// stricter budget than the interactive endpoints.
		if s.cfg.Rate.Enabled {
			exportLimiter := newRateLimiter(s.cfg.Rate.ExportLimit, time.Minute)
			s.limiters = append(s.limiters, exportLimiter)
			r.With(exportLimiter.middleware).Get("/export/{view}", s.handleExport)
		} else {
			r.Get("/export/{view}", s.handleExport)
		}
	})
	return nil
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	slog.Info("server listening", "addr", s.cfg.Server.Addr())
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server and its limiter cleanup goroutines.
func (s *Server) Shutdown(ctx context.Context) error {
	for _, rl := range s.limiters {
		rl.close()
	}
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses.
func securityHeaders(enableCSP bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Prevent MIME type sniffing
			w.Header().Set("X-Content-Type-Options", "nosniff")

			// Prevent clickjacking
			w.Header().Set("X-Frame-Options", "DENY")

			// XSS protection (legacy but still useful for older browsers)
			w.Header().Set("X-XSS-Protection", "1; mode=block")

			// Content Security Policy. HTMX is loaded from unpkg;
			// everything else is same-origin.
			if enableCSP {
				w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self' https://unpkg.com; style-src 'self' 'unsafe-inline'; img-src 'self' data:; font-src 'self'")
			}

			// Control referrer information
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			next.ServeHTTP(w, r)
		})
	}
}

// rateLimiter implements a simple token bucket rate limiter per IP.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     int           // requests per window
	window   time.Duration // time window
	stop     chan struct{}
	stopOnce sync.Once
}

type visitor struct {
	tokens    int
	lastReset time.Time
}

// newRateLimiter creates a rate limiter with the specified rate per window.
func newRateLimiter(rate int, window time.Duration) *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		window:   window,
		stop:     make(chan struct{}),
	}
	// Start cleanup goroutine
	go rl.cleanup()
	return rl
}

// cleanup removes stale visitor entries every minute until close.
func (rl *rateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for ip, v := range rl.visitors {
				if time.Since(v.lastReset) > rl.window*2 {
					delete(rl.visitors, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// close stops the cleanup goroutine. Safe to call more than once.
func (rl *rateLimiter) close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// allow checks if the request should be allowed and consumes a token if so.
func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		rl.visitors[ip] = &visitor{
			tokens:    rl.rate - 1, // consume one token
			lastReset: time.Now(),
		}
		return true
	}

	// Reset tokens if window has passed
	if time.Since(v.lastReset) > rl.window {
		v.tokens = rl.rate - 1
		v.lastReset = time.Now()
		return true
	}

	// Check if we have tokens left
	if v.tokens <= 0 {
		return false
	}

	v.tokens--
	return true
}

// middleware returns an HTTP middleware that rate limits by IP.
// It keys on RemoteAddr, which TrustedRealIP has already resolved for
// trusted proxies; proxy headers on the request itself are never
// consulted here, so a direct client cannot rotate X-Real-IP to get a
// fresh bucket.
func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r.RemoteAddr)) {
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port from a host:port address. TrustedRealIP
// rewrites RemoteAddr to a bare IP for trusted proxies, so both forms
// arrive here.
func clientIP(remoteAddr string) string {
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}

// writeError writes a minimal JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	slog.Warn("request rejected", "status", status, "error", message)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":%q}`, message)
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
