// Package web serves the portfolio page and a small preferences API. Every
// response is rendered from the shared preference store, so the terminal and
// the browser always agree on the chosen modes.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/iiroan/folio/internal/ambient"
	"github.com/iiroan/folio/internal/content"
	"github.com/iiroan/folio/internal/prefs"
)

const (
	// HintColorScheme is the client hint carrying the browser's colour scheme.
	HintColorScheme = "Sec-CH-Prefers-Color-Scheme"

	maxRequestBodySize = 1 << 16
	shutdownTimeout    = 5 * time.Second
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Server renders the portfolio for a preference store.
type Server struct {
	addr    string
	store   *prefs.Store
	profile *content.Profile
	logger  *log.Logger
	tmpl    *template.Template
	handler http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.addr = addr
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New builds a server. The profile must not be nil.
func New(store *prefs.Store, profile *content.Profile, opts ...Option) (*Server, error) {
	if store == nil {
		return nil, errors.New("web: nil preference store")
	}
	if profile == nil {
		return nil, errors.New("web: nil profile")
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"markdown": markdown,
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		addr:    "127.0.0.1:8080",
		store:   store,
		profile: profile,
		logger:  log.Default(),
		tmpl:    tmpl,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.handler = s.routes()
	return s, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.addr }

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.handler }

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(advertiseHints)

	r.Get("/", s.handleIndex)
	r.Post("/preferences", s.handleForm)
	r.Get("/healthz", handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/preferences", s.handleGetPreferences)
		r.Put("/preferences", s.handlePutPreferences)
	})
	return r
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener. The listener is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("serving portfolio", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Debug("shutting down web server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func advertiseHints(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-CH", HintColorScheme)
		w.Header().Add("Vary", HintColorScheme)
		next.ServeHTTP(w, r)
	})
}

// RequestAmbient reads the colour scheme hint of r. Browsers that send no
// hint render light.
func RequestAmbient(r *http.Request) prefs.Ambient {
	value := strings.Trim(strings.TrimSpace(r.Header.Get(HintColorScheme)), `"`)
	dark, _ := ambient.ParseScheme(value)
	return prefs.Fixed(dark)
}

func (s *Server) snapshot(r *http.Request) prefs.Snapshot {
	return prefs.Resolve(s.store.Preferences(), RequestAmbient(r))
}
