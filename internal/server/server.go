// Package server serves the diagram as server-rendered HTML, one presentation state per browser session.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	texttemplate "text/template"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/metaboschema/internal/assets"
	"github.com/at-ishikawa/metaboschema/internal/catalog"
	"github.com/at-ishikawa/metaboschema/internal/diagram"
	"github.com/at-ishikawa/metaboschema/internal/language"
	"github.com/at-ishikawa/metaboschema/internal/metrics"
	"github.com/at-ishikawa/metaboschema/internal/shell"
)

type Config struct {
	Port           int
	AllowedOrigins []string
	MaxSessions    int
}

// Dependencies are shared by every session. Clipboard and Exporter are called once per new session.
type Dependencies struct {
	Catalog  *catalog.Catalog
	Scene    *diagram.Scene
	Messages *language.Messages
	// Reference renders the print page. The embedded template is used when nil.
	Reference *texttemplate.Template
	Clipboard func() shell.Clipboard
	Exporter  func(sessionID string) shell.Exporter
	// Release frees what was created for a session, such as its export directory,
	// after the session is evicted.
	Release func(sessionID string)
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

type Server struct {
	cfg        Config
	deps       Dependencies
	logger     *slog.Logger
	sessions   *sessionStore
	pages      *template.Template
	markdown   goldmark.Markdown
	router     chi.Router
	httpServer *http.Server
}

func New(cfg Config, deps Dependencies) (*Server, error) {
	if deps.Catalog == nil || deps.Scene == nil || deps.Messages == nil {
		return nil, errors.New("catalog, scene and messages are required")
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}
	if deps.Reference == nil {
		tmpl, err := assets.ParseReferenceTemplate("")
		if err != nil {
			return nil, fmt.Errorf("assets.ParseReferenceTemplate() > %w", err)
		}
		deps.Reference = tmpl
	}

	pages, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("parsePages() > %w", err)
	}

	s := &Server{
		cfg:    cfg,
		deps:   deps,
		logger: deps.Logger,
		pages:  pages,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
	s.sessions, err = newSessionStore(cfg.MaxSessions, s.newShell, deps.Metrics.SetSessions, deps.Release)
	if err != nil {
		return nil, fmt.Errorf("newSessionStore() > %w", err)
	}
	// Fail at startup rather than on the first request when the catalog does not cover the diagram.
	if _, err := shell.New(deps.Catalog, deps.Scene, deps.Messages); err != nil {
		return nil, fmt.Errorf("shell.New() > %w", err)
	}

	s.router = s.buildRouter()
	return s, nil
}

func (s *Server) newShell(sessionID string) (*shell.Shell, error) {
	opts := []shell.Option{
		shell.WithLogger(s.logger.With(slog.String("session", sessionID))),
	}
	if s.deps.Clipboard != nil {
		opts = append(opts, shell.WithClipboard(s.deps.Clipboard()))
	}
	if s.deps.Exporter != nil {
		opts = append(opts, shell.WithExporter(s.deps.Exporter(sessionID)))
	}
	return shell.New(s.deps.Catalog, s.deps.Scene, s.deps.Messages, opts...)
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         3600,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", s.deps.Metrics.Handler())

	r.Get("/", s.withSession(s.handleIndex))
	r.Post("/regions/{id}", s.withSession(s.handleRegion))
	r.Post("/click", s.withSession(s.handleClick))
	r.Post("/language", s.withSession(s.handleLanguage))
	r.Post("/copy", s.withSession(s.handleCopy))
	r.Get("/export.pdf", s.withSession(s.handleExport))
	r.Get("/print", s.withSession(s.handlePrint))
	r.Get("/diagram.svg", s.withSession(s.handleDiagram))
	r.Get("/api/state", s.withSession(s.handleState))

	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured port and blocks until the server is shut down.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           h2c.NewHandler(s.router, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("metaboschema server listening", slog.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.ListenAndServe() > %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(ctx)
	}
	s.sessions.wait()
	return err
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
