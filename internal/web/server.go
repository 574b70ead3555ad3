// Package web serves the ProXPL site: the landing page, the documentation
// browser driven by per-session navigation state, the playground, and a
// small JSON API over the same operations.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yuin/goldmark"

	"github.com/proxpl/proxsite/internal/docs"
	"github.com/proxpl/proxsite/internal/llm"
	"github.com/proxpl/proxsite/internal/playground"
	"github.com/proxpl/proxsite/internal/session"
)

// Options wires a Server to its collaborators.
type Options struct {
	Name       string
	BaseURL    string
	Index      *docs.Index
	Sessions   *session.Store
	Compiler   *playground.Compiler
	Generator  llm.Generator // nil disables generation
	SessionTTL time.Duration
	// Quiet drops the per-request access log.
	Quiet bool
}

// Server holds the parsed templates and the markdown renderer.
type Server struct {
	opts  Options
	pages map[string]*template.Template
	md    goldmark.Markdown
}

// New validates opts and parses the embedded templates.
func New(opts Options) (*Server, error) {
	if opts.Index == nil {
		return nil, errors.New("web: docs index is required")
	}
	if opts.Sessions == nil {
		return nil, errors.New("web: session store is required")
	}
	if opts.Compiler == nil {
		opts.Compiler = playground.NewCompiler(0)
	}
	if opts.Name == "" {
		opts.Name = "ProXPL"
	}
	pages, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("web: parsing templates: %w", err)
	}
	return &Server{opts: opts, pages: pages, md: newMarkdown()}, nil
}

// Handler returns the site's router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if !s.opts.Quiet {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", s.handleHome)

	r.Route("/docs", func(r chi.Router) {
		r.Get("/", s.handleOverview)
		r.Get("/back", s.handleBack)
		r.Get("/{topic}", s.handleTopic)
		r.Get("/{topic}/prev", s.handleStep(false))
		r.Get("/{topic}/next", s.handleStep(true))
	})

	r.Route("/playground", func(r chi.Router) {
		r.Get("/", s.handlePlayground)
		r.Post("/run", s.handleRun)
		r.Post("/generate", s.handleGenerate)
		r.Post("/clear", s.handleClear)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/docs", s.apiOverview)
		r.Get("/docs/{topic}", s.apiTopic)
		r.Get("/playground/presets", s.apiPresets)
		r.Post("/playground/run", s.apiRun)
		r.Post("/playground/generate", s.apiGenerate)
	})

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
// Expired sessions are swept in the background while serving.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       60 * time.Second,
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.sweep(sweepCtx)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("%s listening on %s", s.opts.Name, addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Printf("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) sweep(ctx context.Context) {
	if s.opts.SessionTTL <= 0 {
		return
	}
	interval := s.opts.SessionTTL / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.opts.Sessions.Sweep()
			if err != nil {
				log.Printf("session sweep: %v", err)
			} else if n > 0 {
				log.Printf("session sweep: removed %d expired", n)
			}
		}
	}
}
