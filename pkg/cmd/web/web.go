package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/igolaizola/songstudio/pkg/filestore"
	"github.com/igolaizola/songstudio/pkg/library"
	"github.com/igolaizola/songstudio/pkg/openai"
	"github.com/igolaizola/songstudio/pkg/studio"
	"go.uber.org/zap"
)

type Config struct {
	Debug  bool
	DBType string
	DBConn string
	FSType string
	FSConn string

	Addr        string
	Credentials map[string]string
	OpenAI      openai.Config
}

// Serve starts the studio API.
func Serve(ctx context.Context, cfg *Config) error {
	zap.S().Info("web: server started")
	defer zap.S().Info("web: server ended")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var opts []studio.Option
	if cfg.OpenAI.Token != "" {
		opts = append(opts, studio.WithGenerator(openai.New(&cfg.OpenAI)))
	} else {
		zap.S().Warn("web: no openai token, generation is disabled")
	}
	st, store, err := studio.Open(ctx, cfg.DBType, cfg.DBConn, cfg.Debug, opts...)
	if err != nil {
		return fmt.Errorf("web: %w", err)
	}
	defer func() { _ = store.Stop() }()

	var fs *filestore.Store
	if cfg.FSType != "" {
		fs, err = filestore.New(ctx, cfg.FSType, cfg.FSConn, cfg.Debug)
		if err != nil {
			return fmt.Errorf("web: couldn't create file storage: %w", err)
		}
	}

	// Create server
	host, portStr, ok := strings.Cut(cfg.Addr, ":")
	if !ok {
		return fmt.Errorf("web: invalid address: %s", cfg.Addr)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("web: invalid port: %s", portStr)
	}
	server := &http.Server{
		Addr: fmt.Sprintf("%s:%d", host, port),
		Handler: NewRouter(&Router{
			Studio:      st,
			Library:     library.New(store),
			Files:       fs,
			Credentials: cfg.Credentials,
			Debug:       cfg.Debug,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errC := make(chan error, 1)
	go func() {
		note := fmt.Sprintf("http://%s:%d", host, port)
		if host == "" {
			note = fmt.Sprintf("all interfaces http://localhost:%d", port)
		}
		zap.S().Infof("web: listening on %s", note)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- fmt.Errorf("web: couldn't start server: %w", err)
		}
		close(errC)
	}()

	select {
	case <-ctx.Done():
	case err := <-errC:
		return err
	}
	shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
	defer done()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web: couldn't shutdown server: %w", err)
	}
	return nil
}

// Router holds the dependencies of the API handlers.
type Router struct {
	Studio  *studio.Studio
	Library *library.Library
	// Files is optional. Without it cover uploads are rejected.
	Files       *filestore.Store
	Credentials map[string]string
	Debug       bool
}

// NewRouter builds the API router.
func NewRouter(rt *Router) http.Handler {
	mux := chi.NewRouter()

	mux.Use(middleware.RealIP)
	mux.Use(middleware.Recoverer)
	if len(rt.Credentials) > 0 {
		mux.Use(middleware.BasicAuth("private", rt.Credentials))
	}
	if rt.Debug {
		mux.Use(middleware.Logger)
	}

	mux.Route("/api", func(r chi.Router) {
		r.Get("/catalog", rt.getCatalog)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", rt.listProjects)
			r.Post("/", rt.createProject)
			r.Post("/import", rt.importProject)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", rt.getProject)
				r.Patch("/", rt.patchProject)
				r.Delete("/", rt.deleteProject)
				r.Get("/export", rt.exportProject)
				r.Post("/remix", rt.remixProject)

				r.Post("/structure/template", rt.applyTemplate)
				r.Post("/structure/blocks", rt.addBlock)
				r.Delete("/structure/blocks/{index}", rt.removeBlock)
				r.Post("/structure/blocks/{index}/move", rt.moveBlock)
				r.Put("/structure/blocks/{index}/description", rt.describeBlock)

				r.Post("/presets/{kind}", rt.applyPreset)
				r.Post("/variations/{index}/apply", rt.applyVariation)

				r.Post("/compose/{kind}", rt.compose)
				// Generation calls the backend and may take a while.
				r.With(middleware.Timeout(3*time.Minute)).Post("/generate/{kind}", rt.generate)
				r.Get("/generate/{kind}", rt.running)
				r.Post("/cover/upload", rt.uploadCover)
				r.Get("/cover", rt.downloadCover)
			})
		})

		r.Route("/library", func(r chi.Router) {
			r.Get("/presets", rt.listPresets)
			r.Post("/presets", rt.addPreset)
			r.Delete("/presets/{name}", rt.removePreset)
			r.Get("/prompts", rt.listPrompts)
			r.Post("/prompts", rt.addPrompt)
			r.Delete("/prompts/{name}", rt.removePrompt)
			r.Get("/artists/{list}", rt.listArtists)
			r.Post("/artists/{list}", rt.addArtist)
			r.Delete("/artists/{list}/{name}", rt.removeArtist)
		})
	})
	return mux
}
