package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alnah/go-byline/internal/fileutil"
)

// Server timeouts.
const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// outcomeHeader reports what the injector did for an HTML response.
const outcomeHeader = "X-Byline-Outcome"

// pageServer serves a directory of rendered pages, decorating HTML on the way out.
type pageServer struct {
	root       fs.FS
	decorator  Decorator
	trustProxy bool
	logger     *slog.Logger
}

// routes builds the chi router for the page server.
func (s *pageServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	r.Use(requestLogger(s.logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Get("/*", s.servePage)

	return r
}

// servePage maps the request path into root. Directories serve their
// index.html; HTML is decorated; everything else is served as is.
func (s *pageServer) servePage(w http.ResponseWriter, r *http.Request) {
	name, ok := cleanName(chi.URLParam(r, "*"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	info, err := fs.Stat(s.root, name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if info.IsDir() {
		if !strings.HasSuffix(r.URL.Path, "/") {
			http.Redirect(w, r, r.URL.Path+"/", http.StatusMovedPermanently)
			return
		}
		name = path.Join(name, "index.html")
		if info, err = fs.Stat(s.root, name); err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}
	}

	if !fileutil.IsHTML(name) {
		http.ServeFileFS(w, r, s.root, name)
		return
	}

	data, err := fs.ReadFile(s.root, name)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	body := string(data)
	origin := requestOrigin(r, s.trustProxy)
	res, err := s.decorator.Decorate(r.Context(), body, origin)
	switch {
	case err != nil:
		s.logger.Warn("serving page undecorated", "path", name, "error", err)
	default:
		body = res.HTML
		w.Header().Set(outcomeHeader, res.Outcome.String())
		if res.Err != nil {
			s.logger.Debug("byline skipped", "path", name, "outcome", res.Outcome.String(), "error", res.Err)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeContent(w, r, name, info.ModTime(), strings.NewReader(body))
}

// cleanName turns a wildcard URL path into an fs.FS name.
// Paths with ".." segments are rejected rather than clamped.
func cleanName(p string) (string, bool) {
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", false
		}
	}
	name := strings.TrimPrefix(path.Clean("/"+p), "/")
	if name == "" {
		name = "."
	}
	return name, fs.ValidPath(name)
}

// requestOrigin returns scheme://host for the request. Forwarded headers
// are honored only when trustProxy is set.
func requestOrigin(r *http.Request, trustProxy bool) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	host := r.Host

	if trustProxy {
		if p := firstHeaderValue(r.Header.Get("X-Forwarded-Proto")); p != "" {
			scheme = strings.ToLower(p)
		}
		if h := firstHeaderValue(r.Header.Get("X-Forwarded-Host")); h != "" {
			host = h
		}
	}
	return scheme + "://" + host
}

// firstHeaderValue returns the first comma-separated value, trimmed.
func firstHeaderValue(v string) string {
	first, _, _ := strings.Cut(v, ",")
	return strings.TrimSpace(first)
}

// requestLogger logs one debug line per request.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start).Round(time.Microsecond),
			)
		})
	}
}

// runServeCmd serves a directory with bylines injected per request until
// the context is canceled.
func runServeCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected one directory, got %d", ErrUsage, len(positional))
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeBylineFlags(flags.set, &flags.byline, cfg)
	if flags.addr != "" {
		cfg.Serve.Addr = flags.addr
	}
	switch {
	case len(positional) == 1:
		cfg.Serve.Root = positional[0]
	case flags.root != "":
		cfg.Serve.Root = flags.root
	}
	if cfg.Serve.Root == "" {
		return ErrNoInput
	}

	info, err := os.Stat(cfg.Serve.Root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrUsage, cfg.Serve.Root)
	}

	logger := env.Logger(flags.common.quiet, flags.common.verbose)
	injector, err := newInjector(cfg, logger, styleOverride(flags.set, &flags.byline))
	if err != nil {
		return err
	}

	ps := &pageServer{
		root:       os.DirFS(cfg.Serve.Root),
		decorator:  injector,
		trustProxy: flags.trustProxy,
		logger:     logger,
	}

	ln, err := net.Listen("tcp", cfg.Serve.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", cfg.Serve.Addr, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Serving %s on http://%s\n", cfg.Serve.Root, ln.Addr())
	}
	return serve(ctx, ln, ps.routes(), logger)
}

// serve runs an HTTP server on ln and shuts it down gracefully when ctx ends.
func serve(ctx context.Context, ln net.Listener, h http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	logger.Debug("server stopped")
	return nil
}
