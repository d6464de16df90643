package preview

import (
	"bytes"
	"context"
	"html"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/element"
	"github.com/vango-dev/markup/pkg/render"
	"github.com/vango-dev/markup/pkg/tree"
)

// SourcePrefix serves the decoded tree of a document re-encoded as YAML.
const SourcePrefix = "/_markup/source"

// Options configures the preview server.
type Options struct {
	// Dir holds the tree documents.
	Dir string

	// Addr is the listen address used by Run.
	Addr string

	// Renderer renders documents. Defaults to a renderer with cycle
	// detection and the default depth limit.
	Renderer *render.Renderer

	// Gatherer is exposed on /metrics when non-nil.
	Gatherer prometheus.Gatherer

	// LiveReload injects the reload script and watches Dir.
	LiveReload bool

	// WatchInterval is the polling interval of the document watcher.
	WatchInterval time.Duration

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Server is the preview server.
type Server struct {
	options    Options
	logger     *slog.Logger
	renderer   *render.Renderer
	router     chi.Router
	reload     *ReloadServer
	watcher    *Watcher
	mu         sync.Mutex
	httpServer *http.Server
}

// NewServer creates a new preview server.
func NewServer(options Options) *Server {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	renderer := options.Renderer
	if renderer == nil {
		renderer = render.NewRenderer(render.RendererConfig{
			MaxDepth:     256,
			DetectCycles: true,
			Logger:       logger,
		})
	}

	s := &Server{
		options:  options,
		logger:   logger,
		renderer: renderer,
	}
	if options.LiveReload {
		s.reload = NewReloadServer()
		s.watcher = NewWatcher(WatcherConfig{
			Dir:      options.Dir,
			Interval: options.WatchInterval,
		})
		s.watcher.OnChange(s.documentChanged)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})
	if s.options.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.options.Gatherer, promhttp.HandlerOpts{}))
	}
	if s.reload != nil {
		r.Get(ReloadPath, s.reload.HandleWebSocket)
	}
	r.Get(SourcePrefix+"/*", s.handleSource)
	r.Get("/*", s.handleDocument)
	return r
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Reloads returns the live-reload hub, or nil when live reload is off.
func (s *Server) Reloads() *ReloadServer {
	return s.reload
}

// Run serves on Options.Addr until ctx is done, then shuts down.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.options.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	httpServer := s.httpServer
	s.mu.Unlock()

	if s.watcher != nil {
		go s.watcher.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", ln.Addr().String(), "dir", s.options.Dir)
		if err := httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.stop()
		return err
	case <-ctx.Done():
	}

	s.stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (s *Server) stop() {
	if s.watcher != nil {
		s.watcher.Stop()
	}
	if s.reload != nil {
		s.reload.Close()
	}
}

// documentChanged validates the changed document and notifies browsers.
func (s *Server) documentChanged(file string) {
	if _, err := os.Stat(file); err == nil {
		if _, err := tree.DecodeFile(file); err != nil {
			s.logger.Warn("document invalid", "file", file, "error", err)
			s.reload.NotifyError(file, err.Error())
			return
		}
	}
	s.logger.Info("document changed", "file", file, "clients", s.reload.ClientCount())
	s.reload.NotifyReload(file)
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	root, err := s.load(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if s.reload != nil {
		injectReloadScript(root)
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderDocument(r.Context(), &buf, root); err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleSource(w http.ResponseWriter, r *http.Request) {
	root, err := s.load(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := tree.Encode(&buf, root); err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) load(r *http.Request) (*element.Element, error) {
	file, ok := s.resolve(chi.URLParam(r, "*"))
	if !ok {
		return nil, errors.New("M022").
			WithDetail("No tree document for " + r.URL.Path)
	}
	return tree.DecodeFile(file)
}

// resolve maps a URL path below the server root to a document file.
func (s *Server) resolve(urlPath string) (string, bool) {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" || strings.HasSuffix(urlPath, "/") {
		name = path.Join(name, "index")
	}
	name = filepath.FromSlash(name)
	if !filepath.IsLocal(name) {
		return "", false
	}

	candidates := []string{name}
	if !IsDocument(name) {
		candidates = candidates[:0]
		for _, ext := range DocumentExtensions {
			candidates = append(candidates, name+ext)
		}
	}
	for _, c := range candidates {
		file := filepath.Join(s.options.Dir, c)
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			return file, true
		}
	}
	return "", false
}

// injectReloadScript adds the reload client to the document body, or to
// the root when the document has no body.
func injectReloadScript(root *element.Element) {
	target := root
	if root.Tag() == "html" {
		for _, child := range root.Children() {
			if child.Tag() == "body" {
				target = child
				break
			}
		}
	}
	if target.IsVoid() {
		return
	}
	target.AddChild(ReloadScript())
}

// StatusFor maps an error to the HTTP status of its response.
func StatusFor(err error) int {
	switch errors.Code(err) {
	case "M022":
		return http.StatusNotFound
	case "M020", "M021":
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("preview failed", "path", r.URL.Path, "error", err)
	}

	page := errorPage(status, err)
	if s.reload != nil {
		injectReloadScript(page)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(render.Doctype))
	page.WriteTo(w)
}

// errorPage builds the HTML shown for a failed request.
func errorPage(status int, err error) *element.Element {
	page := element.New("html", element.Attr{Key: "lang", Value: "en"})
	head := page.SpawnChild("head")
	head.SpawnChild("meta", element.Attr{Key: "charset", Value: "utf-8"})
	head.SpawnChild("title").SetContent(http.StatusText(status))

	body := page.SpawnChild("body")
	body.SpawnChild("h1").SetContent(http.StatusText(status))
	if code := errors.Code(err); code != "" {
		body.SpawnChild("p").
			AddClass("code").
			SetContent(code)
	}
	body.SpawnChild("pre").SetContent(html.EscapeString(err.Error()))
	return page
}

// requestLogger logs each request with slog once the response is written.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
