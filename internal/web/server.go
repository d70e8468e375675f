package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/dshills/tonetint/internal/classifier"
	"github.com/dshills/tonetint/internal/tonetint"
)

// ErrModelNotOffered is returned for form model names outside the offered list
var ErrModelNotOffered = errors.New("model not offered")

// Download file names
const (
	HTMLDownloadName = "analyzed_text.html"
	PDFDownloadName  = "analyzed_text.pdf"
)

// ModelResolver returns the sentiment model for a name picked in the form.
// An empty name selects the default model.
type ModelResolver func(name string) (classifier.Model, error)

// Options configures the web demo
type Options struct {
	Addr     string
	Config   tonetint.Config // Base visualizer configuration
	Models   []string        // Model names offered in the form
	Resolver ModelResolver   // nil always uses the default model
	Logger   *zap.Logger
}

// Server is the browser demo: a form, rendered output and downloads
type Server struct {
	addr     string
	config   tonetint.Config
	model    classifier.Model
	models   []string
	resolver ModelResolver
	logger   *zap.Logger
	router   *gin.Engine

	// One analysis at a time
	sem *semaphore.Weighted

	mu       sync.Mutex
	resolved map[string]classifier.Model
}

// NewServer creates the web demo around a default model
func NewServer(model classifier.Model, opts Options) (*Server, error) {
	if model == nil {
		return nil, errors.New("sentiment model is required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	cfg := opts.Config
	cfg.Save = false
	cfg.Open = false
	if _, err := tonetint.New(cfg, model); err != nil {
		return nil, err
	}

	models := opts.Models
	if len(models) == 0 {
		models = []string{model.Model()}
	}

	s := &Server{
		addr:     opts.Addr,
		config:   cfg,
		model:    model,
		models:   models,
		resolver: opts.Resolver,
		logger:   opts.Logger,
		sem:      semaphore.NewWeighted(1),
		resolved: make(map[string]classifier.Model),
	}
	s.router = s.buildRouter()

	return s, nil
}

// Handler returns the HTTP handler of the demo
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) buildRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(s.logger))
	router.SetHTMLTemplate(pageTemplate)

	router.GET("/", s.handleIndex)
	router.POST("/analyze", s.handleAnalyze)
	router.POST("/download/html", s.handleDownloadHTML)
	router.POST("/download/pdf", s.handleDownloadPDF)
	router.GET("/healthz", s.handleHealth)

	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute, // Cold HuggingFace models are slow
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web demo", zap.String("address", fmt.Sprintf("http://%s", s.addr)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("web server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("web demo stopped")
	return nil
}

// modelFor resolves and memoizes the model picked in the form. Only names
// offered in the form are resolved.
func (s *Server) modelFor(name string) (classifier.Model, error) {
	if name == "" || name == s.model.Model() {
		return s.model, nil
	}
	if !slices.Contains(s.models, name) {
		return nil, ErrModelNotOffered
	}
	if s.resolver == nil {
		return s.model, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if m, ok := s.resolved[name]; ok {
		return m, nil
	}
	m, err := s.resolver(name)
	if err != nil {
		return nil, err
	}
	s.resolved[name] = m
	return m, nil
}

// Close releases every model the server created
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, m := range s.resolved {
		errs = append(errs, m.Close())
	}
	s.resolved = make(map[string]classifier.Model)
	return errors.Join(errs...)
}

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}
