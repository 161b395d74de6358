// Package server is the thin host glue: it exposes the tree queries,
// the open-document command, and the change-event stream over HTTP and
// websocket. All design content lives in the core packages; this layer
// only adapts them to the wire.
package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tagfold/tagfold/internal/config"
	"github.com/tagfold/tagfold/internal/logging"
	"github.com/tagfold/tagfold/internal/middleware"
	"github.com/tagfold/tagfold/internal/monitoring"
	"github.com/tagfold/tagfold/internal/tree"
	"github.com/tagfold/tagfold/internal/vfs"
	"github.com/tagfold/tagfold/internal/watch"
)

// Server wraps the HTTP server and core dependencies.
type Server struct {
	router  *gin.Engine
	fs      *vfs.FS
	builder *tree.Builder
	sub     *watch.Subscription
	hub     *hub
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// New creates a server over the configured root directory.
func New(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("initializing tagfold server",
		zap.String("root", cfg.Root.Dir),
		zap.String("port", cfg.Server.Port),
	)

	metrics := monitoring.NewMetrics()
	fsys := vfs.New(logger)

	root := tree.Root{Scheme: cfg.Root.Scheme, Path: cfg.Root.Dir}
	builder := tree.NewBuilder(fsys, root, logger)

	sub, err := watch.Subscribe(cfg.Root.Dir, fsys, logger,
		watch.WithExcludes(cfg.Watch.Excludes...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to watch root: %w", err)
	}
	logger.Info("watching root", zap.String("subscription", sub.ID))

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS())
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	s := &Server{
		router:  router,
		fs:      fsys,
		builder: builder,
		sub:     sub,
		hub:     newHub(logger),
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}

	router.GET("/health", s.health)
	router.GET("/tree", s.treeTopLevel)
	router.GET("/tree/:tag", s.treeChildren)
	router.POST("/open", s.openDocument)
	router.GET("/search", s.search)
	router.GET("/stream", s.stream)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	go s.forwardEvents()

	return s, nil
}

// Handler exposes the router for tests and embedding hosts.
func (s *Server) Handler() http.Handler { return s.router }

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close tears down the watch subscription and stream clients.
func (s *Server) Close() error {
	s.logger.Info("shutting down server")
	err := s.sub.Close()
	s.hub.closeAll()
	return err
}

// forwardEvents fans the subscription's batches out to every connected
// stream client.
func (s *Server) forwardEvents() {
	for batch := range s.sub.Events() {
		for _, event := range batch {
			s.metrics.RecordWatchEvent(string(event.Kind))
		}
		s.hub.broadcast(batch)
	}
}
