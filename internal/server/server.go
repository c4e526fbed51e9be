// Package server exposes logo generation over HTTP.
package server

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gogpu/hexlogo"
	"github.com/gogpu/hexlogo/internal/cache"
)

// Config configures a Server.
type Config struct {
	// CacheEntries and CacheBytes bound each cache shard; zero selects the
	// cache defaults.
	CacheEntries int
	CacheBytes   int

	// MaxDimension caps the width and height of rendered images.
	MaxDimension int

	// Logger receives request logs. Nil uses hexlogo.Logger().
	Logger *slog.Logger
}

// DefaultMaxDimension is used when Config.MaxDimension is not positive.
const DefaultMaxDimension = 2048

// Server routes requests to the generator and renderers.
type Server struct {
	router *gin.Engine
	cache  *cache.Cache
	log    *slog.Logger
	maxDim int
}

// New builds a Server and its routes.
func New(cfg Config) *Server {
	s := &Server{
		cache:  cache.New(cfg.CacheEntries, cfg.CacheBytes),
		log:    cfg.Logger,
		maxDim: cfg.MaxDimension,
	}
	if s.log == nil {
		s.log = hexlogo.Logger()
	}
	if s.maxDim <= 0 {
		s.maxDim = DefaultMaxDimension
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests())
	r.SetHTMLTemplate(template.Must(template.New("index").Parse(indexHTML)))

	r.GET("/", s.index)
	r.GET("/themes", s.themes)
	r.GET("/stats", s.stats)
	r.POST("/generate", s.generate)
	r.GET("/svg/:seed", s.serveSVG)
	r.GET("/png/:seed", s.servePNG)
	s.router = r
	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Cache returns the response cache.
func (s *Server) Cache() *cache.Cache {
	return s.cache
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	s.log.Info("server: listening", "addr", addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("server: shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// logRequests logs one line per request through slog.
func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		s.log.Log(c.Request.Context(), level, "server: request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"cache", c.Writer.Header().Get("X-Cache"),
			"latency", time.Since(start))
	}
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>hexlogo</title></head>
<body>
<h1>hexlogo</h1>
<p><img src="/svg/{{.Seed}}" width="256" height="256" alt="logo {{.Seed}}"></p>
<p>Seed {{.Seed}} &middot; <a href="/png/{{.Seed}}">PNG</a> &middot; <a href="/">another</a></p>
<p>Themes:{{range .Themes}} <a href="/svg/{{$.Seed}}?theme={{.}}">{{.}}</a>{{end}}</p>
</body>
</html>
`
