// Command hexlogo-server serves generated logos over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/gogpu/hexlogo"
	"github.com/gogpu/hexlogo/internal/server"
)

func main() {
	var (
		addr       = flag.String("addr", ":3000", "listen address")
		entries    = flag.Int("cache-entries", 0, "cached bodies per shard (0 = default)")
		cacheBytes = flag.Int("cache-bytes", 0, "cached body bytes per shard (0 = default)")
		maxDim     = flag.Int("max-dimension", server.DefaultMaxDimension, "largest accepted width or height")
		debug      = flag.Bool("debug", false, "gin debug mode and debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	hexlogo.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{
		CacheEntries: *entries,
		CacheBytes:   *cacheBytes,
		MaxDimension: *maxDim,
		Logger:       logger,
	})
	if err := srv.Run(ctx, *addr); err != nil {
		fmt.Fprintln(os.Stderr, "hexlogo-server:", err)
		os.Exit(1)
	}
}
