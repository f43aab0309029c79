package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_text_heuristic/internal/adapters/logger"
	"github.com/baditaflorin/go_text_heuristic/internal/adapters/normalizer"
	"github.com/baditaflorin/go_text_heuristic/internal/config"
	"github.com/baditaflorin/go_text_heuristic/internal/ports"
	"github.com/baditaflorin/go_text_heuristic/pkg/scorer"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	port := flag.Int("port", config.DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", config.DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", config.DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", config.DefaultMaxRequestSize, "Maximum request size in bytes")
	concurrency := flag.Int("concurrency", 0, "Maximum number of concurrent requests (0 = fasthttp default)")
	batchConcurrency := flag.Int("batch-concurrency", runtime.NumCPU(), "Texts of one batch request scored in parallel")
	warmUp := flag.Bool("warm-up", true, "Perform system warm-up on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Server.Port = *port
		case "read-timeout":
			cfg.Server.ReadTimeout = *readTimeout
		case "write-timeout":
			cfg.Server.WriteTimeout = *writeTimeout
		case "max-request-size":
			cfg.Server.MaxRequestSize = *maxRequestSize
		case "concurrency":
			cfg.Server.Concurrency = *concurrency
		case "batch-concurrency":
			cfg.Server.BatchConcurrency = *batchConcurrency
		case "warm-up":
			cfg.Server.WarmUp = *warmUp
		case "log-file":
			cfg.Log.File = *logFile
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewFileStdLogger(cfg.Log.File, cfg.Log.JSON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting text heuristic HTTP server",
		"port", cfg.Server.Port,
		"read_timeout", cfg.Server.ReadTimeout,
		"write_timeout", cfg.Server.WriteTimeout,
		"max_request_size", cfg.Server.MaxRequestSize,
		"concurrency", cfg.Server.Concurrency,
		"batch_concurrency", cfg.Server.BatchConcurrency,
		"tracing", cfg.Server.Tracing.Enabled,
	)

	sc, err := newScorer(cfg, log)
	if err != nil {
		log.Error("Failed to initialize scorer", "error", err)
		os.Exit(1)
	}
	log.Info("Scorer initialized", "warm_up", cfg.Server.WarmUp, "cpus", runtime.NumCPU())

	tp, shutdownTracing, err := newTracerProvider(cfg.Server.Tracing, log)
	if err != nil {
		log.Error("Failed to initialize tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Error("Error shutting down tracing", "error", err)
		}
	}()

	srv := newServer(sc, log, tp, serverOptions{
		MaxBatchSize:     cfg.Server.MaxBatchSize,
		BatchConcurrency: cfg.Server.BatchConcurrency,
		BatchTimeout:     cfg.Server.WriteTimeout,
	})
	server := &fasthttp.Server{
		Handler:               srv.requestHandler,
		Name:                  "TextHeuristicServer",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		MaxRequestBodySize:    cfg.Server.MaxRequestSize,
		Concurrency:           cfg.Server.Concurrency,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			log.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Server listening", "address", addr)
	if err := server.ListenAndServe(addr); err != nil {
		log.Error("Server error", "error", err)
		return
	}

	<-idleConnsClosed
	log.Info("Server stopped")
}

func newScorer(cfg *config.Config, log ports.Logger) (*scorer.Scorer, error) {
	norm := normalizer.NewNormalizerFactory().CreateNormalizer(normalizer.ParseNormalizerType(cfg.Analysis.Normalizer))
	return scorer.New(
		scorer.WithPortsLogger(log),
		scorer.WithNormalizer(norm),
		scorer.WithMinRecommendedLength(cfg.Analysis.MinRecommendedLength),
		scorer.WithWarmUp(cfg.Server.WarmUp),
	)
}
