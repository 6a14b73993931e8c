package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"member-qa/ai"
	"member-qa/feed"
	qahttp "member-qa/infrastructure/http"
	"member-qa/internal"
	"member-qa/observability"
	"member-qa/repositories"
	"member-qa/services"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so deferred cleanups always execute.
func run() (int, error) {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// 1. Snapshot cache (BadgerDB): in-memory unless a filepath is set.
	options := badger.DefaultOptions(config.CacheFilepath).
		WithLoggingLevel(badger.ERROR)
	if config.CacheFilepath == "" {
		options = options.WithInMemory(true)
	}
	db, err := badger.Open(options)
	if err != nil {
		return exitRuntime, fmt.Errorf("cache opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing snapshot cache...")
		_ = db.Close()
	}()

	// 2. Pipeline wiring
	stats := &observability.PipelineStats{}
	cache := repositories.NewSnapshotCache(db, config.FeedCacheTTL, logger)
	client := feed.NewClient(config.FeedURL, config.FeedTimeout, logger)
	provider := feed.NewSnapshotProvider(client, cache, stats, logger)
	builder := services.NewContextBuilder(config.ContextBudget, logger)
	generator := ai.NewGenerator(ai.GeneratorOptions{
		APIKey:      config.OpenAIAPIKey,
		BaseURL:     config.OpenAIBaseURL,
		Model:       config.OpenAIModel,
		Temperature: config.OpenAITemperature,
		MaxTokens:   config.OpenAIMaxTokens,
	}, logger)
	validator, err := services.NewGroundingValidator()
	if err != nil {
		return exitRuntime, fmt.Errorf("grounding validator init failed: %w", err)
	}
	service := services.NewQAService(
		provider, builder, generator, validator,
		stats, logger, config.GenerationTimeout,
	)

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. HTTP server
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{
		Addr:              address,
		Handler:           qahttp.NewRouter(service, stats, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server",
			"address", address,
			"model", config.OpenAIModel,
			"context_budget", config.ContextBudget,
			"cache_ttl", config.FeedCacheTTL)
		color.Greenln("🚀 member-qa listening on " + address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return exitRuntime, fmt.Errorf("shutdown error: %w", err)
	}
	return exitOK, nil
}
