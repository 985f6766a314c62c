// ABOUTME: Main entry point for the talk search API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talk-search-api/api"
	"talk-search-api/api/handlers"
	"talk-search-api/api/middleware"
	"talk-search-api/core/interfaces"
	"talk-search-api/core/projects"
	"talk-search-api/core/search"
	logruslogger "talk-search-api/infrastructure/logger/logrus"
	"talk-search-api/infrastructure/talk"
	"talk-search-api/pkg/config"
	"talk-search-api/pkg/featureflags"
	"talk-search-api/pkg/poll"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logruslogger.New(logruslogger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	flags := featureflags.NewEnvManager("FEATURE_")

	logger.Info("Starting Talk Search API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"talk_base_url": cfg.Talk.BaseURL,
		"page_size":     cfg.Talk.PageSize,
		"max_page_span": cfg.Talk.MaxPageSpan,
		"flags":         flags.GetAllFlags(),
	})

	// Outbound requests are logged and carry the inbound request id
	httpClient := talk.NewHTTPClient(cfg.Talk.RequestTimeout, &middleware.LoggingRoundTripper{
		Transport: http.DefaultTransport,
		Logger:    logger,
	})

	deps := interfaces.Dependencies{
		HTTPClient:  httpClient,
		Discussions: talk.NewClient(httpClient, cfg.Talk.BaseURL),
		Logger:      logger,
	}
	searchService := search.NewSearchService(deps,
		search.WithDefaultPageSize(cfg.Talk.PageSize),
		search.WithMaxPageSpan(cfg.Talk.MaxPageSpan),
	)

	registry, err := projects.LoadFile(cfg.Projects.LinksFile)
	if err != nil {
		logger.Error("Failed to load project links", map[string]interface{}{
			"file":  cfg.Projects.LinksFile,
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// rate_limit_enabled is read per request, so the limiter always exists
	apiConfig := api.APIConfig{
		Logger:     logger,
		Flags:      flags,
		RateLimit:  cfg.RateLimit.Requests,
		RateWindow: cfg.RateLimit.Window,
	}
	humaAPI, router, limiter := api.NewServerAPI(apiConfig)
	if limiter != nil {
		defer limiter.Stop()
	}

	handlers.NewSearchHandler(searchService, flags).RegisterRoutes(humaAPI)
	handlers.NewSubjectHandler(flags).RegisterRoutes(humaAPI)
	handlers.NewProjectHandler(registry, flags).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(api.Version, flags).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		log.Fatalf("Server failed to listen: %v", err)
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	go announceReady(logger, "http://"+listener.Addr().String()+"/health")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

// announceReady logs once the health endpoint answers
func announceReady(logger interfaces.Logger, healthURL string) {
	client := &http.Client{Timeout: time.Second}
	err := poll.UntilReady(context.Background(), 100*time.Millisecond, 10*time.Second, func(ctx context.Context) bool {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL, nil)
		if err != nil {
			return false
		}
		resp, err := client.Do(req)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	})
	if err != nil {
		logger.Warn("Health check did not pass after start", map[string]interface{}{
			"url":   healthURL,
			"error": err.Error(),
		})
		return
	}
	logger.Info("Server ready", map[string]interface{}{"url": healthURL})
}
