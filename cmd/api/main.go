package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud-advisor-chat/config"
	_ "cloud-advisor-chat/docs" // Swagger docs
	"cloud-advisor-chat/internal/agent"
	"cloud-advisor-chat/internal/agent/agents"
	"cloud-advisor-chat/internal/cache"
	"cloud-advisor-chat/internal/classifier"
	"cloud-advisor-chat/internal/confidence"
	"cloud-advisor-chat/internal/executor"
	"cloud-advisor-chat/internal/httpserver"
	"cloud-advisor-chat/internal/livefeed"
	"cloud-advisor-chat/internal/middleware"
	chatDelivery "cloud-advisor-chat/internal/orchestrator/delivery/http"
	"cloud-advisor-chat/internal/orchestrator/usecase"
	"cloud-advisor-chat/internal/planner"
	"cloud-advisor-chat/internal/quality"
	"cloud-advisor-chat/pkg/llmprovider"
	"cloud-advisor-chat/pkg/log"
)

// @title       Cloud Advisor Chat API
// @description LLM-orchestrated cloud cost advisory chat with intent routing, agent pipelines, and response caching.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Cloud Advisor Chat...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM provider chains
	llm, err := buildManager(&cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}

	// Auxiliary chain scores answers with a different, cheaper model.
	aux := llm
	if len(cfg.AuxLLM.Providers) > 0 {
		aux, err = buildManager(&cfg.AuxLLM, logger)
		if err != nil {
			logger.Warnf(ctx, "Aux LLM chain unavailable, reusing primary for scoring: %v", err)
			aux = llm
		}
	}

	// 4. Agents
	registry := agent.NewRegistry()
	registry.Register(agents.NewResearcher(llm, logger))
	registry.Register(agents.NewDomainExpert(llm, logger))
	registry.Register(agents.NewAnalyst(llm, logger))
	registry.Register(agents.NewValidator(llm, logger))
	engine := agent.NewEngine(registry, logger)
	logger.Infof(ctx, "Registered agents: %v", registry.Names())

	// 5. Pipeline components
	cm := confidence.New()
	cls := classifier.New(llm, logger)
	pl := planner.New(cm)

	stepTimeout := executor.DefaultStepTimeout
	if d, tErr := time.ParseDuration(cfg.Orchestrator.StepTimeout); tErr == nil && d > 0 {
		stepTimeout = d
	}
	ex := executor.New(registry, engine, stepTimeout, logger)
	ev := quality.New(logger, aux)

	// 6. Response cache
	store, err := buildCache(ctx, cfg.Cache)
	if err != nil {
		logger.Error(ctx, "Failed to initialize cache: ", err)
		return
	}
	logger.Infof(ctx, "Cache backend: %s", cfg.Cache.Backend)

	// 7. Live trace feed
	feed := livefeed.NewHub(logger)

	// 8. Orchestrator
	uc := usecase.New(logger, llm, cls, cm, pl, ex, ev, store, feed, usecase.Options{
		AdvancedPlanning: cfg.Orchestrator.AdvancedPlanning,
	})
	chatHandler := chatDelivery.New(logger, uc)

	// 9. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatHandler: chatHandler,
		RateLimiter: middleware.NewRateLimiter(cfg.Orchestrator.RateLimitPerMin),
		Feed:        feed,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// buildManager turns one configured provider chain into a Manager.
func buildManager(cfg *config.LLMConfig, logger log.Logger) (*llmprovider.Manager, error) {
	providers, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		return nil, err
	}

	retryDelay, _ := time.ParseDuration(cfg.RetryDelay)
	maxTotal, _ := time.ParseDuration(cfg.MaxTotalTimeout)

	return llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, logger), nil
}

// buildCache picks the configured cache backend.
func buildCache(ctx context.Context, cfg config.CacheConfig) (cache.Store, error) {
	switch cfg.Backend {
	case "redis":
		return cache.NewRedis(ctx, cache.RedisConfig{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	default:
		return cache.NewMemory(), nil
	}
}
