package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/joho/godotenv"

	"enhancer/internal/catalog"
	"enhancer/internal/credentials"
	"enhancer/internal/dispatch"
	"enhancer/internal/http/handlers"
	httpapi "enhancer/internal/http/httpapi"
	"enhancer/internal/infra"
	"enhancer/internal/providers"
	"enhancer/internal/providers/image"
	"enhancer/internal/providers/text"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	// One retrying client shared by every provider adapter.
	retry := retryablehttp.NewClient()
	retry.RetryMax = 3
	retry.RetryWaitMax = 5 * time.Second
	retry.Logger = nil
	retry.HTTPClient.Timeout = providers.DefaultTimeout
	httpClient := retry.StandardClient()

	resolver, err := newResolver(cfg, httpClient, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build credential resolver")
	}

	dispatcher, err := dispatch.NewService(dispatch.ServiceOptions{
		TextEnhancers:   textEnhancers(httpClient, logger),
		ImageGenerators: imageGenerators(cfg, httpClient, logger),
		Resolver:        resolver,
		Logger:          logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build dispatcher")
	}

	analyzer := text.NewOpenAI(text.Options{HTTPClient: httpClient, Logger: logger})
	app := handlers.NewApp(dispatcher, resolver, analyzer, logger)

	router := httpapi.NewRouter(app, httpapi.RouterOptions{
		Logger:             logger,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerMin:    cfg.RateLimitPerMin,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

func newResolver(cfg *infra.Config, httpClient *http.Client, logger infra.Logger) (*credentials.Resolver, error) {
	opts := credentials.ResolverOptions{
		Store:  credentials.NewLocalStore(cfg.ProviderKeys()),
		Logger: logger,
	}
	if cfg.KeyProbeURL != "" {
		probe, err := credentials.NewProbeClient(credentials.ProbeOptions{
			Endpoint:   cfg.KeyProbeURL,
			HTTPClient: httpClient,
			Logger:     logger,
		})
		if err != nil {
			return nil, err
		}
		opts.Probe = probe
	}
	return credentials.NewResolver(opts)
}

func textEnhancers(httpClient *http.Client, logger infra.Logger) map[catalog.Provider]text.Enhancer {
	opts := text.Options{HTTPClient: httpClient, Logger: logger}
	return map[catalog.Provider]text.Enhancer{
		catalog.ProviderOpenAI:     text.NewOpenAI(opts),
		catalog.ProviderGemini:     text.NewGemini(opts),
		catalog.ProviderGroq:       text.NewGroq(opts),
		catalog.ProviderXAI:        text.NewXAI(opts),
		catalog.ProviderOpenRouter: text.NewOpenRouter(opts),
	}
}

func imageGenerators(cfg *infra.Config, httpClient *http.Client, logger infra.Logger) map[catalog.Provider]image.Generator {
	opts := image.Options{HTTPClient: httpClient, Logger: logger}
	return map[catalog.Provider]image.Generator{
		catalog.ProviderOpenAI:    image.NewDallE(opts),
		catalog.ProviderStability: image.NewStability(opts),
		catalog.ProviderReplicate: image.NewReplicate(image.ReplicateOptions{
			HTTPClient:   httpClient,
			PollInterval: cfg.ReplicatePollInterval,
			PollAttempts: cfg.ReplicatePollAttempts,
			Logger:       logger,
		}),
		catalog.ProviderOpenRouter: image.NewOpenRouter(opts),
		catalog.ProviderGemini:     image.NewGemini(),
	}
}
