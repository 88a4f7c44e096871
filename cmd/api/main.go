package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pictureme/internal/http/handlers"
	httpapi "pictureme/internal/http/httpapi"
	"pictureme/internal/infra"
	"pictureme/internal/infra/geoip"
	"pictureme/internal/infra/google"
	"pictureme/internal/middleware"
	"pictureme/internal/providers/genai"
	"pictureme/internal/providers/image"
	promptsvc "pictureme/internal/providers/prompt"
	"pictureme/internal/providers/replicate"
	"pictureme/internal/storage"
	"pictureme/internal/studio"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()
	sqlRunner := infra.NewSQLRunner(dbpool, logger)

	store, err := storage.NewFileStore(cfg.StoragePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}

	var countryLookup middleware.CountryLookup
	if resolver, err := geoip.NewResolver(cfg.GeoIPDBPath); err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		countryLookup = resolver.CountryCode
	}

	var gemini *genai.Client
	if cfg.GeminiAPIKey != "" {
		gemini, err = genai.NewClient(genai.Options{
			APIKey:     cfg.GeminiAPIKey,
			BaseURL:    cfg.GeminiBaseURL,
			TextModel:  cfg.GeminiTextModel,
			ImageModel: cfg.GeminiImageModel,
			Logger:     &logger,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize gemini client")
		}
	}

	var generator image.Generator
	switch cfg.ImageProvider {
	case "gemini":
		if gemini == nil {
			logger.Fatal().Msg("IMAGE_PROVIDER=gemini requires GEMINI_API_KEY")
		}
		generator = image.NewGeminiGenerator(gemini)
	default:
		generator = replicate.NewClient(replicate.Options{
			BaseURL:  cfg.ReplicateBaseURL,
			APIToken: cfg.ReplicateAPIToken,
			Policy: &replicate.Policy{
				PromptStrength: cfg.ReplicatePromptStrength,
				Refine:         cfg.ReplicateRefine,
			},
		})
	}

	var enhancer promptsvc.Enhancer
	if gemini != nil {
		enhancer = promptsvc.NewGeminiEnhancer(gemini)
	} else {
		enhancer = promptsvc.NewStaticEnhancer()
	}

	app := &handlers.App{
		Config:         cfg,
		Logger:         logger,
		SQL:            sqlRunner,
		Store:          store,
		Sessions:       studio.NewSessions(),
		Orchestrator:   studio.NewOrchestrator(generator, logger),
		Generator:      generator,
		Enhancer:       enhancer,
		GoogleVerifier: google.NewVerifier(cfg.GoogleIssuer, cfg.GoogleClientID),
		JWTSecret:      cfg.JWTSecret,
		HTTPClient:     &http.Client{Timeout: 60 * time.Second},
	}

	router := httpapi.NewRouter(app, countryLookup)
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
