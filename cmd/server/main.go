package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"jobdesk/internal/config"
	"jobdesk/internal/convert"
	"jobdesk/internal/extractor"
	"jobdesk/internal/extractor/gemini"
	"jobdesk/internal/extractor/openai"
	"jobdesk/internal/handler"
	"jobdesk/internal/port"
	"jobdesk/internal/router"
	"jobdesk/internal/service"
	graphqlstore "jobdesk/internal/store/graphql"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load .env when present; real deployments use environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Register extraction providers
	extractor.RegisterProvider("openai", func(c *config.ExtractorConfig) (port.ResumeExtractor, error) {
		return openai.NewExtractor(c)
	})
	extractor.RegisterProvider("gemini", func(c *config.ExtractorConfig) (port.ResumeExtractor, error) {
		return gemini.NewExtractor(c)
	})

	ext, err := extractor.NewExtractor(&cfg.Extractor)
	if err != nil {
		return fmt.Errorf("failed to initialize extractor: %w", err)
	}

	converter := convert.NewImageConverter(convert.ExecRunner{}, &cfg.Converter)

	// The application store is optional; without an endpoint the service
	// runs extraction-only and skips persistence.
	var store port.ApplicationStore
	if cfg.GraphQL.Endpoint != "" {
		store = graphqlstore.NewClient(&cfg.GraphQL)
	} else {
		log.Printf("no graphql endpoint configured; application persistence disabled")
	}

	// Initialize services
	resumeSvc := service.NewResumeService(converter, ext, store)

	// Initialize handlers
	resumeH := handler.NewResumeHandler(resumeSvc, &cfg.Upload)
	healthH := handler.NewHealthHandler(cfg)

	// Setup router
	r := router.Setup(cfg, resumeH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
