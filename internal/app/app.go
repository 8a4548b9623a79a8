package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/sprintslides/sprintslides-backend/internal/db"
	"github.com/sprintslides/sprintslides-backend/internal/deckgen"
	"github.com/sprintslides/sprintslides-backend/internal/handlers"
	"github.com/sprintslides/sprintslides-backend/internal/observability"
	"github.com/sprintslides/sprintslides-backend/internal/platform/groq"
	"github.com/sprintslides/sprintslides-backend/internal/platform/logger"
	"github.com/sprintslides/sprintslides-backend/internal/platform/pdf"
	"github.com/sprintslides/sprintslides-backend/internal/repos"
	"github.com/sprintslides/sprintslides-backend/internal/server"
	"github.com/sprintslides/sprintslides-backend/internal/services"
)

type App struct {
	Log    *logger.Logger
	Router *gin.Engine
	Cfg    Config
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig()
	if cfg.GroqAPIKey == "" {
		log.Sync()
		return nil, fmt.Errorf("GROQ_API_KEY is required")
	}

	metrics := observability.NewMetrics()

	groqOpts := []groq.Option{groq.WithTemperature(cfg.Temperature)}
	if cfg.GroqBaseURL != "" {
		groqOpts = append(groqOpts, groq.WithBaseURL(cfg.GroqBaseURL))
	}
	client, err := groq.NewClient(log, cfg.GroqAPIKey, groqOpts...)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init groq client: %w", err)
	}

	invoker, derr := deckgen.NewInvoker(log, client, cfg.Models, cfg.CandidateTimeout, metrics)
	if derr != nil {
		log.Sync()
		return nil, fmt.Errorf("init invoker: %w", derr)
	}
	pipeline, derr := deckgen.NewPipeline(log, invoker)
	if derr != nil {
		log.Sync()
		return nil, fmt.Errorf("init pipeline: %w", derr)
	}

	var deckRepo repos.DeckRepo
	if cfg.PersistenceEnabled {
		pg, err := db.NewPostgresService(log)
		if err != nil {
			log.Sync()
			return nil, fmt.Errorf("init postgres: %w", err)
		}
		if err := pg.AutoMigrateAll(); err != nil {
			log.Sync()
			return nil, fmt.Errorf("postgres automigrate: %w", err)
		}
		deckRepo = repos.NewDeckRepo(pg.DB(), log)
	} else {
		log.Info("POSTGRES_HOST not set, running without persistence")
	}

	renderer, err := pdf.NewRenderer(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init pdf renderer: %w", err)
	}

	deckService := services.NewDeckService(log, pipeline, deckRepo, metrics)
	pdfService := services.NewPDFService(log, renderer, deckService)

	router := server.NewRouter(server.RouterConfig{
		DeckHandler:        handlers.NewDeckHandler(deckService),
		PDFHandler:         handlers.NewPDFHandler(pdfService),
		Metrics:            metrics,
		PersistenceEnabled: cfg.PersistenceEnabled,
	})

	return &App{Log: log, Router: router, Cfg: cfg}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Starting HTTP server...", "port", a.Cfg.Port)
	return a.Router.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil || a.Log == nil {
		return
	}
	a.Log.Sync()
}
