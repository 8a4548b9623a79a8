package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sprintslides/sprintslides-backend/internal/handlers"
	"github.com/sprintslides/sprintslides-backend/internal/middleware"
	"github.com/sprintslides/sprintslides-backend/internal/observability"
)

type RouterConfig struct {
	DeckHandler *handlers.DeckHandler
	PDFHandler  *handlers.PDFHandler
	Metrics     *observability.Metrics

	// PersistenceEnabled gates the deck lookup route.
	PersistenceEnabled bool
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	router.Use(middleware.CORS())
	router.Use(middleware.Metrics(cfg.Metrics))

	router.GET("/", handlers.HealthCheck)
	router.GET("/healthcheck", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))

	api := router.Group("/api")
	{
		api.POST("/decks/generate", cfg.DeckHandler.GenerateDeck)
		api.POST("/decks/pdf", cfg.PDFHandler.DownloadPDF)
		api.GET("/decks/pdf", cfg.PDFHandler.DownloadPDFGet)
		if cfg.PersistenceEnabled {
			api.GET("/decks/:id", cfg.DeckHandler.GetDeck)
		}
	}

	// Aliases kept for older clients.
	router.POST("/generateDeck", cfg.DeckHandler.GenerateDeck)
	router.POST("/downloadPdf", cfg.PDFHandler.DownloadPDF)
	router.GET("/downloadPdf", cfg.PDFHandler.DownloadPDFGet)

	return router
}
