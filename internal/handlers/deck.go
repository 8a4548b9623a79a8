package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sprintslides/sprintslides-backend/internal/deckgen"
	"github.com/sprintslides/sprintslides-backend/internal/services"
)

type GenerateDeckRequest struct {
	Topic      string `json:"topic"`
	SlideCount int    `json:"slideCount"`
}

type DeckHandler struct {
	deckService services.DeckService
}

func NewDeckHandler(deckService services.DeckService) *DeckHandler {
	return &DeckHandler{deckService: deckService}
}

// GenerateDeck serves POST /api/decks/generate (and the legacy
// /generateDeck alias).
func (dh *DeckHandler) GenerateDeck(c *gin.Context) {
	var req GenerateDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if req.SlideCount == 0 {
		req.SlideCount = deckgen.DefaultSlideCount
	}

	res, derr := dh.deckService.Generate(c.Request.Context(), req.Topic, req.SlideCount)
	if derr != nil {
		RespondDeckError(c, derr)
		return
	}

	payload := gin.H{
		"ok":        true,
		"modelUsed": res.ModelUsed,
		"slides":    res.Slides,
	}
	if res.DocID != nil {
		payload["docId"] = res.DocID.String()
	}
	RespondOK(c, payload)
}

// GetDeck serves GET /api/decks/:id when persistence is configured.
func (dh *DeckHandler) GetDeck(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deck id"})
		return
	}

	record, err := dh.deckService.GetDeck(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "deck not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load deck"})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "deck not found"})
		return
	}
	RespondOK(c, record)
}
