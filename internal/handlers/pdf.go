package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sprintslides/sprintslides-backend/internal/deckgen"
	"github.com/sprintslides/sprintslides-backend/internal/services"
	"github.com/sprintslides/sprintslides-backend/internal/types"
)

type DownloadPDFRequest struct {
	Topic  string        `json:"topic"`
	Slides []types.Slide `json:"slides"`
}

type PDFHandler struct {
	pdfService services.PDFService
}

func NewPDFHandler(pdfService services.PDFService) *PDFHandler {
	return &PDFHandler{pdfService: pdfService}
}

// DownloadPDF serves POST /downloadPdf: the client supplies the slides it
// already generated and gets them back as a document.
func (ph *PDFHandler) DownloadPDF(c *gin.Context) {
	var req DownloadPDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	export, derr := ph.pdfService.RenderSlides(req.Topic, req.Slides)
	if derr != nil {
		RespondDeckError(c, derr)
		return
	}
	writePDF(c, export)
}

// DownloadPDFGet serves GET /downloadPdf?topic=...&slideCount=...: the deck
// is regenerated server-side before export. Best fit for browser downloads
// where a POST body is awkward.
func (ph *PDFHandler) DownloadPDFGet(c *gin.Context) {
	topic := c.Query("topic")
	slideCount := deckgen.DefaultSlideCount
	if raw := c.Query("slideCount"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slideCount must be an integer"})
			return
		}
		slideCount = n
	}

	export, derr := ph.pdfService.GenerateAndRender(c.Request.Context(), topic, slideCount)
	if derr != nil {
		RespondDeckError(c, derr)
		return
	}
	writePDF(c, export)
}

func writePDF(c *gin.Context, export *services.PDFExport) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename))
	c.Data(http.StatusOK, "application/pdf", export.Data)
}
