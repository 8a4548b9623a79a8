package services

import (
	"context"
	"strings"

	"github.com/sprintslides/sprintslides-backend/internal/deckgen"
	"github.com/sprintslides/sprintslides-backend/internal/platform/logger"
	"github.com/sprintslides/sprintslides-backend/internal/platform/pdf"
	"github.com/sprintslides/sprintslides-backend/internal/types"
)

// PDFExport is a rendered document plus its attachment filename.
type PDFExport struct {
	Filename string
	Data     []byte
}

// DeckRenderer turns a deck into document bytes. Satisfied by
// platform/pdf.Renderer.
type DeckRenderer interface {
	Render(topic string, slides []types.Slide) ([]byte, error)
}

type PDFService interface {
	// RenderSlides exports slides the caller already holds.
	RenderSlides(topic string, slides []types.Slide) (*PDFExport, *deckgen.Error)
	// GenerateAndRender regenerates a deck server-side, then exports it.
	GenerateAndRender(ctx context.Context, topic string, slideCount int) (*PDFExport, *deckgen.Error)
}

type pdfService struct {
	log      *logger.Logger
	renderer DeckRenderer
	decks    DeckService
}

func NewPDFService(log *logger.Logger, renderer DeckRenderer, decks DeckService) PDFService {
	return &pdfService{
		log:      log.With("service", "PDFService"),
		renderer: renderer,
		decks:    decks,
	}
}

func (s *pdfService) RenderSlides(topic string, slides []types.Slide) (*PDFExport, *deckgen.Error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, &deckgen.Error{Kind: deckgen.KindInvalidRequest, Message: "Missing topic"}
	}
	if len(slides) == 0 {
		return nil, &deckgen.Error{Kind: deckgen.KindInvalidRequest, Message: "slides list is required"}
	}
	return s.render(topic, slides)
}

func (s *pdfService) GenerateAndRender(ctx context.Context, topic string, slideCount int) (*PDFExport, *deckgen.Error) {
	res, derr := s.decks.Generate(ctx, topic, slideCount)
	if derr != nil {
		return nil, derr
	}
	return s.render(strings.TrimSpace(topic), res.Slides)
}

func (s *pdfService) render(topic string, slides []types.Slide) (*PDFExport, *deckgen.Error) {
	data, err := s.renderer.Render(topic, slides)
	if err != nil {
		s.log.Error("Failed to render deck PDF", "topic", topic, "error", err)
		return nil, &deckgen.Error{Kind: deckgen.KindRequestFailed, Message: "failed to render PDF", Err: err}
	}
	return &PDFExport{Filename: pdf.Filename(topic), Data: data}, nil
}
