package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/sprintslides/sprintslides-backend/internal/deckgen"
	"github.com/sprintslides/sprintslides-backend/internal/pkg/pointers"
	"github.com/sprintslides/sprintslides-backend/internal/platform/logger"
	"github.com/sprintslides/sprintslides-backend/internal/repos"
	"github.com/sprintslides/sprintslides-backend/internal/types"
)

// DeckObserver records generation outcomes. Satisfied by the metrics
// collector; nil means no recording.
type DeckObserver interface {
	ObserveDeckGeneration(status string)
}

// GenerateDeckResult is the successful outcome of one generation: the deck,
// the model that produced it, and the persisted document id when storage is
// configured and the write succeeded.
type GenerateDeckResult struct {
	ModelUsed string
	Slides    []types.Slide
	DocID     *uuid.UUID
}

type DeckService interface {
	Generate(ctx context.Context, topic string, slideCount int) (*GenerateDeckResult, *deckgen.Error)
	GetDeck(ctx context.Context, id uuid.UUID) (*types.DeckRecord, error)
}

type deckService struct {
	log      *logger.Logger
	pipeline *deckgen.Pipeline
	deckRepo repos.DeckRepo
	observer DeckObserver
}

// NewDeckService wires the generation pipeline to optional persistence.
// deckRepo may be nil; generation then runs stateless.
func NewDeckService(log *logger.Logger, pipeline *deckgen.Pipeline, deckRepo repos.DeckRepo, observer DeckObserver) DeckService {
	return &deckService{
		log:      log.With("service", "DeckService"),
		pipeline: pipeline,
		deckRepo: deckRepo,
		observer: observer,
	}
}

func (s *deckService) Generate(ctx context.Context, topic string, slideCount int) (*GenerateDeckResult, *deckgen.Error) {
	if derr := deckgen.ValidateRequest(topic, slideCount); derr != nil {
		s.observe(string(derr.Kind))
		return nil, derr
	}
	topic = strings.TrimSpace(topic)

	res, derr := s.pipeline.Run(ctx, topic, slideCount)
	if derr != nil {
		s.observe(string(derr.Kind))
		return nil, derr
	}
	s.observe("ok")

	out := &GenerateDeckResult{ModelUsed: res.ModelUsed, Slides: res.Slides}
	if id := s.persist(ctx, topic, res); id != nil {
		out.DocID = id
	}
	return out, nil
}

func (s *deckService) GetDeck(ctx context.Context, id uuid.UUID) (*types.DeckRecord, error) {
	if s.deckRepo == nil {
		return nil, nil
	}
	return s.deckRepo.GetByID(ctx, nil, id)
}

// persist is best effort: a storage failure never fails the generation, it
// only drops the docId from the response.
func (s *deckService) persist(ctx context.Context, topic string, res *deckgen.Result) *uuid.UUID {
	if s.deckRepo == nil {
		return nil
	}

	slides, err := json.Marshal(res.Slides)
	if err != nil {
		s.log.Error("Failed to encode slides for persistence", "topic", topic, "error", err)
		return nil
	}

	record := &types.DeckRecord{
		Topic:      topic,
		SlideCount: len(res.Slides),
		ModelUsed:  res.ModelUsed,
		Slides:     slides,
	}
	created, err := s.deckRepo.Create(ctx, nil, record)
	if err != nil {
		s.log.Error("Failed to persist deck", "topic", topic, "error", err)
		return nil
	}
	return pointers.Ptr(created.ID)
}

func (s *deckService) observe(status string) {
	if s.observer != nil {
		s.observer.ObserveDeckGeneration(status)
	}
}
