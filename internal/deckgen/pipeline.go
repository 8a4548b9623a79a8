package deckgen

import (
	"context"
	"strings"

	"github.com/sprintslides/sprintslides-backend/internal/platform/logger"
	"github.com/sprintslides/sprintslides-backend/internal/types"
)

// Result is a fully validated deck together with provenance: which model
// produced it and what the provider text looked like before and after
// sanitization. Raw/clean text is kept for error reporting upstream.
type Result struct {
	ModelUsed string
	Slides    []types.Slide
	RawText   string
	CleanText string
}

// Pipeline chains prompt construction, model invocation, output
// sanitization and schema validation into a single Run call.
type Pipeline struct {
	log     *logger.Logger
	invoker *Invoker
}

func NewPipeline(log *logger.Logger, invoker *Invoker) (*Pipeline, error) {
	if invoker == nil {
		return nil, &Error{Kind: KindConfiguration, Message: "invoker required"}
	}
	return &Pipeline{
		log:     log.With("component", "Pipeline"),
		invoker: invoker,
	}, nil
}

// Run generates a deck for topic with exactly slideCount slides. Inputs are
// assumed pre-validated with ValidateRequest; Run still rejects obviously
// bad ones so it is safe to call directly.
func (p *Pipeline) Run(ctx context.Context, topic string, slideCount int) (*Result, *Error) {
	if derr := ValidateRequest(topic, slideCount); derr != nil {
		return nil, derr
	}
	topic = strings.TrimSpace(topic)

	user := BuildPrompt(topic, slideCount)
	inv, derr := p.invoker.Invoke(ctx, SystemPrompt, user, MaxCompletionTokens(slideCount))
	if derr != nil {
		return nil, derr
	}

	clean := Sanitize(inv.Text)
	slides, derr := ParseDeck(clean, slideCount)
	if derr != nil {
		derr.ModelsTried = append(derr.ModelsTried, inv.ModelUsed)
		derr.RawText = inv.Text
		derr.CleanText = clean
		return nil, derr
	}

	if unknown := UnknownSlideTypes(slides); len(unknown) > 0 {
		p.log.Warn("deck contains off-contract slide types",
			"topic", topic,
			"model", inv.ModelUsed,
			"types", strings.Join(unknown, ","),
		)
	}

	return &Result{
		ModelUsed: inv.ModelUsed,
		Slides:    slides,
		RawText:   inv.Text,
		CleanText: clean,
	}, nil
}
