package suggest

import (
	"context"
	"log/slog"

	"github.com/creatorstack/titlegen/internal/config"
	"github.com/creatorstack/titlegen/internal/gemini"
	"github.com/creatorstack/titlegen/internal/logger"
)

// Service runs the suggestion pipeline: prompt build, model call, text
// extraction, fence-stripped JSON parse, normalization. It holds no state
// across requests.
type Service struct {
	generator    gemini.Generator
	logger       *logger.Logger
	systemPrompt string
}

// NewService creates a suggestion service.
func NewService(generator gemini.Generator, cfg *config.Config, logger *logger.Logger) *Service {
	return &Service{
		generator:    generator,
		logger:       logger,
		systemPrompt: SystemInstruction(cfg.Prompts.SystemInstruction),
	}
}

// Model returns the upstream model identifier, for response metadata.
func (s *Service) Model() string {
	return s.generator.Model()
}

// Outcome is everything the endpoints need to shape a response. Which parts
// of it matter depends on the endpoint: the internal one passes Payload (or
// RawText) through, the public one serves Titles.
type Outcome struct {
	// RawText is the literal text extracted from the model response.
	RawText string
	// Payload is the decoded JSON payload; meaningless when Parsed is false.
	Payload interface{}
	// Parsed reports whether the model output decoded as JSON.
	Parsed bool
	// Titles is the normalized title list; empty when Parsed is false.
	Titles []string
}

// Suggest runs the pipeline once. An error means the model call itself failed
// (missing credential or upstream failure); every post-call step is total and
// reflected in the Outcome instead.
func (s *Service) Suggest(ctx context.Context, req SuggestionRequest) (*Outcome, error) {
	log := s.logger.WithContext(ctx).WithComponent("suggest")

	userPrompt := BuildUserPrompt(req)

	resp, err := s.generator.GenerateContent(ctx, s.systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	rawText := ExtractText(resp)

	payload, parsed := ParseJSON(rawText)
	if !parsed {
		log.Warn("model returned non-JSON output", slog.Int("raw_len", len(rawText)))
		return &Outcome{RawText: rawText}, nil
	}

	titles := NormalizeTitles(payload)
	log.Debug("titles normalized", slog.Int("count", len(titles)))

	return &Outcome{
		RawText: rawText,
		Payload: payload,
		Parsed:  true,
		Titles:  titles,
	}, nil
}
