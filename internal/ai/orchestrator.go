package ai

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Fixed user-safe texts surfaced when generation is exhausted. End users only
// ever see these; the real cause stays in the returned error for logging.
const (
	ChatApology  = "I'm sorry, I encountered an error while generating a response. Please try again."
	StoryApology = "I'm sorry, I encountered an error while generating the story. Please try again."
)

// Completer is the flattened-prompt generation path (the Gateway).
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// RichGenerator is the primary generation path.
type RichGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Orchestrator tries the rich path first and transparently falls back to the
// gateway on any failure, so callers always get either text or a terminal
// ErrGenerationFailed. Both paths receive the identical prompt string.
type Orchestrator struct {
	rich    RichGenerator
	gateway Completer
	logger  *zap.Logger
}

func NewOrchestrator(rich RichGenerator, gateway Completer, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		rich:    rich,
		gateway: gateway,
		logger:  logger.Named("Orchestrator"),
	}
}

// Generate returns the generated text, or an error wrapping
// ErrGenerationFailed when both paths are exhausted.
func (o *Orchestrator) Generate(ctx context.Context, prompt string) (string, error) {
	generationAttemptsTotal.WithLabelValues("rich").Inc()
	text, richErr := o.rich.Generate(ctx, prompt)
	if richErr == nil {
		return text, nil
	}

	o.logger.Warn("Rich generation path failed, falling back to gateway", zap.Error(richErr))
	generationFallbacksTotal.Inc()

	text, gateErr := o.gateway.Complete(ctx, prompt)
	if gateErr == nil {
		return text, nil
	}

	o.logger.Error("Both generation paths failed",
		zap.NamedError("richError", richErr),
		zap.NamedError("gatewayError", gateErr),
	)
	generationFailuresTotal.WithLabelValues(failureCause(gateErr)).Inc()

	return "", fmt.Errorf("%w: %w", ErrGenerationFailed, gateErr)
}

func failureCause(err error) string {
	switch {
	case errors.Is(err, ErrMissingAPIKey):
		return "configuration"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	default:
		return "upstream"
	}
}
