package suggestion

import (
	"context"
	"log/slog"
	"time"

	"github.com/bangohan/kondate/internal/errors"
	"github.com/bangohan/kondate/internal/metrics"
	"github.com/bangohan/kondate/internal/services/ai"
	"github.com/bangohan/kondate/internal/services/model"
	"github.com/bangohan/kondate/internal/validation"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

// CatalogProvider supplies the model catalog, typically through the
// session-scoped cache.
type CatalogProvider interface {
	Models(ctx context.Context) ([]model.Descriptor, error)
	Invalidate()
}

// Generator produces text from a prompt using a chosen model.
type Generator interface {
	GenerateContent(ctx context.Context, modelID, prompt string) (string, error)
}

// Recorder persists successful suggestions. Implementations are optional;
// the pipeline itself stays stateless.
type Recorder interface {
	SaveSuggestion(ctx context.Context, s *Suggestion) error
}

// Service runs the suggestion pipeline: validate, discover models, select
// one, format the prompt, generate, classify the outcome.
type Service struct {
	hasCredential bool
	catalog       CatalogProvider
	generator     Generator
	recorder      Recorder
	priorities    []string
}

// NewService creates a suggestion service. recorder may be nil.
func NewService(hasCredential bool, catalog CatalogProvider, generator Generator, recorder Recorder) *Service {
	return &Service{
		hasCredential: hasCredential,
		catalog:       catalog,
		generator:     generator,
		recorder:      recorder,
		priorities:    model.DefaultPriorities,
	}
}

// WithPriorities overrides the default model preference list.
func (s *Service) WithPriorities(priorities []string) *Service {
	if len(priorities) > 0 {
		s.priorities = priorities
	}
	return s
}

// Suggest processes one dinner request end to end. Every failure comes back
// as a typed *errors.AppError; nothing is retried automatically.
func (s *Service) Suggest(ctx context.Context, req DinnerRequest) (*Suggestion, error) {
	startTime := time.Now()
	outcome := "ok"
	defer func() {
		metrics.SuggestionDuration.Record(ctx, time.Since(startTime).Seconds())
		metrics.SuggestionsTotal.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("outcome", outcome),
		))
	}()

	if !s.hasCredential {
		outcome = string(errors.ErrorTypeCredentialMissing)
		return nil, errors.NewCredentialMissingError()
	}

	if err := validation.ValidateDinnerRequest(req.Ingredients, req.Cuisine); err != nil {
		outcome = string(errors.ErrorTypeValidation)
		return nil, err
	}

	selected, err := s.selectModel(ctx)
	if err != nil {
		appErr := asAppError(err)
		outcome = string(appErr.Type)
		return nil, appErr
	}

	prompt := ai.BuildDinnerPrompt(req.Ingredients, req.Cuisine)

	text, err := s.generator.GenerateContent(ctx, selected, prompt)
	if err != nil {
		// Model availability may have changed; the next request re-discovers it.
		s.catalog.Invalidate()
		appErr := ClassifyGenerationError(err)
		outcome = string(appErr.Type)
		slog.Error("generation failed",
			"model", selected,
			"error_type", appErr.Type,
			"error", err.Error())
		return nil, appErr
	}

	result := &Suggestion{
		ID:        uuid.New().String(),
		Model:     selected,
		Cuisine:   req.Cuisine,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	if s.recorder != nil {
		if err := s.recorder.SaveSuggestion(ctx, result); err != nil {
			// History is best-effort; the suggestion is already generated.
			slog.Warn("failed to record suggestion", "id", result.ID, "error", err.Error())
		}
	}

	slog.Info("suggestion generated", "id", result.ID, "model", result.Model, "cuisine", result.Cuisine)
	return result, nil
}

// Availability reports the capable models and the selector's current pick.
func (s *Service) Availability(ctx context.Context) (*ModelAvailability, error) {
	if !s.hasCredential {
		return nil, errors.NewCredentialMissingError()
	}

	catalog, err := s.catalog.Models(ctx)
	if err != nil {
		return nil, asAppError(err)
	}

	selected, err := model.Select(catalog, s.priorities)
	if err != nil {
		return nil, asAppError(err)
	}

	capable := model.Capable(catalog)
	ids := make([]string, len(capable))
	for i, d := range capable {
		ids[i] = d.ID
	}

	return &ModelAvailability{Capable: ids, Selected: selected}, nil
}

func (s *Service) selectModel(ctx context.Context) (string, error) {
	catalog, err := s.catalog.Models(ctx)
	if err != nil {
		if _, ok := err.(*errors.AppError); ok {
			return "", err
		}
		return "", errors.NewCatalogFetchError("failed to fetch model catalog", err)
	}

	selected, err := model.Select(catalog, s.priorities)
	if err != nil {
		return "", err
	}

	if !isPriority(selected, s.priorities) {
		slog.Warn("no priority model available, using first capable model", "model", selected)
		metrics.ModelFallbackTotal.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("model", selected),
		))
	}

	return selected, nil
}

func isPriority(id string, priorities []string) bool {
	for _, p := range priorities {
		if p == id {
			return true
		}
	}
	return false
}

func asAppError(err error) *errors.AppError {
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr
	}
	return errors.NewCatalogFetchError("failed to fetch model catalog", err)
}
