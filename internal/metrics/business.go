package metrics

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter = otel.Meter("kondate/business")

	// Suggestion metrics
	SuggestionsTotal   metric.Int64Counter
	SuggestionDuration metric.Float64Histogram

	// External API metrics
	ExternalAPICallsTotal metric.Int64Counter
	ExternalAPIDuration   metric.Float64Histogram

	// AI metrics
	AIGenerationDuration metric.Float64Histogram

	// Model selection metrics
	CatalogFetchesTotal metric.Int64Counter
	ModelFallbackTotal  metric.Int64Counter
)

func Init() error {
	var err error

	SuggestionsTotal, err = meter.Int64Counter(
		"suggestion.requests.total",
		metric.WithDescription("Total number of dinner suggestion requests"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	SuggestionDuration, err = meter.Float64Histogram(
		"suggestion.request.duration",
		metric.WithDescription("Duration of the full suggestion pipeline"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 2, 5, 10, 30, 60),
	)
	if err != nil {
		return err
	}

	ExternalAPICallsTotal, err = meter.Int64Counter(
		"external.api.calls.total",
		metric.WithDescription("Total number of external API calls"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	ExternalAPIDuration, err = meter.Float64Histogram(
		"external.api.duration",
		metric.WithDescription("Duration of external API calls"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 2, 5, 10, 30, 60),
	)
	if err != nil {
		return err
	}

	AIGenerationDuration, err = meter.Float64Histogram(
		"ai.generation.duration",
		metric.WithDescription("Duration of AI content generation"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.5, 1, 2, 5, 10, 30, 60, 120),
	)
	if err != nil {
		return err
	}

	CatalogFetchesTotal, err = meter.Int64Counter(
		"model.catalog.fetches.total",
		metric.WithDescription("Total number of model catalog fetches"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	ModelFallbackTotal, err = meter.Int64Counter(
		"model.fallback.total",
		metric.WithDescription("Selections that fell back to the first capable model"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	return nil
}
