package usecase

import (
	"context"
	"fmt"

	"nextribe/internal/infrastructure/metrics"
	"nextribe/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	kindInsight    = "insight"
	kindMotivation = "motivation"

	insightPromptFmt    = "Write a single, compelling sentence (max 25 words) describing the business potential for luxury hospitality expansion in %s. Focus on landscape or culture."
	motivationPromptFmt = "Give a short, inspiring 1-sentence quote for someone applying to be a brand ambassador in %s."

	insightUnavailableFmt = "Explore opportunities in %s."
	insightFailedFmt      = "Expanding to the stunning landscapes of %s."
	motivationUnavailable = "Join us to shape the future."
	motivationFailed      = "Join our global network today."
)

// IInsightService produces the generated blurbs shown next to a country.
// Insight and Motivation always return a usable text. TryInsight also
// reports whether that text came from the generator.
type IInsightService interface {
	Insight(ctx context.Context, countryName string) string
	TryInsight(ctx context.Context, countryName string) (string, bool)
	Motivation(ctx context.Context, countryName string) string
	Available() bool
}

type InsightService struct {
	generator interfaces.ITextGenerator
	logger    *zap.Logger
}

var _ IInsightService = (*InsightService)(nil)

// NewInsightService accepts a nil generator; every call then returns the
// static "unavailable" text.
func NewInsightService(generator interfaces.ITextGenerator, logger *zap.Logger) *InsightService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InsightService{generator: generator, logger: logger.Named("insight")}
}

func (s *InsightService) Available() bool {
	return s.generator != nil
}

func (s *InsightService) Insight(ctx context.Context, countryName string) string {
	text, _ := s.TryInsight(ctx, countryName)
	return text
}

func (s *InsightService) TryInsight(ctx context.Context, countryName string) (string, bool) {
	return s.generate(ctx, kindInsight, countryName,
		fmt.Sprintf(insightPromptFmt, countryName),
		fmt.Sprintf(insightUnavailableFmt, countryName),
		fmt.Sprintf(insightFailedFmt, countryName))
}

func (s *InsightService) Motivation(ctx context.Context, countryName string) string {
	text, _ := s.generate(ctx, kindMotivation, countryName,
		fmt.Sprintf(motivationPromptFmt, countryName),
		motivationUnavailable,
		motivationFailed)
	return text
}

func (s *InsightService) generate(ctx context.Context, kind, countryName, prompt, unavailable, failed string) (string, bool) {
	if s.generator == nil {
		metrics.TextGenerations.WithLabelValues(kind, metrics.OutcomeFallback).Inc()
		return unavailable, false
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil || text == "" {
		s.logger.Warn("[insight][usecase] generation failed, using fallback",
			zap.String("kind", kind),
			zap.String("country", countryName),
			zap.Error(err))
		metrics.TextGenerations.WithLabelValues(kind, metrics.OutcomeError).Inc()
		return failed, false
	}

	metrics.TextGenerations.WithLabelValues(kind, metrics.OutcomeGenerated).Inc()
	return text, true
}
