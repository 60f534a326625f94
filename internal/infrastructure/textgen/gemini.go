package textgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nextribe/internal/infrastructure/config"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

var ErrMissingAPIKey = errors.New("missing genai api key")
var ErrEmptyResponse = errors.New("empty generation response")

// GeminiClient generates short texts with the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
	cfg    config.GenAIConfig
	logger *zap.Logger
}

func NewGeminiClient(ctx context.Context, cfg config.GenAIConfig, logger *zap.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiClient{client: client, model: model, cfg: cfg, logger: logger.Named("textgen")}, nil
}

// Generate returns the trimmed text of a single generateContent call.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		g.logger.Warn("[textgen][gemini] generation failed", zap.String("model", g.model), zap.Error(err))
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
