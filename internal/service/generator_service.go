package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/hireloop/backend/internal/config"
	"github.com/tidwall/gjson"
)

// QuestionGeneratorInterface is the single call the engine makes against the
// external text-generation service. Implementations may call an LLM endpoint
// or return canned text (for tests). Any error means the caller falls back to
// a deterministic question; the call is never retried.
type QuestionGeneratorInterface interface {
	GenerateQuestion(ctx context.Context, prompt string) (string, error)
}

// OllamaService talks to an Ollama-compatible /api/generate endpoint.
type OllamaService struct {
	BaseURL string
	Model   string
	client  *resty.Client
}

var _ QuestionGeneratorInterface = (*OllamaService)(nil)

func NewOllamaService() *OllamaService {
	cfg := config.LoadGeneratorConfig()
	return &OllamaService{
		BaseURL: cfg.URL,
		Model:   cfg.Model,
		client:  resty.New().SetTimeout(cfg.Timeout),
	}
}

func (s *OllamaService) GenerateQuestion(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model":  s.Model,
			"prompt": prompt,
			"stream": false,
		}).
		Post(s.BaseURL + "/api/generate")
	if err != nil {
		return "", fmt.Errorf("generator request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("generator returned status %d", resp.StatusCode())
	}

	text := gjson.Get(resp.String(), "response").String()
	if text == "" {
		return "", fmt.Errorf("generator returned no text")
	}
	return text, nil
}
