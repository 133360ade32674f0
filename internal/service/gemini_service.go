package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hireloop/backend/internal/config"
	"google.golang.org/genai"
)

// GeminiService is the alternative generator provider, selected with
// LLM_PROVIDER=gemini. One attempt per call, bounded by RequestTimeout; the
// fallback policy lives in the caller, not here.
type GeminiService struct {
	Client         *genai.Client
	Model          string
	RequestTimeout time.Duration
}

var _ QuestionGeneratorInterface = (*GeminiService)(nil)

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	if geminiConfig.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiService{
		Client:         client,
		Model:          geminiConfig.Model,
		RequestTimeout: config.LoadGeneratorConfig().Timeout,
	}, nil
}

func (s *GeminiService) GenerateQuestion(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.7)),
	}

	result, err := s.Client.Models.GenerateContent(
		timeoutCtx,
		s.Model,
		genai.Text(prompt),
		genConfig,
	)
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}
	if err := validateGenerateResponse(result); err != nil {
		return "", fmt.Errorf("invalid response: %w", err)
	}

	return result.Text(), nil
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}
