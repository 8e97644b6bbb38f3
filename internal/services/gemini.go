package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/genai"
)

type GeminiService interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
	GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32) (string, error)
}

type geminiService struct {
	client     *genai.Client
	modelName  string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
}

// permissiveSafetySettings turns off content filtering for all four harm
// categories. Job descriptions regularly trip the default filters (security
// roles, defense companies) and a blocked response is indistinguishable from
// an empty one.
func permissiveSafetySettings() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}

	settings := make([]*genai.SafetySetting, 0, len(categories))
	for _, category := range categories {
		settings = append(settings, &genai.SafetySetting{
			Category:  category,
			Threshold: genai.HarmBlockThresholdBlockNone,
		})
	}
	return settings
}

func NewGeminiService(apiKey, modelName string, timeout time.Duration, maxRetries int, retryDelay time.Duration) (GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is empty")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:     client,
		modelName:  modelName,
		timeout:    timeout,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
	}, nil
}

// GenerateText implements GeminiService. One prompt in, raw completion text
// out; no schema guarantee. Every failure mode comes back wrapping
// ErrGenerationFailed.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
		SafetySettings:  permissiveSafetySettings(),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if resp == nil {
		return "", fmt.Errorf("%w: nil response", ErrGenerationFailed)
	}

	text := resp.Text()
	if text == "" {
		// Usually a content-filter block; the candidate list tells which.
		if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason != "" {
			return "", fmt.Errorf("%w: empty response (finish reason: %s)",
				ErrGenerationFailed, resp.Candidates[0].FinishReason)
		}
		return "", fmt.Errorf("%w: no text content in response", ErrGenerationFailed)
	}

	return text, nil
}

// GenerateTextWithRetry implements GeminiService. Bounded attempts with
// exponentially growing delay between them; the configured per-call timeout
// still applies to each attempt individually.
func (g *geminiService) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32) (string, error) {
	var lastErr error
	delay := g.retryDelay

	for attempt := 1; attempt <= g.maxRetries; attempt++ {
		result, err := g.GenerateText(ctx, prompt, temperature)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt < g.maxRetries {
			log.Printf("⚠️ Gemini attempt %d/%d failed: %v. Retrying in %s...", attempt, g.maxRetries, err, delay)
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %v", ErrGenerationFailed, ctx.Err())
			case <-time.After(delay):
			}
			delay *= 2
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", g.maxRetries, lastErr)
}
