package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"health-push/internal/domain/profile"
	"health-push/internal/domain/push"
	"health-push/internal/pkg/config"
)

// LLMGateway generates notification text through an OpenAI-compatible
// chat-completions endpoint.
//
// Its contract is deliberately lossy: Generate never returns an error. Any
// transport, decoding, or upstream failure degrades to a user-visible apology
// string so a flaky model provider can never block a push. Callers therefore
// cannot distinguish a generated message from a degraded one; that is an
// accepted property of the delivery pipeline.
type LLMGateway struct {
	cfg    config.LLMConfig
	client *http.Client
	log    *slog.Logger
}

func NewLLMGateway(cfg config.LLMConfig, log *slog.Logger) *LLMGateway {
	return &LLMGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (g *LLMGateway) Generate(ctx context.Context, kind push.Kind, prof *profile.HealthProfile, personaPrompt string, weather *push.WeatherReport) string {
	var (
		userPrompt  string
		temperature float64
		maxTokens   int
	)
	switch kind.Type {
	case push.TypeRest:
		userPrompt, temperature, maxTokens = restPrompt(prof, kind.Slot), 0.8, 200
	case push.TypeMeal:
		userPrompt, temperature, maxTokens = mealPrompt(prof, kind.Slot), 0.7, 300
	case push.TypeWeather:
		userPrompt, temperature, maxTokens = weatherPrompt(prof, weather), 0.7, 200
	case push.TypeHealthTip:
		userPrompt, temperature, maxTokens = healthTipPrompt(prof), 0.8, 300
	default:
		return apology(fmt.Errorf("unknown notification kind %q", kind))
	}

	messages := []chatMessage{
		{Role: "user", Content: userPrompt},
	}
	if personaPrompt != "" {
		messages = append([]chatMessage{{Role: "system", Content: personaPrompt}}, messages...)
	}

	content, err := g.chat(ctx, messages, temperature, maxTokens)
	if err != nil {
		g.log.Error("content generation failed", "kind", kind.String(), "error", err)
		return apology(err)
	}
	return content
}

func (g *LLMGateway) chat(ctx context.Context, messages []chatMessage, temperature float64, maxTokens int) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       g.cfg.Model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion returned status %d", resp.StatusCode)
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return decoded.Choices[0].Message.Content, nil
}

func apology(err error) string {
	return fmt.Sprintf("Sorry, something went wrong while generating this message: %v", err)
}
