// README: OpenAI-compatible chat-completions provider (trip generation and chat).
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const completionsTemperature = 0.7

// OpenAIProvider implements Provider against any chat-completions compatible endpoint.
type OpenAIProvider struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewOpenAIProvider creates a provider for the given endpoint. The 30s client timeout
// guards against stalled connections while context cancellation is still honoured
// via NewRequestWithContext.
func NewOpenAIProvider(baseURL, apiKey, model string) *OpenAIProvider {
	return &OpenAIProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type chatRequest struct {
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	Messages    []Message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// complete performs one completions round trip and returns the first choice's text.
func (p *OpenAIProvider) complete(ctx context.Context, messages []Message) (string, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model:       p.model,
		Temperature: completionsTemperature,
		Messages:    messages,
	})
	if err != nil {
		return "", fmt.Errorf("completions: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("completions: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &RemoteError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", &DecodeError{Err: err}
	}
	if len(cr.Choices) == 0 || strings.TrimSpace(cr.Choices[0].Message.Content) == "" {
		return "", ErrEmptyModelResponse
	}
	return cr.Choices[0].Message.Content, nil
}

// GenerateTrip builds the two-part trip instruction, performs one call and decodes
// the reply against the required shape. The reply must be literal JSON; no fence
// stripping is applied on this path.
func (p *OpenAIProvider) GenerateTrip(ctx context.Context, req TripRequest) (*TripPlan, error) {
	system, user := BuildTripPrompt(req)
	text, err := p.complete(ctx, []Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	})
	if err != nil {
		return nil, err
	}
	return DecodeTripPlan(text)
}

// Chat sends the history window as-is and returns the assistant reply.
func (p *OpenAIProvider) Chat(ctx context.Context, history []Message) (string, error) {
	return p.complete(ctx, history)
}
